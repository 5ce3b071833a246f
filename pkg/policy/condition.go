package policy

import (
	"errors"
	"fmt"
	"strings"
)

const AssumeRoleAction = "sts:AssumeRole"

var (
	ErrNoStatement        = errors.New("statement not found in policy document")
	ErrMalformedStatement = errors.New("malformed policy statement")
)

// InjectAssumeRoleCondition sets, on every statement allowing sts:AssumeRole, a
// Condition limiting the caller to sourceAccount and sourceArn. Any existing
// Condition on those statements is replaced. It returns the number of
// statements changed.
func InjectAssumeRoleCondition(doc Document, sourceAccount, sourceArn string) (int, error) {
	var statements []any
	switch s := doc["Statement"].(type) {
	case []any:
		statements = s
	case map[string]any:
		statements = []any{s}
	}
	if len(statements) == 0 {
		return 0, ErrNoStatement
	}

	n := 0
	for i, raw := range statements {
		stmt, ok := raw.(map[string]any)
		if !ok {
			return n, fmt.Errorf("statement %d: %w", i, ErrMalformedStatement)
		}
		matches, err := allowsAssumeRole(stmt["Action"])
		if err != nil {
			return n, fmt.Errorf("statement %d: %w", i, err)
		}
		if !matches {
			continue
		}
		stmt["Condition"] = AssumeRoleCondition(sourceAccount, sourceArn)
		n++
	}
	return n, nil
}

// AssumeRoleCondition is the Condition block that scopes a trust policy to one
// account and one source resource.
func AssumeRoleCondition(sourceAccount, sourceArn string) map[string]any {
	return map[string]any{
		"StringEquals": map[string]any{"aws:SourceAccount": sourceAccount},
		"ArnEquals":    map[string]any{"aws:SourceArn": sourceArn},
	}
}

func allowsAssumeRole(action any) (bool, error) {
	switch a := action.(type) {
	case nil:
		return false, nil
	case string:
		return strings.EqualFold(a, AssumeRoleAction), nil
	case []any:
		for _, v := range a {
			s, ok := v.(string)
			if !ok {
				return false, ErrMalformedStatement
			}
			if strings.EqualFold(s, AssumeRoleAction) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, ErrMalformedStatement
	}
}
