package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/klothoplatform/farmcreator/pkg/templateutils"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// Document is a decoded IAM policy document.
type Document map[string]any

// TemplateData is available to policy documents written as templates.
type TemplateData struct {
	AccountID               string
	Region                  string
	Partition               string
	FarmID                  string
	RoleName                string
	JobAttachmentBucket     string
	JobAttachmentRootPrefix string
}

var ErrEmptyDocument = errors.New("document is empty")

// Load reads the document at path. The content is returned as-is; use Render to
// turn it into plain JSON.
func Load(fs afero.Fs, path string) ([]byte, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read document %s", path)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.Wrapf(ErrEmptyDocument, "couldn't read document %s", path)
	}
	return raw, nil
}

// Render executes raw as a template, strips JSON comments and checks that the
// result is a non-empty JSON value.
func Render(name string, raw []byte, data TemplateData) ([]byte, error) {
	rendered, err := templateutils.Render(name, raw, data)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't render %s", name)
	}
	rendered = jsonc.ToJSON(rendered)

	var v any
	if err := json.Unmarshal(rendered, &v); err != nil {
		return nil, errors.Wrapf(err, "couldn't interpret %s as JSON", name)
	}
	if isFalsy(v) {
		return nil, errors.Wrapf(ErrEmptyDocument, "couldn't interpret %s as JSON", name)
	}
	return bytes.TrimSpace(rendered), nil
}

// LoadAndRender is Load followed by Render, using path as the template name.
func LoadAndRender(fs afero.Fs, path string, data TemplateData) ([]byte, error) {
	raw, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return Render(path, raw, data)
}

func ParseDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "policy document must be a JSON object")
	}
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// JSON encodes the document compactly. Map keys are sorted, so the output is
// deterministic.
func (d Document) JSON() (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("could not encode policy document: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func isFalsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
