package listener

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Keys that the asset-management tool sends once per selected column.
var listKeys = map[string]bool{
	"column_display_names": true,
	"cols":                 true,
}

// Params are the parameters of a webhook call.
type Params struct {
	Values             map[string]string
	ColumnDisplayNames []string
	Cols               []string
}

func (p Params) Empty() bool {
	return len(p.Values) == 0 && len(p.ColumnDisplayNames) == 0 && len(p.Cols) == 0
}

func (p Params) Get(key string) (string, bool) {
	v, ok := p.Values[key]
	return v, ok
}

func (p *Params) set(key, value string) {
	switch key {
	case "column_display_names":
		p.ColumnDisplayNames = append(p.ColumnDisplayNames, value)
	case "cols":
		p.Cols = append(p.Cols, value)
	default:
		if p.Values == nil {
			p.Values = make(map[string]string)
		}
		p.Values[key] = value
	}
}

var ErrNoQuery = errors.New("no parameters given")

// ParseQuery reads the key=value pairs after the last "?" of a request URI.
// Keys and values are percent-decoded ("+" is kept as-is). Repeated
// column_display_names and cols keys accumulate in order; other repeated keys
// keep the last value.
func ParseQuery(requestURI string) (Params, error) {
	var params Params
	requestURI, _, _ = strings.Cut(requestURI, "#")
	idx := strings.LastIndexByte(requestURI, '?')
	if idx < 0 {
		return params, ErrNoQuery
	}
	for _, pair := range strings.Split(requestURI[idx+1:], "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return params, fmt.Errorf("malformed parameter %q: expected key=value", pair)
		}
		params.set(unescape(key), unescape(value))
	}
	return params, nil
}

// unescape decodes every valid %XX escape and keeps malformed ones as
// literal text, so "a%20b%zz" becomes "a b%zz".
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c <= 'F':
		return c - 'A' + 10
	default:
		return c - 'a' + 10
	}
}

// formParams takes the first value of each posted form field.
func formParams(form url.Values) Params {
	var params Params
	for key, values := range form {
		if listKeys[key] {
			for _, v := range values {
				params.set(key, v)
			}
			continue
		}
		if len(values) > 0 {
			params.set(key, values[0])
		}
	}
	return params
}
