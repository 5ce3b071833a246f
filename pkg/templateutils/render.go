package templateutils

import (
	"bytes"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
)

// HasActions reports whether content contains template actions at all.
// Content without actions is passed through untouched by Render.
func HasActions(content []byte) bool {
	return bytes.Contains(content, []byte("{{"))
}

// Render executes content as a text/template named name. Missing keys are an
// error rather than "<no value>" so a typo cannot end up inside a policy.
func Render(name string, content []byte, data any) ([]byte, error) {
	if !HasActions(content) {
		return content, nil
	}
	t, err := template.New(name).
		Option("missingkey=error").
		Funcs(sprig.HermeticTxtFuncMap()).
		Funcs(Funcs).
		Parse(string(content))
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
