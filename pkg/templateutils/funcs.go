package templateutils

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"
)

// Funcs are available to every document template in addition to sprig's
// hermetic text functions.
var Funcs = template.FuncMap{
	// json renders v as a JSON literal, so `"{{ json .Bucket }}"` is never
	// needed and values containing quotes stay valid JSON.
	"json": func(v any) (string, error) {
		buf := new(bytes.Buffer)
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSpace(buf.String()), nil
	},

	// s3Arn builds the ARN of a bucket, or of a key pattern inside it.
	"s3Arn": func(partition, bucket string, key ...string) string {
		arn := "arn:" + partition + ":s3:::" + bucket
		if len(key) > 0 {
			arn += "/" + strings.Join(key, "/")
		}
		return arn
	},
}
