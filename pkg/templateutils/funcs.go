package templateutils

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
)

var Funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		buf := new(bytes.Buffer)
		enc := json.NewEncoder(buf)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSpace(buf.String()), nil
	},

	// envKey turns an output name such as knowledgeBaseId into KNOWLEDGE_BASE_ID.
	"envKey": strcase.ToScreamingSnake,

	"lowerCamel": strcase.ToLowerCamel,
}
