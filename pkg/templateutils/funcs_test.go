package templateutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data any
		want string
	}{
		{
			name: "envKey",
			tmpl: `{{ envKey . }}`,
			data: "knowledgeBaseRoleArn",
			want: "KNOWLEDGE_BASE_ROLE_ARN",
		},
		{
			name: "lowerCamel",
			tmpl: `{{ lowerCamel . }}`,
			data: "data source id",
			want: "dataSourceId",
		},
		{
			name: "json",
			tmpl: `{{ json . }}`,
			data: map[string]string{"collectionName": "demo-kb-collection"},
			want: `{"collectionName":"demo-kb-collection"}`,
		},
		{
			name: "sprig functions",
			tmpl: `{{ . | upper | quote }}`,
			data: "kb-1",
			want: `"KB-1"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			tmpl, err := Parse(tt.name, tt.tmpl)
			if !assert.NoError(err) {
				return
			}
			buf := new(bytes.Buffer)
			if assert.NoError(tmpl.Execute(buf, tt.data)) {
				assert.Equal(tt.want, buf.String())
			}
		})
	}
}

func Test_Parse_Invalid(t *testing.T) {
	_, err := Parse("bad", `{{ .Missing `)
	assert.Error(t, err)
}
