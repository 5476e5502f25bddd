package templateutils

import (
	"embed"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
)

func MustTemplate(fs embed.FS, name string) *template.Template {
	content, err := fs.ReadFile(name)
	if err != nil {
		panic(err)
	}
	t, err := Parse(name, string(content))
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses a template with the package functions and the hermetic sprig
// functions available.
func Parse(name, text string) (*template.Template, error) {
	return template.New(name).
		Funcs(Funcs).
		Funcs(sprig.HermeticTxtFuncMap()).
		Parse(text)
}
