package stack

import (
	"embed"
	"io"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/resources"
	"github.com/klothoplatform/kbpipeline/pkg/templateutils"
	"github.com/pkg/errors"
)

// Output is a value the stack declares for operators once it is deployed.
type Output struct {
	Name  string
	Value resources.PropertyRef
}

//go:embed templates/*.tmpl
var outputTemplates embed.FS

var builtinTemplates = map[string]*template.Template{
	"table": templateutils.MustTemplate(outputTemplates, "templates/table.tmpl"),
	"env":   templateutils.MustTemplate(outputTemplates, "templates/env.tmpl"),
	"json":  templateutils.MustTemplate(outputTemplates, "templates/json.tmpl"),
}

func newOutput(words string, id resources.ResourceId, property string) Output {
	return Output{
		Name:  strcase.ToLowerCamel(words),
		Value: resources.PropertyRef{Resource: id, Property: property},
	}
}

// OutputMap returns the declared outputs keyed by name.
func (s *Stack) OutputMap() map[string]string {
	m := make(map[string]string, len(s.Outputs))
	for _, o := range s.Outputs {
		m[o.Name] = o.Value.String()
	}
	return m
}

// RenderOutputs writes the resolved outputs of a deployed stack. tmpl is either
// the name of a built-in format (table, env, json) or template text that
// receives the outputs as a map keyed by output name.
func RenderOutputs(w io.Writer, tmpl string, outputs config.StackOutputs) error {
	if tmpl == "" {
		tmpl = "table"
	}
	t, ok := builtinTemplates[tmpl]
	if !ok {
		var err error
		t, err = templateutils.Parse("outputs", tmpl)
		if err != nil {
			return errors.Wrap(err, "could not parse outputs template")
		}
	}
	if err := t.Execute(w, outputs.Map()); err != nil {
		return errors.Wrap(err, "could not render outputs")
	}
	return nil
}
