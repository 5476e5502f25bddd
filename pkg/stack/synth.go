package stack

import (
	"io"

	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/resources"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	manifest struct {
		Stack     string             `yaml:"stack"`
		Region    string             `yaml:"region"`
		AccountID string             `yaml:"accountId,omitempty"`
		Resources []manifestResource `yaml:"resources"`
		Outputs   map[string]string  `yaml:"outputs"`
	}

	manifestResource struct {
		Id         resources.ResourceId   `yaml:"id"`
		DependsOn  []resources.ResourceId `yaml:"dependsOn,omitempty"`
		Properties resources.Resource     `yaml:"properties"`
	}
)

// Synth writes the stack as a YAML manifest with resources in deploy order.
func (s *Stack) Synth(w io.Writer) error {
	rs, err := s.Resources()
	if err != nil {
		return errors.Wrap(err, "could not order resources")
	}
	m := manifest{
		Stack:     s.Name,
		Region:    s.Region,
		AccountID: s.AccountID,
		Outputs:   s.OutputMap(),
	}
	for _, r := range rs {
		deps, err := s.Dependencies(r.Id())
		if err != nil {
			return err
		}
		m.Resources = append(m.Resources, manifestResource{Id: r.Id(), DependsOn: deps, Properties: r})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "could not encode stack manifest")
	}
	return enc.Close()
}
