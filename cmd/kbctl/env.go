package main

import (
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/pkg/errors"
)

// environ is the process environment with flag values layered on top. Flags
// that were not given leave the environment value in place.
type environ map[string]string

func newEnviron() environ {
	return environ(config.Environ())
}

func (env environ) set(key, value string) {
	if value != "" {
		env[key] = value
	}
}

// setOutputs fills the knowledge base identifiers from a stack outputs file.
// Explicit flags are applied after this and win.
func (env environ) setOutputs(fpath string) error {
	if fpath == "" {
		return nil
	}
	outputs, err := config.ReadStackOutputs(fpath)
	if err != nil {
		return errors.Wrap(err, "could not load stack outputs")
	}
	env.set("KNOWLEDGE_BASE_ID", outputs.KnowledgeBaseID)
	env.set("KNOWLEDGE_BASE_ARN", outputs.KnowledgeBaseArn)
	env.set("DATA_SOURCE_ID", outputs.DataSourceID)
	return nil
}
