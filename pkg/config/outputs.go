package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StackOutputs are the identifiers a deployed stack declares for operators and
// for the log delivery setup.
type StackOutputs struct {
	KnowledgeBaseBucket  string `json:"knowledgeBaseBucket" yaml:"knowledgeBaseBucket" toml:"knowledgeBaseBucket"`
	KnowledgeBaseRoleArn string `json:"knowledgeBaseRoleArn" yaml:"knowledgeBaseRoleArn" toml:"knowledgeBaseRoleArn"`
	DataSourceID         string `json:"dataSourceId" yaml:"dataSourceId" toml:"dataSourceId"`
	CollectionName       string `json:"collectionName" yaml:"collectionName" toml:"collectionName"`
	KnowledgeBaseID      string `json:"knowledgeBaseId" yaml:"knowledgeBaseId" toml:"knowledgeBaseId"`
	KnowledgeBaseArn     string `json:"knowledgeBaseArn,omitempty" yaml:"knowledgeBaseArn,omitempty" toml:"knowledgeBaseArn,omitempty"`
}

func ReadStackOutputs(fpath string) (StackOutputs, error) {
	var outputs StackOutputs

	f, err := os.Open(fpath)
	if err != nil {
		return outputs, err
	}
	defer f.Close() // nolint:errcheck

	switch ext := filepath.Ext(fpath); ext {
	case ".json":
		err = json.NewDecoder(f).Decode(&outputs)

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&outputs)

	case ".toml":
		err = toml.NewDecoder(f).Decode(&outputs)

	default:
		return outputs, errors.Errorf("unsupported outputs file extension %q", ext)
	}
	if err != nil {
		return outputs, errors.Wrapf(err, "could not read stack outputs from %s", fpath)
	}
	return outputs, nil
}

// Map returns the outputs keyed by their declared names, skipping empty values.
func (o StackOutputs) Map() map[string]string {
	m := map[string]string{
		"knowledgeBaseBucket":  o.KnowledgeBaseBucket,
		"knowledgeBaseRoleArn": o.KnowledgeBaseRoleArn,
		"dataSourceId":         o.DataSourceID,
		"collectionName":       o.CollectionName,
		"knowledgeBaseId":      o.KnowledgeBaseID,
		"knowledgeBaseArn":     o.KnowledgeBaseArn,
	}
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}
