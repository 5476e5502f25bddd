package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const (
	DefaultKeyPrefix  = "knowledgeBase"
	DefaultNamePrefix = "cdk-bedrock-example"
	DefaultRegion     = "us-east-1"
)

var ErrMissingValue = errors.New("required value is missing")

type (
	// Trigger is the configuration of the ingestion trigger function. It is read
	// once at cold start and handed to the handler by value.
	Trigger struct {
		KnowledgeBaseID string   `mapstructure:"KNOWLEDGE_BASE_ID"`
		DataSourceID    string   `mapstructure:"DATA_SOURCE_ID"`
		LogLevel        LogLevel `mapstructure:"LOG_LEVEL"`
		KeyPrefix       string   `mapstructure:"KNOWLEDGE_BASE_PREFIX"`
	}

	LogDelivery struct {
		KnowledgeBaseID  string   `mapstructure:"KNOWLEDGE_BASE_ID"`
		KnowledgeBaseARN string   `mapstructure:"KNOWLEDGE_BASE_ARN"`
		AccountID        string   `mapstructure:"ACCOUNT_ID"`
		Region           string   `mapstructure:"AWS_REGION"`
		LogLevel         LogLevel `mapstructure:"LOG_LEVEL"`
	}

	Stack struct {
		NamePrefix string   `mapstructure:"NAME_PREFIX"`
		LogLevel   LogLevel `mapstructure:"LOG_LEVEL"`
		Region     string   `mapstructure:"AWS_REGION"`
		AccountID  string   `mapstructure:"ACCOUNT_ID"`
	}
)

// Environ returns the process environment as a map suitable for the Load* functions.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

func LoadTrigger(env map[string]string) (Trigger, error) {
	cfg := Trigger{
		LogLevel:  LogLevelInfo,
		KeyPrefix: DefaultKeyPrefix,
	}
	if err := decode(env, &cfg); err != nil {
		return Trigger{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Trigger{}, err
	}
	return cfg, nil
}

func (cfg Trigger) Validate() error {
	if cfg.KnowledgeBaseID == "" {
		return missing("KNOWLEDGE_BASE_ID")
	}
	if cfg.DataSourceID == "" {
		return missing("DATA_SOURCE_ID")
	}
	_, err := ParseLogLevel(string(cfg.LogLevel))
	return err
}

func LoadLogDelivery(env map[string]string) (LogDelivery, error) {
	cfg := LogDelivery{LogLevel: LogLevelInfo}
	if err := decode(env, &cfg); err != nil {
		return LogDelivery{}, err
	}
	if cfg.KnowledgeBaseID == "" {
		return LogDelivery{}, missing("KNOWLEDGE_BASE_ID")
	}
	return cfg, nil
}

func LoadStack(env map[string]string) (Stack, error) {
	cfg := Stack{
		NamePrefix: DefaultNamePrefix,
		LogLevel:   LogLevelInfo,
		Region:     DefaultRegion,
	}
	if err := decode(env, &cfg); err != nil {
		return Stack{}, err
	}
	prefix, err := NormalizeNamePrefix(cfg.NamePrefix)
	if err != nil {
		return Stack{}, err
	}
	cfg.NamePrefix = prefix
	return cfg, nil
}

func decode(env map[string]string, out any) error {
	// Empty strings are treated as unset so defaults survive "FOO=" entries.
	input := make(map[string]string, len(env))
	for k, v := range env {
		if v != "" {
			input[k] = v
		}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     out,
	})
	if err != nil {
		return errors.Wrap(err, "could not create config decoder")
	}
	if err := dec.Decode(input); err != nil {
		return errors.Wrap(err, "could not decode configuration")
	}
	return nil
}

func missing(key string) error {
	return errors.Wrap(ErrMissingValue, key)
}
