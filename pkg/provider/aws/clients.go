// Package aws builds the AWS service clients used by the pipeline.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/pkg/errors"
)

type (
	ClientOptions struct {
		// Region overrides the region from the environment and shared config.
		Region string
		// Profile selects a shared config profile.
		Profile string
	}

	Clients struct {
		Config       aws.Config
		Logs         *cloudwatchlogs.Client
		BedrockAgent *bedrockagent.Client
	}
)

// LoadConfig resolves credentials and region from the default provider chain.
func LoadConfig(ctx context.Context, opts ClientOptions) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "could not load AWS config")
	}
	if cfg.Region == "" {
		return aws.Config{}, errors.New("no AWS region configured")
	}
	return cfg, nil
}

func NewClients(ctx context.Context, opts ClientOptions) (*Clients, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Clients{
		Config:       cfg,
		Logs:         cloudwatchlogs.NewFromConfig(cfg),
		BedrockAgent: bedrockagent.NewFromConfig(cfg),
	}, nil
}
