// Command kb-ingest-trigger is the Lambda function that starts a knowledge base
// ingestion job when documents are uploaded to the knowledge base bucket.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	awsprovider "github.com/klothoplatform/kbpipeline/pkg/provider/aws"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/ingestion"
	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := config.LoadTrigger(config.Environ())

	logOpts := logging.LogOpts{Level: cfg.LogLevel.ZapLevel(), Encoding: "json"}
	logger := logOpts.NewLogger()
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if cfgErr != nil {
		logger.Fatal("Invalid configuration", zap.Error(cfgErr))
	}

	clients, err := awsprovider.NewClients(context.Background(), awsprovider.ClientOptions{})
	if err != nil {
		logger.Fatal("Could not create AWS clients", zap.Error(err))
	}
	trigger := ingestion.NewTrigger(clients.BedrockAgent, cfg)

	lambda.Start(func(ctx context.Context, payload json.RawMessage) (ingestion.Response, error) {
		log := logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log = log.With(zap.String("request_id", lc.AwsRequestID))
		}
		return trigger.Handle(logging.WithLogger(ctx, log), payload)
	})
}
