package ingestion

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
)

//go:generate 	mockgen -source=./api.go --destination=./api_mock_test.go --package=ingestion

// IngestionAPI is the part of the Bedrock Agent client that starts ingestion
// jobs. *bedrockagent.Client satisfies it.
type IngestionAPI interface {
	StartIngestionJob(ctx context.Context, params *bedrockagent.StartIngestionJobInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.StartIngestionJobOutput, error)
}
