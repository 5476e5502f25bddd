package knowledgebase

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
)

//go:generate 	mockgen -source=./api.go --destination=./api_mock_test.go --package=knowledgebase

type API interface {
	GetKnowledgeBase(ctx context.Context, params *bedrockagent.GetKnowledgeBaseInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetKnowledgeBaseOutput, error)
}
