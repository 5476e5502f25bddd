// Package knowledgebase reads knowledge base metadata from Bedrock.
package knowledgebase

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("knowledge base not found")

type Info struct {
	ID      string
	ARN     string
	Name    string
	Status  string
	RoleARN string
}

// Ready reports whether the knowledge base can accept ingestion jobs.
func (i Info) Ready() bool {
	return i.Status == string(types.KnowledgeBaseStatusActive)
}

func Describe(ctx context.Context, api API, id string) (Info, error) {
	out, err := api.GetKnowledgeBase(ctx, &bedrockagent.GetKnowledgeBaseInput{KnowledgeBaseId: aws.String(id)})
	var notFound *types.ResourceNotFoundException
	switch {
	case errors.As(err, &notFound):
		return Info{}, errors.Wrap(ErrNotFound, id)
	case err != nil:
		return Info{}, errors.Wrapf(err, "could not get knowledge base %s", id)
	case out == nil || out.KnowledgeBase == nil:
		return Info{}, errors.Wrap(ErrNotFound, id)
	}
	kb := out.KnowledgeBase
	return Info{
		ID:      aws.ToString(kb.KnowledgeBaseId),
		ARN:     aws.ToString(kb.KnowledgeBaseArn),
		Name:    aws.ToString(kb.Name),
		Status:  string(kb.Status),
		RoleARN: aws.ToString(kb.RoleArn),
	}, nil
}
