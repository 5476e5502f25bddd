// Package ingestion starts Bedrock knowledge base ingestion jobs when new
// documents land in the knowledge base bucket.
package ingestion

import (
	"context"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// maxDescriptionLength is the service limit, in characters, on a job description.
const maxDescriptionLength = 200

type (
	// Trigger starts ingestion jobs for one knowledge base data source. Overlapping
	// invocations are not serialized: if the service rejects a job because one is
	// already running, that rejection is returned like any other failure.
	Trigger struct {
		api         IngestionAPI
		cfg         config.Trigger
		invocations atomic.Int64
	}

	Request struct {
		Description string
		// ClientToken makes repeated starts for the same invocation idempotent at
		// the service. When empty it is derived from the Lambda request id.
		ClientToken string
	}

	// Job is the service's acknowledgement of a started ingestion job.
	Job struct {
		ID     string `json:"jobId"`
		Status string `json:"status"`
	}
)

func NewTrigger(api IngestionAPI, cfg config.Trigger) *Trigger {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = config.DefaultKeyPrefix
	}
	return &Trigger{api: api, cfg: cfg}
}

// Invocations is the number of events this trigger has handled.
func (t *Trigger) Invocations() int64 {
	return t.invocations.Load()
}

// Start issues exactly one StartIngestionJob call and returns once the service
// has accepted or rejected it. It does not wait for the job to finish.
func (t *Trigger) Start(ctx context.Context, req Request) (Job, error) {
	log := logging.GetLogger(ctx).With(
		logging.KnowledgeBaseField(t.cfg.KnowledgeBaseID, ""),
		zap.String("data_source_id", t.cfg.DataSourceID),
	)

	token := req.ClientToken
	if token == "" {
		token = clientToken(ctx)
	}
	input := &bedrockagent.StartIngestionJobInput{
		KnowledgeBaseId: aws.String(t.cfg.KnowledgeBaseID),
		DataSourceId:    aws.String(t.cfg.DataSourceID),
		ClientToken:     aws.String(token),
	}
	if req.Description != "" {
		input.Description = aws.String(truncate(req.Description, maxDescriptionLength))
	}

	out, err := t.api.StartIngestionJob(ctx, input)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fields = append(fields, zap.String("error_code", apiErr.ErrorCode()))
		}
		log.Error("Could not start ingestion job", fields...)
		return Job{}, &StartError{
			KnowledgeBaseID: t.cfg.KnowledgeBaseID,
			DataSourceID:    t.cfg.DataSourceID,
			Cause:           err,
		}
	}

	var job Job
	if out != nil && out.IngestionJob != nil {
		job.ID = aws.ToString(out.IngestionJob.IngestionJobId)
		job.Status = string(out.IngestionJob.Status)
	}
	log.Info("Started ingestion job", zap.String("job_id", job.ID), zap.String("status", job.Status))
	return job, nil
}

func clientToken(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

// truncate keeps the first n characters of s. It never splits a multi-byte
// character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
