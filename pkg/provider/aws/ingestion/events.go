package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	s3ObjectCreatedPrefix   = "ObjectCreated:"
	eventBridgeObjectCreate = "Object Created"
	eventBridgeS3Source     = "aws.s3"
)

type (
	// Response is what the function returns for an invocation.
	Response struct {
		Started bool   `json:"started"`
		Object  string `json:"object,omitempty"`
		Job     *Job   `json:"job,omitempty"`
	}

	object struct {
		bucket string
		key    string
	}

	eventBridgeS3Detail struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key string `json:"key"`
		} `json:"object"`
	}

	envelope struct {
		Records    json.RawMessage `json:"Records"`
		DetailType string          `json:"detail-type"`
	}
)

func (o object) String() string {
	return fmt.Sprintf("s3://%s/%s", o.bucket, o.key)
}

// Handle is the function entry point. It accepts either an S3 notification or
// an EventBridge event.
func (t *Trigger) Handle(ctx context.Context, payload json.RawMessage) (Response, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Response{}, errors.Wrap(ErrUnrecognizedEvent, err.Error())
	}
	switch {
	case len(env.Records) > 0:
		var event events.S3Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return Response{}, errors.Wrap(err, "could not decode S3 event")
		}
		return t.HandleS3Event(ctx, event)

	case env.DetailType != "":
		var event events.CloudWatchEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return Response{}, errors.Wrap(err, "could not decode EventBridge event")
		}
		return t.HandleEventBridge(ctx, event)
	}
	return Response{}, ErrUnrecognizedEvent
}

// HandleS3Event starts one ingestion job if any created object in the event is
// under the configured key prefix. Multiple qualifying records still produce a
// single job since ingestion syncs the whole data source.
func (t *Trigger) HandleS3Event(ctx context.Context, event events.S3Event) (Response, error) {
	var objects []object
	for _, record := range event.Records {
		if !strings.HasPrefix(record.EventName, s3ObjectCreatedPrefix) {
			continue
		}
		objects = append(objects, object{bucket: record.S3.Bucket.Name, key: decodedKey(record.S3.Object)})
	}
	return t.handle(ctx, "s3", len(event.Records), objects)
}

// HandleEventBridge applies the same rule as HandleS3Event to an S3 "Object
// Created" event delivered through EventBridge.
func (t *Trigger) HandleEventBridge(ctx context.Context, event events.CloudWatchEvent) (Response, error) {
	var objects []object
	if event.Source == eventBridgeS3Source && event.DetailType == eventBridgeObjectCreate {
		var detail eventBridgeS3Detail
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			return Response{}, errors.Wrap(err, "could not decode EventBridge S3 detail")
		}
		objects = append(objects, object{bucket: detail.Bucket.Name, key: detail.Object.Key})
	}
	return t.handle(ctx, "eventbridge", 1, objects)
}

func (t *Trigger) handle(ctx context.Context, source string, records int, created []object) (Response, error) {
	n := t.invocations.Inc()
	log := logging.GetLogger(ctx).With(
		zap.Int64("invocation", n),
		zap.String("event_source", source),
		zap.Int("records", records),
	)

	var match *object
	for i := range created {
		if strings.HasPrefix(created[i].key, t.cfg.KeyPrefix) {
			match = &created[i]
			break
		}
	}
	if match == nil {
		log.Debug("No created object under key prefix", zap.String("prefix", t.cfg.KeyPrefix))
		return Response{}, nil
	}

	log = log.With(logging.ObjectField(match.bucket, match.key))
	log.Info("Received knowledge base document")
	job, err := t.Start(logging.WithLogger(ctx, log), Request{
		Description: "Triggered by " + match.String(),
	})
	if err != nil {
		return Response{Object: match.String()}, err
	}
	return Response{Started: true, Object: match.String(), Job: &job}, nil
}

// decodedKey returns the object key with S3's form encoding removed.
func decodedKey(o events.S3Object) string {
	if o.URLDecodedKey != "" {
		return o.URLDecodedKey
	}
	key, err := url.QueryUnescape(o.Key)
	if err != nil {
		return o.Key
	}
	return key
}
