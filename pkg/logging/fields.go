package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type knowledgeBaseField struct {
	id  string
	arn string
}

func (field knowledgeBaseField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", field.id)
	if field.arn != "" {
		enc.AddString("arn", field.arn)
	}
	return nil
}

func KnowledgeBaseField(id, arn string) zap.Field {
	return zap.Object("knowledge_base", knowledgeBaseField{id: id, arn: arn})
}

type stepField struct {
	number int
	name   string
}

func (field stepField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("number", field.number)
	enc.AddString("name", field.name)
	return nil
}

// StepField identifies one step of an ordered provisioning sequence.
func StepField(number int, name string) zap.Field {
	return zap.Object("step", stepField{number: number, name: name})
}

type objectField struct {
	bucket string
	key    string
}

func (field objectField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("bucket", field.bucket)
	enc.AddString("key", field.key)
	return nil
}

// ObjectField describes the storage object that caused an invocation.
func ObjectField(bucket, key string) zap.Field {
	return zap.Object("object", objectField{bucket: bucket, key: key})
}
