package resources

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization/aws"
)

const (
	LAMBDA_RUNTIME_PROVIDED = "provided.al2023"
	LAMBDA_ARCH_ARM64       = "arm64"
	LAMBDA_HANDLER          = "bootstrap"
)

var lambdaFunctionSanitizer = aws.LambdaFunctionSanitizer

type LambdaFunction struct {
	Name         string
	Role         ResourceId
	Runtime      string
	Architecture string
	Handler      string
	// Timeout in seconds.
	Timeout     int
	Environment map[string]string
	Refs        []ResourceId `yaml:"-"`
}

// NewIngestTrigger describes the function that starts an ingestion job when
// documents are uploaded. Its environment is what config.LoadTrigger reads.
func NewIngestTrigger(prefix string, role *IamRole, kb *KnowledgeBase, ds *DataSource, logLevel, keyPrefix string) *LambdaFunction {
	return &LambdaFunction{
		Name:         lambdaFunctionSanitizer.Apply(fmt.Sprintf("%s-ingest-trigger", prefix)),
		Role:         role.Id(),
		Runtime:      LAMBDA_RUNTIME_PROVIDED,
		Architecture: LAMBDA_ARCH_ARM64,
		Handler:      LAMBDA_HANDLER,
		Timeout:      300,
		Environment: map[string]string{
			"KNOWLEDGE_BASE_ID":     PropertyRef{Resource: kb.Id(), Property: ATTR_ID}.Expr(),
			"DATA_SOURCE_ID":        PropertyRef{Resource: ds.Id(), Property: ATTR_ID}.Expr(),
			"LOG_LEVEL":             logLevel,
			"KNOWLEDGE_BASE_PREFIX": keyPrefix,
		},
		Refs: []ResourceId{role.Id(), kb.Id(), ds.Id()},
	}
}

func (fn *LambdaFunction) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: LAMBDA_FUNCTION_TYPE, Name: fn.Name}
}

func (fn *LambdaFunction) Dependencies() []ResourceId {
	return fn.Refs
}
