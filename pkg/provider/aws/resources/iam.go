package resources

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization/aws"
)

const (
	VERSION = "2012-10-17"

	LAMBDA_BASIC_EXECUTION_POLICY = "arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"
)

var roleSanitizer = aws.IamRoleSanitizer

type (
	IamRole struct {
		Name                string
		AssumeRolePolicyDoc *PolicyDocument
		ManagedPolicies     []string                   `yaml:",omitempty"`
		InlinePolicies      map[string]*PolicyDocument `yaml:",omitempty"`
		// Refs are the resources named in the role's policies.
		Refs []ResourceId `yaml:"-"`
	}

	PolicyDocument struct {
		Version   string
		Statement []StatementEntry
	}

	StatementEntry struct {
		Effect    string
		Action    []string
		Resource  []string   `yaml:",omitempty"`
		Principal *Principal `yaml:",omitempty"`
	}

	Principal struct {
		Service string
	}
)

func assumeRolePolicy(service string) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect:    "Allow",
				Action:    []string{"sts:AssumeRole"},
				Principal: &Principal{Service: service},
			},
		},
	}
}

// NewKnowledgeBaseRole is the role Bedrock assumes to read documents from the
// bucket and write embeddings to the collection.
func NewKnowledgeBaseRole(prefix string, bucket *Bucket, collection *Collection, embeddingModelArn string) *IamRole {
	bucketArn := PropertyRef{Resource: bucket.Id(), Property: ATTR_ARN}.Expr()
	return &IamRole{
		Name:                roleSanitizer.Apply(fmt.Sprintf("%s-knowledge-base-role", prefix)),
		AssumeRolePolicyDoc: assumeRolePolicy("bedrock.amazonaws.com"),
		InlinePolicies: map[string]*PolicyDocument{
			"knowledgeBasePolicy": {
				Version: VERSION,
				Statement: []StatementEntry{
					{
						Effect:   "Allow",
						Action:   []string{"s3:GetObject", "s3:ListBucket"},
						Resource: []string{bucketArn, bucketArn + "/*"},
					},
					{
						Effect:   "Allow",
						Action:   []string{"aoss:APIAccessAll"},
						Resource: []string{PropertyRef{Resource: collection.Id(), Property: ATTR_ARN}.Expr()},
					},
					{
						Effect:   "Allow",
						Action:   []string{"bedrock:InvokeModel"},
						Resource: []string{embeddingModelArn},
					},
				},
			},
		},
		Refs: []ResourceId{bucket.Id(), collection.Id()},
	}
}

// NewIngestTriggerRole is the execution role of the ingestion trigger function.
func NewIngestTriggerRole(prefix string, bucket *Bucket) *IamRole {
	bucketArn := PropertyRef{Resource: bucket.Id(), Property: ATTR_ARN}.Expr()
	return &IamRole{
		Name:                roleSanitizer.Apply(fmt.Sprintf("%s-ingest-trigger-role", prefix)),
		AssumeRolePolicyDoc: assumeRolePolicy("lambda.amazonaws.com"),
		ManagedPolicies:     []string{LAMBDA_BASIC_EXECUTION_POLICY},
		InlinePolicies: map[string]*PolicyDocument{
			"bedrockPolicy": {
				Version: VERSION,
				Statement: []StatementEntry{
					{Effect: "Allow", Action: []string{"bedrock:*"}, Resource: []string{"*"}},
					{
						Effect:   "Allow",
						Action:   []string{"s3:GetObject*", "s3:GetBucket*", "s3:List*"},
						Resource: []string{bucketArn, bucketArn + "/*"},
					},
				},
			},
		},
		Refs: []ResourceId{bucket.Id()},
	}
}

func (role *IamRole) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: IAM_ROLE_TYPE, Name: role.Name}
}

func (role *IamRole) Dependencies() []ResourceId {
	return role.Refs
}
