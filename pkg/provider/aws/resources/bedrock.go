package resources

import (
	"fmt"
)

const (
	DEFAULT_EMBEDDING_MODEL = "amazon.titan-embed-text-v2:0"

	vectorIndexName = "bedrock-knowledge-base-default-index"
	vectorField     = "bedrock-knowledge-base-default-vector"
	textField       = "AMAZON_BEDROCK_TEXT_CHUNK"
	metadataField   = "AMAZON_BEDROCK_METADATA"
)

type (
	KnowledgeBase struct {
		Name              string
		Role              ResourceId
		Collection        ResourceId
		AccessPolicy      ResourceId
		EmbeddingModelArn string
		VectorIndexName   string
		VectorField       string
		TextField         string
		MetadataField     string
	}

	// DataSource ties a knowledge base to the documents under InclusionPrefixes
	// in the bucket.
	DataSource struct {
		Name              string
		KnowledgeBase     ResourceId
		Bucket            ResourceId
		InclusionPrefixes []string
	}
)

// EmbeddingModelArn is the foundation model ARN for a model id in a region.
func EmbeddingModelArn(region, modelID string) string {
	return fmt.Sprintf("arn:aws:bedrock:%s::foundation-model/%s", region, modelID)
}

func NewKnowledgeBase(prefix string, role *IamRole, collection *Collection, policy *CollectionAccessPolicy, embeddingModelArn string) *KnowledgeBase {
	return &KnowledgeBase{
		Name:              fmt.Sprintf("%s-knowledge-base", prefix),
		Role:              role.Id(),
		Collection:        collection.Id(),
		AccessPolicy:      policy.Id(),
		EmbeddingModelArn: embeddingModelArn,
		VectorIndexName:   vectorIndexName,
		VectorField:       vectorField,
		TextField:         textField,
		MetadataField:     metadataField,
	}
}

func (kb *KnowledgeBase) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: KNOWLEDGE_BASE_TYPE, Name: kb.Name}
}

func (kb *KnowledgeBase) Dependencies() []ResourceId {
	return []ResourceId{kb.Role, kb.Collection, kb.AccessPolicy}
}

func NewDataSource(prefix string, kb *KnowledgeBase, bucket *Bucket, keyPrefix string) *DataSource {
	return &DataSource{
		Name:              fmt.Sprintf("%s-data-source", prefix),
		KnowledgeBase:     kb.Id(),
		Bucket:            bucket.Id(),
		InclusionPrefixes: []string{keyPrefix},
	}
}

func (ds *DataSource) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: DATA_SOURCE_TYPE, Name: ds.Name}
}

func (ds *DataSource) Dependencies() []ResourceId {
	return []ResourceId{ds.KnowledgeBase, ds.Bucket}
}
