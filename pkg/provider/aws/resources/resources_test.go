package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ResourceId_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    ResourceId
		wantErr bool
	}{
		{
			name: "provider type and name",
			text: "aws:log_group:demo-kb-knowledge-base-logs",
			want: ResourceId{Provider: "aws", Type: "log_group", Name: "demo-kb-knowledge-base-logs"},
		},
		{
			name: "type only",
			text: "aws:s3_bucket",
			want: ResourceId{Provider: "aws", Type: "s3_bucket"},
		},
		{
			name: "empty",
			text: "",
		},
		{
			name:    "provider only",
			text:    "aws",
			wantErr: true,
		},
		{
			name:    "invalid type",
			text:    "aws:log-group:x",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			var got ResourceId
			err := got.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tt.want, got)
			assert.Equal(tt.text, got.String())
		})
	}
}

func Test_PropertyRef(t *testing.T) {
	assert := assert.New(t)
	ref := PropertyRef{
		Resource: ResourceId{Provider: AWS_PROVIDER, Type: KNOWLEDGE_BASE_TYPE, Name: "demo-kb-knowledge-base"},
		Property: ATTR_ID,
	}
	assert.Equal("aws:bedrock_knowledge_base:demo-kb-knowledge-base#Id", ref.String())
	assert.Equal("${aws:bedrock_knowledge_base:demo-kb-knowledge-base#Id}", ref.Expr())

	var parsed PropertyRef
	if assert.NoError(parsed.UnmarshalText([]byte(ref.String()))) {
		assert.Equal(ref, parsed)
	}
	assert.Error(parsed.UnmarshalText([]byte("aws:s3_bucket:b")))
}

func Test_ResourceNames(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "short prefix", prefix: "demo-kb"},
		{name: "longest prefix", prefix: strings.Repeat("a", 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			bucket := NewBucket(tt.prefix)
			collection := NewCollection(tt.prefix)
			role := NewKnowledgeBaseRole(tt.prefix, bucket, collection, EmbeddingModelArn("us-east-1", DEFAULT_EMBEDDING_MODEL))

			assert.Equal(tt.prefix+"-collection", collection.Name, "collection names must not be truncated")
			assert.LessOrEqual(len(collection.Name), 32)
			assert.Equal(tt.prefix+"-knowledge-base", bucket.Name)
			assert.Equal(tt.prefix+"-knowledge-base-role", role.Name)
			assert.ElementsMatch([]ResourceId{bucket.Id(), collection.Id()}, role.Dependencies())
		})
	}
}

func Test_NewIngestTrigger(t *testing.T) {
	assert := assert.New(t)
	bucket := NewBucket("demo-kb")
	collection := NewCollection("demo-kb")
	kbRole := NewKnowledgeBaseRole("demo-kb", bucket, collection, "model")
	policy := NewCollectionAccessPolicy(collection, kbRole)
	kb := NewKnowledgeBase("demo-kb", kbRole, collection, policy, "model")
	ds := NewDataSource("demo-kb", kb, bucket, "knowledgeBase")
	fnRole := NewIngestTriggerRole("demo-kb", bucket)

	fn := NewIngestTrigger("demo-kb", fnRole, kb, ds, "INFO", "knowledgeBase")

	assert.Equal("demo-kb-ingest-trigger", fn.Name)
	assert.Equal(map[string]string{
		"KNOWLEDGE_BASE_ID":     "${aws:bedrock_knowledge_base:demo-kb-knowledge-base#Id}",
		"DATA_SOURCE_ID":        "${aws:bedrock_data_source:demo-kb-data-source#Id}",
		"LOG_LEVEL":             "INFO",
		"KNOWLEDGE_BASE_PREFIX": "knowledgeBase",
	}, fn.Environment)
	assert.Equal([]ResourceId{fnRole.Id(), kb.Id(), ds.Id()}, fn.Dependencies())

	notification := NewBucketNotification(bucket, fn, "knowledgeBase")
	assert.Equal([]string{S3_OBJECT_CREATED_EVENT}, notification.Events)
	assert.Equal("knowledgeBase", notification.FilterPrefix)
	assert.Equal([]ResourceId{bucket.Id(), fn.Id()}, notification.Dependencies())
}
