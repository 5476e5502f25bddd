package resources

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization/aws"
)

const S3_OBJECT_CREATED_EVENT = "s3:ObjectCreated:*"

var bucketSanitizer = aws.S3BucketSanitizer

type (
	Bucket struct {
		Name               string
		Encryption         string
		EventBridgeEnabled bool
		ForceDestroy       bool
		PublicReadAccess   bool
	}

	// BucketNotification invokes a function for new objects under a key prefix.
	BucketNotification struct {
		Name         string
		Bucket       ResourceId
		Function     ResourceId
		Events       []string
		FilterPrefix string
	}
)

func NewBucket(prefix string) *Bucket {
	return &Bucket{
		Name:               bucketSanitizer.Apply(fmt.Sprintf("%s-knowledge-base", prefix)),
		Encryption:         "S3_MANAGED",
		EventBridgeEnabled: true,
		ForceDestroy:       true,
	}
}

func (bucket *Bucket) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: S3_BUCKET_TYPE, Name: bucket.Name}
}

func (bucket *Bucket) Dependencies() []ResourceId {
	return nil
}

func NewBucketNotification(bucket *Bucket, function *LambdaFunction, keyPrefix string) *BucketNotification {
	return &BucketNotification{
		Name:         fmt.Sprintf("%s-%s", bucket.Name, function.Name),
		Bucket:       bucket.Id(),
		Function:     function.Id(),
		Events:       []string{S3_OBJECT_CREATED_EVENT},
		FilterPrefix: keyPrefix,
	}
}

func (n *BucketNotification) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: S3_BUCKET_NOTIFICATION_TYPE, Name: n.Name}
}

func (n *BucketNotification) Dependencies() []ResourceId {
	return []ResourceId{n.Bucket, n.Function}
}
