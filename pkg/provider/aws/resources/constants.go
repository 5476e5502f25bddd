package resources

const AWS_PROVIDER = "aws"

const (
	S3_BUCKET_TYPE              = "s3_bucket"
	S3_BUCKET_NOTIFICATION_TYPE = "s3_bucket_notification"
	IAM_ROLE_TYPE               = "iam_role"
	LAMBDA_FUNCTION_TYPE        = "lambda_function"
	OPENSEARCH_COLLECTION_TYPE  = "opensearch_collection"
	KNOWLEDGE_BASE_TYPE         = "bedrock_knowledge_base"
	DATA_SOURCE_TYPE            = "bedrock_data_source"
	LOG_GROUP_TYPE              = "log_group"
	LOG_DELIVERY_TYPE           = "log_delivery"
)

// Attribute names that outputs and other resources refer to.
const (
	ATTR_NAME = "Name"
	ATTR_ARN  = "Arn"
	ATTR_ID   = "Id"
)
