package aws

import (
	"regexp"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization"
)

// S3BucketSanitizer returns a sanitized bucket name when applied.
var S3BucketSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-z0-9.-]`),
			Replacement: "-",
		},
	},
	// the account id and region are appended at deploy time to keep names globally unique
	40,
)

// OpenSearchCollectionSanitizer returns a sanitized OpenSearch Serverless collection name when applied.
// Collection names are limited to 32 characters, which is why name prefixes stop at 20.
var OpenSearchCollectionSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-z0-9-]`),
			Replacement: "-",
		},
	}, 32)
