package aws

import (
	"strings"
	"testing"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization"
	"github.com/stretchr/testify/assert"
)

func Test_Sanitizers(t *testing.T) {
	tests := []struct {
		name      string
		sanitizer *sanitization.Sanitizer
		input     string
		want      string
	}{
		{
			name:      "log group keeps path separators",
			sanitizer: CloudwatchLogGroupSanitizer,
			input:     "/aws/vendedlogs/bedrock/knowledge-bases/APPLICATION_LOGS/KB12345",
			want:      "/aws/vendedlogs/bedrock/knowledge-bases/APPLICATION_LOGS/KB12345",
		},
		{
			name:      "log group replaces invalid characters",
			sanitizer: CloudwatchLogGroupSanitizer,
			input:     "my group:1",
			want:      "my_group_1",
		},
		{
			name:      "delivery name replaces invalid characters",
			sanitizer: DeliveryNameSanitizer,
			input:     "kb-delivery-source-kb.1/2",
			want:      "kb-delivery-source-kb-1-2",
		},
		{
			name:      "delivery name truncated",
			sanitizer: DeliveryNameSanitizer,
			input:     strings.Repeat("a", 70),
			want:      strings.Repeat("a", 60),
		},
		{
			name:      "collection name",
			sanitizer: OpenSearchCollectionSanitizer,
			input:     "demo-kb_collection",
			want:      "demo-kb-collection",
		},
		{
			name:      "lambda name strips",
			sanitizer: LambdaFunctionSanitizer,
			input:     "demo-kb ingest.trigger",
			want:      "demo-kbingesttrigger",
		},
		{
			name:      "iam role",
			sanitizer: IamRoleSanitizer,
			input:     "demo-kb role",
			want:      "demo-kb_role",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sanitizer.Apply(tt.input))
		})
	}
}
