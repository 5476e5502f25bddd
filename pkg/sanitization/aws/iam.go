package aws

import (
	"regexp"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization"
)

// IamRoleSanitizer returns a sanitized IAM role name when applied.
var IamRoleSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "_",
		},
	}, 64)
