package aws

import (
	"regexp"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization"
)

// CloudwatchLogGroupSanitizer returns a sanitized log group name when applied.
var CloudwatchLogGroupSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^-._/#A-Za-z\d]`),
			Replacement: "_",
		},
	}, 512)

// DeliveryNameSanitizer returns a sanitized delivery source or delivery destination name when applied.
var DeliveryNameSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w-]`),
			Replacement: "-",
		},
	}, 60)
