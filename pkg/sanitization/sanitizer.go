package sanitization

import "regexp"

type (
	Sanitizer struct {
		rules     []Rule
		maxLength int
	}

	Rule struct {
		Pattern     *regexp.Regexp
		Replacement string
	}
)

// Apply runs every rule in order, then truncates the result to the maximum
// length. A maxLength of 0 disables truncation.
func (s *Sanitizer) Apply(input string) string {
	output := input
	for _, rule := range s.rules {
		output = rule.Pattern.ReplaceAllString(output, rule.Replacement)
	}
	if s.maxLength > 0 && len(output) > s.maxLength {
		output = output[:s.maxLength]
	}
	return output
}

func (s *Sanitizer) MaxLength() int {
	return s.maxLength
}

func NewSanitizer(rules []Rule, maxLength int) *Sanitizer {
	return &Sanitizer{rules: rules, maxLength: maxLength}
}
