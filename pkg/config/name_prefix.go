package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const MaxNamePrefixLength = 20

var (
	ErrNamePrefixEmpty   = errors.New("name prefix must not be empty")
	ErrNamePrefixTooLong = errors.Errorf("name prefix must be %d characters or less", MaxNamePrefixLength)
	ErrNamePrefixCharset = errors.New("name prefix must only contain lowercase letters, numbers, and hyphens")

	namePrefixInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
)

// ValidationError reports which rule a configuration value broke. The rule is
// one of the package sentinels so callers can use errors.Is on it.
type ValidationError struct {
	Field string
	Value string
	Rule  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return e.Rule
}

// ValidateNamePrefix accepts exactly the prefixes matching ^[a-z0-9-]{1,20}$.
// Length is checked before the character set so an over-long prefix always
// reports the length rule.
func ValidateNamePrefix(prefix string) error {
	invalid := func(rule error) error {
		return &ValidationError{Field: "name prefix", Value: prefix, Rule: rule}
	}
	switch {
	case prefix == "":
		return invalid(ErrNamePrefixEmpty)
	case len(prefix) > MaxNamePrefixLength:
		return invalid(ErrNamePrefixTooLong)
	case namePrefixInvalidChars.MatchString(prefix):
		return invalid(ErrNamePrefixCharset)
	}
	return nil
}

// NormalizeNamePrefix lower-cases the prefix before validating it. This is what
// stack composition uses, so "Demo-KB" is accepted as "demo-kb".
func NormalizeNamePrefix(prefix string) (string, error) {
	normalized := strings.ToLower(prefix)
	if err := ValidateNamePrefix(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
