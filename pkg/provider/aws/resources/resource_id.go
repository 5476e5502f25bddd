package resources

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	ResourceId struct {
		Provider string `yaml:"provider" toml:"provider"`
		Type     string `yaml:"type" toml:"type"`
		Name     string `yaml:"name" toml:"name"`
	}

	// PropertyRef points at an attribute of a resource that is only known once
	// the resource is deployed, such as a generated id or ARN.
	PropertyRef struct {
		Resource ResourceId
		Property string
	}

	Resource interface {
		Id() ResourceId
		// Dependencies are the resources that must exist before this one.
		Dependencies() []ResourceId
	}
)

var (
	resourceProviderPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	resourceTypePattern     = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	resourceNamePattern     = regexp.MustCompile(`^[a-zA-Z0-9_./\-]*$`)
)

func (id ResourceId) IsZero() bool {
	return id == ResourceId{}
}

func (id ResourceId) String() string {
	if id.IsZero() {
		return ""
	}
	if id.Name == "" {
		return id.Provider + ":" + id.Type
	}
	return id.Provider + ":" + id.Type + ":" + id.Name
}

func (id ResourceId) QualifiedTypeName() string {
	return id.Provider + ":" + id.Type
}

func (id ResourceId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ResourceId) UnmarshalText(data []byte) error {
	parts := strings.SplitN(string(data), ":", 3)
	switch len(parts) {
	case 3:
		id.Name = parts[2]
		fallthrough
	case 2:
		id.Type = parts[1]
		id.Provider = parts[0]
	case 1:
		if parts[0] != "" {
			return fmt.Errorf("invalid resource id '%s': missing type", string(data))
		}
		return nil
	}
	switch {
	case !resourceProviderPattern.MatchString(id.Provider):
		return fmt.Errorf("invalid resource id '%s': provider must match %s", string(data), resourceProviderPattern)
	case !resourceTypePattern.MatchString(id.Type):
		return fmt.Errorf("invalid resource id '%s': type must match %s", string(data), resourceTypePattern)
	case !resourceNamePattern.MatchString(id.Name):
		return fmt.Errorf("invalid resource id '%s': name must match %s", string(data), resourceNamePattern)
	}
	return nil
}

// Less orders ids by their string form, used to keep graph traversals stable.
func (id ResourceId) Less(other ResourceId) bool {
	return id.String() < other.String()
}

func (ref PropertyRef) String() string {
	return ref.Resource.String() + "#" + ref.Property
}

func (ref PropertyRef) MarshalText() ([]byte, error) {
	return []byte(ref.String()), nil
}

func (ref *PropertyRef) UnmarshalText(data []byte) error {
	id, prop, ok := strings.Cut(string(data), "#")
	if !ok || prop == "" {
		return fmt.Errorf("invalid property reference '%s': missing property", string(data))
	}
	if err := ref.Resource.UnmarshalText([]byte(id)); err != nil {
		return err
	}
	ref.Property = prop
	return nil
}

// Expr is the placeholder form used inside string properties, such as policy
// resources or environment variables.
func (ref PropertyRef) Expr() string {
	return "${" + ref.String() + "}"
}
