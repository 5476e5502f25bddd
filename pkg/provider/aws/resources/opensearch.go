package resources

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/sanitization/aws"
)

const (
	OPENSEARCH_ACCESS_POLICY_TYPE = "opensearch_access_policy"

	COLLECTION_TYPE_VECTORSEARCH = "VECTORSEARCH"
)

var collectionSanitizer = aws.OpenSearchCollectionSanitizer

type (
	// Collection is an OpenSearch Serverless vector collection. Its name is the
	// tightest length limit in the stack, which is what bounds the name prefix.
	Collection struct {
		Name            string
		Type            string
		StandbyReplicas string
	}

	// CollectionAccessPolicy grants principals data access to a collection.
	CollectionAccessPolicy struct {
		Name       string
		Collection ResourceId
		Principals []string
		Refs       []ResourceId `yaml:"-"`
	}
)

func NewCollection(prefix string) *Collection {
	return &Collection{
		Name:            collectionSanitizer.Apply(fmt.Sprintf("%s-collection", prefix)),
		Type:            COLLECTION_TYPE_VECTORSEARCH,
		StandbyReplicas: "DISABLED",
	}
}

func (c *Collection) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: OPENSEARCH_COLLECTION_TYPE, Name: c.Name}
}

func (c *Collection) Dependencies() []ResourceId {
	return nil
}

func NewCollectionAccessPolicy(collection *Collection, roles ...*IamRole) *CollectionAccessPolicy {
	policy := &CollectionAccessPolicy{
		Name:       collectionSanitizer.Apply(fmt.Sprintf("%s-access", collection.Name)),
		Collection: collection.Id(),
		Refs:       []ResourceId{collection.Id()},
	}
	for _, role := range roles {
		policy.Principals = append(policy.Principals, PropertyRef{Resource: role.Id(), Property: ATTR_ARN}.Expr())
		policy.Refs = append(policy.Refs, role.Id())
	}
	return policy
}

func (p *CollectionAccessPolicy) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: OPENSEARCH_ACCESS_POLICY_TYPE, Name: p.Name}
}

func (p *CollectionAccessPolicy) Dependencies() []ResourceId {
	return p.Refs
}
