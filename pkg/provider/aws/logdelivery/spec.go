package logdelivery

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/google/uuid"
	awssanitizer "github.com/klothoplatform/kbpipeline/pkg/sanitization/aws"
	"github.com/pkg/errors"
)

const (
	// LogType is the only log type Bedrock knowledge bases vend.
	LogType = "APPLICATION_LOGS"

	logGroupPrefix            = "/aws/vendedlogs/bedrock/knowledge-bases/" + LogType + "/"
	deliverySourcePrefix      = "kb-delivery-source-"
	deliveryDestinationPrefix = "kb-delivery-destination-"
)

var ErrInvalidSpec = errors.New("invalid log delivery spec")

type (
	// Spec identifies the knowledge base whose application logs are delivered.
	Spec struct {
		KnowledgeBaseID  string
		KnowledgeBaseARN string
		AccountID        string
		Region           string
		// Partition defaults to the partition of KnowledgeBaseARN.
		Partition string
	}

	// Naming decides how delivery source and destination names are chosen.
	Naming int

	names struct {
		logGroup    string
		source      string
		destination string
	}
)

const (
	// NamingDeterministic derives names from the knowledge base id so a rerun
	// upserts the same objects instead of leaving orphans behind.
	NamingDeterministic Naming = iota
	// NamingRandom appends a fresh uuid per run.
	NamingRandom
)

func (n Naming) String() string {
	switch n {
	case NamingDeterministic:
		return "deterministic"
	case NamingRandom:
		return "random"
	}
	return fmt.Sprintf("Naming(%d)", int(n))
}

// Resolve validates the spec and fills the account, region and partition from
// the knowledge base ARN where they were left empty.
func (s Spec) Resolve() (Spec, error) {
	if s.KnowledgeBaseID == "" {
		return s, errors.Wrap(ErrInvalidSpec, "knowledge base id is required")
	}
	if s.KnowledgeBaseARN == "" {
		return s, errors.Wrap(ErrInvalidSpec, "knowledge base ARN is required")
	}
	kbArn, err := arn.Parse(s.KnowledgeBaseARN)
	if err != nil {
		return s, errors.Wrapf(ErrInvalidSpec, "knowledge base ARN %q: %v", s.KnowledgeBaseARN, err)
	}
	if s.AccountID == "" {
		s.AccountID = kbArn.AccountID
	}
	if s.Region == "" {
		s.Region = kbArn.Region
	}
	if s.Partition == "" {
		s.Partition = kbArn.Partition
	}
	if s.AccountID == "" || s.Region == "" {
		return s, errors.Wrap(ErrInvalidSpec, "account id and region are required")
	}
	return s, nil
}

// LogGroupName is the vended-logs group for a knowledge base.
func LogGroupName(knowledgeBaseID string) string {
	return awssanitizer.CloudwatchLogGroupSanitizer.Apply(logGroupPrefix + knowledgeBaseID)
}

// LogGroupARN is the delivery destination target for the spec's log group.
func (s Spec) LogGroupARN() string {
	partition := s.Partition
	if partition == "" {
		partition = "aws"
	}
	return arn.ARN{
		Partition: partition,
		Service:   "logs",
		Region:    s.Region,
		AccountID: s.AccountID,
		Resource:  fmt.Sprintf("log-group:%s:*", LogGroupName(s.KnowledgeBaseID)),
	}.String()
}

func (n Naming) names(knowledgeBaseID string) names {
	suffix := knowledgeBaseID
	if n == NamingRandom {
		suffix = uuid.NewString()
	}
	return names{
		logGroup:    LogGroupName(knowledgeBaseID),
		source:      awssanitizer.DeliveryNameSanitizer.Apply(deliverySourcePrefix + suffix),
		destination: awssanitizer.DeliveryNameSanitizer.Apply(deliveryDestinationPrefix + suffix),
	}
}
