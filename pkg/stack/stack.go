// Package stack describes the knowledge base pipeline as a graph of AWS
// resources: the document bucket, the vector collection, the knowledge base and
// its data source, the ingestion trigger function and the log delivery.
package stack

import (
	"github.com/dominikbraun/graph"
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/resources"
	"github.com/pkg/errors"
)

const DefaultStackName = "BedrockKnowledgeBase"

type (
	Props struct {
		Name           string
		NamePrefix     string
		LogLevel       config.LogLevel
		Region         string
		AccountID      string
		KeyPrefix      string
		EmbeddingModel string
	}

	Stack struct {
		Name       string
		NamePrefix string
		Region     string
		AccountID  string
		Outputs    []Output

		graph Graph
	}
)

func PropsFromConfig(cfg config.Stack) Props {
	return Props{
		NamePrefix: cfg.NamePrefix,
		LogLevel:   cfg.LogLevel,
		Region:     cfg.Region,
		AccountID:  cfg.AccountID,
	}
}

// Compose validates the props and describes every resource of the stack. The
// name prefix is checked before anything else so an invalid prefix never
// yields a partial stack.
func Compose(props Props) (*Stack, error) {
	prefix, err := config.NormalizeNamePrefix(props.NamePrefix)
	if err != nil {
		return nil, err
	}
	if props.LogLevel == "" {
		props.LogLevel = config.LogLevelInfo
	}
	if _, err := config.ParseLogLevel(string(props.LogLevel)); err != nil {
		return nil, err
	}
	if props.Name == "" {
		props.Name = DefaultStackName
	}
	if props.Region == "" {
		props.Region = config.DefaultRegion
	}
	if props.KeyPrefix == "" {
		props.KeyPrefix = config.DefaultKeyPrefix
	}
	if props.EmbeddingModel == "" {
		props.EmbeddingModel = resources.DEFAULT_EMBEDDING_MODEL
	}
	modelArn := resources.EmbeddingModelArn(props.Region, props.EmbeddingModel)

	bucket := resources.NewBucket(prefix)
	collection := resources.NewCollection(prefix)
	kbRole := resources.NewKnowledgeBaseRole(prefix, bucket, collection, modelArn)
	accessPolicy := resources.NewCollectionAccessPolicy(collection, kbRole)
	kb := resources.NewKnowledgeBase(prefix, kbRole, collection, accessPolicy, modelArn)
	dataSource := resources.NewDataSource(prefix, kb, bucket, props.KeyPrefix)
	fnRole := resources.NewIngestTriggerRole(prefix, bucket)
	fn := resources.NewIngestTrigger(prefix, fnRole, kb, dataSource, string(props.LogLevel), props.KeyPrefix)
	notification := resources.NewBucketNotification(bucket, fn, props.KeyPrefix)
	logGroup := resources.NewKnowledgeBaseLogGroup(kb)
	delivery := resources.NewLogDelivery(kb, logGroup)

	s := &Stack{
		Name:       props.Name,
		NamePrefix: prefix,
		Region:     props.Region,
		AccountID:  props.AccountID,
		graph:      newGraph(),
	}
	all := []resources.Resource{
		bucket, collection, kbRole, accessPolicy, kb, dataSource,
		fnRole, fn, notification, logGroup, delivery,
	}
	for _, r := range all {
		if err := s.graph.AddVertex(r); err != nil {
			return nil, errors.Wrapf(err, "could not add %s", r.Id())
		}
	}
	for _, r := range all {
		for _, dep := range r.Dependencies() {
			if err := s.graph.AddEdge(dep, r.Id()); err != nil {
				return nil, errors.Wrapf(err, "could not add dependency %s -> %s", dep, r.Id())
			}
		}
	}

	s.Outputs = []Output{
		newOutput("knowledge base bucket", bucket.Id(), resources.ATTR_NAME),
		newOutput("knowledge base role arn", kbRole.Id(), resources.ATTR_ARN),
		newOutput("data source id", dataSource.Id(), resources.ATTR_ID),
		newOutput("collection name", collection.Id(), resources.ATTR_NAME),
		newOutput("knowledge base id", kb.Id(), resources.ATTR_ID),
		newOutput("knowledge base arn", kb.Id(), resources.ATTR_ARN),
	}
	return s, nil
}

func (s *Stack) Resource(id resources.ResourceId) (resources.Resource, error) {
	r, err := s.graph.Vertex(id)
	if errors.Is(err, graph.ErrVertexNotFound) {
		return nil, errors.Errorf("resource %s not found", id)
	}
	return r, err
}

// Resources returns the stack's resources in deploy order.
func (s *Stack) Resources() ([]resources.Resource, error) {
	order, err := s.DeployOrder()
	if err != nil {
		return nil, err
	}
	rs := make([]resources.Resource, len(order))
	for i, id := range order {
		if rs[i], err = s.graph.Vertex(id); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func (s *Stack) DeployOrder() ([]resources.ResourceId, error) {
	return deployOrder(s.graph)
}

func (s *Stack) TeardownOrder() ([]resources.ResourceId, error) {
	return teardownOrder(s.graph)
}

// Dependencies returns the direct dependencies of a resource, sorted by id.
func (s *Stack) Dependencies(id resources.ResourceId) ([]resources.ResourceId, error) {
	pred, err := s.graph.PredecessorMap()
	if err != nil {
		return nil, err
	}
	var deps []resources.ResourceId
	for dep := range pred[id] {
		deps = append(deps, dep)
	}
	sortIds(deps)
	return deps, nil
}
