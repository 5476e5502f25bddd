package resources

import (
	"fmt"
)

const DEFAULT_LOG_RETENTION_DAYS = 30

type (
	// LogGroup receives a knowledge base's vended application logs. Its log group
	// name embeds the knowledge base id, so it is a reference until deployment.
	LogGroup struct {
		Name            string
		LogGroupName    string
		KnowledgeBase   ResourceId
		RetentionInDays int
	}

	// LogDelivery stands for the delivery source, destination and delivery that
	// link the knowledge base to its log group.
	LogDelivery struct {
		Name          string
		KnowledgeBase ResourceId
		LogGroup      ResourceId
		LogType       string
	}
)

func NewKnowledgeBaseLogGroup(kb *KnowledgeBase) *LogGroup {
	return &LogGroup{
		Name: fmt.Sprintf("%s-logs", kb.Name),
		LogGroupName: fmt.Sprintf("/aws/vendedlogs/bedrock/knowledge-bases/APPLICATION_LOGS/%s",
			PropertyRef{Resource: kb.Id(), Property: ATTR_ID}.Expr()),
		KnowledgeBase:   kb.Id(),
		RetentionInDays: DEFAULT_LOG_RETENTION_DAYS,
	}
}

func (lg *LogGroup) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: LOG_GROUP_TYPE, Name: lg.Name}
}

func (lg *LogGroup) Dependencies() []ResourceId {
	return []ResourceId{lg.KnowledgeBase}
}

func NewLogDelivery(kb *KnowledgeBase, lg *LogGroup) *LogDelivery {
	return &LogDelivery{
		Name:          fmt.Sprintf("%s-delivery", kb.Name),
		KnowledgeBase: kb.Id(),
		LogGroup:      lg.Id(),
		LogType:       "APPLICATION_LOGS",
	}
}

func (ld *LogDelivery) Id() ResourceId {
	return ResourceId{Provider: AWS_PROVIDER, Type: LOG_DELIVERY_TYPE, Name: ld.Name}
}

func (ld *LogDelivery) Dependencies() []ResourceId {
	return []ResourceId{ld.KnowledgeBase, ld.LogGroup}
}
