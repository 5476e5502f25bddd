package main

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	awsprovider "github.com/klothoplatform/kbpipeline/pkg/provider/aws"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/knowledgebase"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/logdelivery"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logsConfig struct {
	knowledgeBaseID  string
	knowledgeBaseARN string
	accountID        string
	region           string
	profile          string
	outputs          string
	naming           string
	rollback         bool
}

func newLogsCmd() *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Manage knowledge base application log delivery",
	}

	provisionCmd := &cobra.Command{
		Use:   "provision",
		Short: "Deliver a knowledge base's application logs to CloudWatch Logs",
		Args:  cobra.NoArgs,
		RunE:  provisionLogs,
	}
	flags := provisionCmd.Flags()
	flags.StringVar(&logsConfig.knowledgeBaseID, "knowledge-base-id", "", "Knowledge base id (defaults to KNOWLEDGE_BASE_ID)")
	flags.StringVar(&logsConfig.knowledgeBaseARN, "knowledge-base-arn", "", "Knowledge base ARN, looked up when omitted")
	flags.StringVar(&logsConfig.accountID, "account-id", "", "AWS account id, taken from the ARN when omitted")
	flags.StringVarP(&logsConfig.region, "region", "r", "", "AWS region")
	flags.StringVar(&logsConfig.profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&logsConfig.outputs, "outputs", "", "Read knowledge base identifiers from a stack outputs file")
	flags.StringVar(&logsConfig.naming, "naming", logdelivery.NamingDeterministic.String(), "Delivery naming (deterministic, random)")
	flags.BoolVar(&logsConfig.rollback, "rollback", false, "Delete resources created by a failed run")

	logsCmd.AddCommand(provisionCmd)
	return logsCmd
}

func parseNaming(s string) (logdelivery.Naming, error) {
	for _, n := range []logdelivery.Naming{logdelivery.NamingDeterministic, logdelivery.NamingRandom} {
		if n.String() == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown naming %q (must be deterministic or random)", s)
}

func provisionLogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetLogger(ctx)

	naming, err := parseNaming(logsConfig.naming)
	if err != nil {
		return err
	}

	env := newEnviron()
	if err := env.setOutputs(logsConfig.outputs); err != nil {
		return err
	}
	env.set("KNOWLEDGE_BASE_ID", logsConfig.knowledgeBaseID)
	env.set("KNOWLEDGE_BASE_ARN", logsConfig.knowledgeBaseARN)
	env.set("ACCOUNT_ID", logsConfig.accountID)
	env.set("AWS_REGION", logsConfig.region)

	cfg, err := config.LoadLogDelivery(env)
	if err != nil {
		return err
	}

	clients, err := awsprovider.NewClients(ctx, awsprovider.ClientOptions{Region: cfg.Region, Profile: logsConfig.profile})
	if err != nil {
		return err
	}

	if cfg.KnowledgeBaseARN == "" {
		info, err := knowledgebase.Describe(ctx, clients.BedrockAgent, cfg.KnowledgeBaseID)
		if err != nil {
			return errors.Wrap(err, "could not resolve knowledge base ARN")
		}
		if !info.Ready() {
			log.Warn("Knowledge base is not active", zap.String("status", info.Status))
		}
		cfg.KnowledgeBaseARN = info.ARN
	}
	if cfg.Region == "" {
		cfg.Region = clients.Config.Region
	}

	provisioner := logdelivery.NewProvisioner(clients.Logs, logdelivery.Options{
		Naming:   naming,
		Rollback: logsConfig.rollback,
	})
	result, err := provisioner.Provision(ctx, logdelivery.Spec{
		KnowledgeBaseID:  cfg.KnowledgeBaseID,
		KnowledgeBaseARN: cfg.KnowledgeBaseARN,
		AccountID:        cfg.AccountID,
		Region:           cfg.Region,
	})
	if err != nil {
		return err
	}
	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result logdelivery.Result) {
	out := cmd.OutOrStdout()
	successColor.Fprintln(out, "Log delivery created") //nolint:errcheck
	rows := []struct{ key, value string }{
		{"log group", result.LogGroupName},
		{"delivery source", result.DeliverySourceName},
		{"delivery destination", result.DeliveryDestinationName},
		{"destination ARN", result.DeliveryDestinationARN},
		{"delivery id", result.DeliveryID},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "  %s %s\n", keyColor.Sprintf("%-21s", row.key), row.value)
	}
}
