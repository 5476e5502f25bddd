package main

import (
	"fmt"

	"github.com/klothoplatform/kbpipeline/pkg/config"
	awsprovider "github.com/klothoplatform/kbpipeline/pkg/provider/aws"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/ingestion"
	"github.com/spf13/cobra"
)

var ingestConfig struct {
	knowledgeBaseID string
	dataSourceID    string
	region          string
	profile         string
	outputs         string
	description     string
	clientToken     string
}

func newIngestCmd() *cobra.Command {
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Manage knowledge base ingestion jobs",
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start an ingestion job for the knowledge base data source",
		Args:  cobra.NoArgs,
		RunE:  startIngestion,
	}
	flags := startCmd.Flags()
	flags.StringVar(&ingestConfig.knowledgeBaseID, "knowledge-base-id", "", "Knowledge base id (defaults to KNOWLEDGE_BASE_ID)")
	flags.StringVar(&ingestConfig.dataSourceID, "data-source-id", "", "Data source id (defaults to DATA_SOURCE_ID)")
	flags.StringVarP(&ingestConfig.region, "region", "r", "", "AWS region")
	flags.StringVar(&ingestConfig.profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&ingestConfig.outputs, "outputs", "", "Read knowledge base identifiers from a stack outputs file")
	flags.StringVar(&ingestConfig.description, "description", "Started by kbctl", "Job description")
	flags.StringVar(&ingestConfig.clientToken, "client-token", "", "Idempotency token, random when omitted")

	ingestCmd.AddCommand(startCmd)
	return ingestCmd
}

func startIngestion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env := newEnviron()
	if err := env.setOutputs(ingestConfig.outputs); err != nil {
		return err
	}
	env.set("KNOWLEDGE_BASE_ID", ingestConfig.knowledgeBaseID)
	env.set("DATA_SOURCE_ID", ingestConfig.dataSourceID)

	cfg, err := config.LoadTrigger(env)
	if err != nil {
		return err
	}

	clients, err := awsprovider.NewClients(ctx, awsprovider.ClientOptions{Region: ingestConfig.region, Profile: ingestConfig.profile})
	if err != nil {
		return err
	}

	job, err := ingestion.NewTrigger(clients.BedrockAgent, cfg).Start(ctx, ingestion.Request{
		Description: ingestConfig.description,
		ClientToken: ingestConfig.clientToken,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	successColor.Fprintln(out, "Ingestion job started") //nolint:errcheck
	fmt.Fprintf(out, "  %s %s\n", keyColor.Sprintf("%-8s", "job id"), job.ID)
	fmt.Fprintf(out, "  %s %s\n", keyColor.Sprintf("%-8s", "status"), job.Status)
	return nil
}
