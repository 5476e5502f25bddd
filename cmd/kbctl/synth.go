package main

import (
	"io"
	"os"

	"github.com/klothoplatform/kbpipeline/pkg/closenicely"
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/klothoplatform/kbpipeline/pkg/stack"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var synthConfig struct {
	stackName      string
	namePrefix     string
	region         string
	accountID      string
	keyPrefix      string
	embeddingModel string
	output         string
}

func newSynthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Print the stack manifest",
		Args:  cobra.NoArgs,
		RunE:  synth,
	}
	flags := cmd.Flags()
	flags.StringVar(&synthConfig.stackName, "stack-name", stack.DefaultStackName, "Stack name")
	flags.StringVar(&synthConfig.namePrefix, "name-prefix", "", "Resource name prefix (defaults to NAME_PREFIX)")
	flags.StringVarP(&synthConfig.region, "region", "r", "", "AWS region (defaults to AWS_REGION)")
	flags.StringVar(&synthConfig.accountID, "account-id", "", "AWS account id")
	flags.StringVar(&synthConfig.keyPrefix, "key-prefix", config.DefaultKeyPrefix, "Bucket key prefix that triggers ingestion")
	flags.StringVar(&synthConfig.embeddingModel, "embedding-model", "", "Embedding model id")
	flags.StringVarP(&synthConfig.output, "output", "o", "", "Write the manifest to a file instead of stdout")
	return cmd
}

func synth(cmd *cobra.Command, args []string) error {
	env := newEnviron()
	env.set("NAME_PREFIX", synthConfig.namePrefix)
	env.set("AWS_REGION", synthConfig.region)
	env.set("ACCOUNT_ID", synthConfig.accountID)

	cfg, err := config.LoadStack(env)
	if err != nil {
		return err
	}
	props := stack.PropsFromConfig(cfg)
	props.Name = synthConfig.stackName
	props.KeyPrefix = synthConfig.keyPrefix
	props.EmbeddingModel = synthConfig.embeddingModel

	s, err := stack.Compose(props)
	if err != nil {
		return err
	}
	logging.GetLogger(cmd.Context()).Debug("Composed stack",
		zap.String("stack", s.Name),
		zap.String("name_prefix", s.NamePrefix),
	)

	var w io.Writer = cmd.OutOrStdout()
	if synthConfig.output != "" {
		f, err := os.Create(synthConfig.output)
		if err != nil {
			return errors.Wrap(err, "could not create manifest file")
		}
		defer closenicely.OrDebug(cmd.Context(), synthConfig.output, f)
		w = f
	}
	return s.Synth(w)
}
