package main

import (
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/stack"
	"github.com/spf13/cobra"
)

var outputsConfig struct {
	file     string
	template string
}

func newOutputsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Render the outputs of a deployed stack",
		Long: `Render the outputs of a deployed stack from a json, yaml or toml file.

--template is one of the built-in formats (table, env, json) or Go template
text with sprig functions, executed against the outputs keyed by name.`,
		Args: cobra.NoArgs,
		RunE: outputs,
	}
	flags := cmd.Flags()
	flags.StringVarP(&outputsConfig.file, "file", "f", "", "Stack outputs file")
	flags.StringVarP(&outputsConfig.template, "template", "t", "table", "Output format or template")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func outputs(cmd *cobra.Command, args []string) error {
	values, err := config.ReadStackOutputs(outputsConfig.file)
	if err != nil {
		return err
	}
	return stack.RenderOutputs(cmd.OutOrStdout(), outputsConfig.template, values)
}
