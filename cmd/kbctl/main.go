// Command kbctl validates, synthesizes and operates the Bedrock knowledge base
// pipeline.
package main

import (
	"fmt"
	"os"

	clicommon "github.com/klothoplatform/kbpipeline/pkg/cli_common"
	"github.com/spf13/cobra"
)

var commonCfg clicommon.CommonConfig

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kbctl",
		Short:         "Manage the Bedrock knowledge base pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commonCfg = clicommon.CommonConfig{}
	clicommon.SetupRoot(rootCmd, &commonCfg)

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSynthCmd())
	rootCmd.AddCommand(newLogsCmd())
	rootCmd.AddCommand(newIngestCmd())
	rootCmd.AddCommand(newOutputsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint(err))
		os.Exit(1)
	}
}
