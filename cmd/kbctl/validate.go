package main

import (
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/spf13/cobra"
)

var validateConfig struct {
	namePrefix string
	normalize  bool
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a name prefix can be used for the stack",
		Args:  cobra.NoArgs,
		RunE:  validate,
	}
	flags := cmd.Flags()
	flags.StringVar(&validateConfig.namePrefix, "name-prefix", "", "Name prefix to check (defaults to NAME_PREFIX)")
	flags.BoolVar(&validateConfig.normalize, "normalize", false, "Lower-case the prefix before checking, as stack composition does")
	return cmd
}

func validate(cmd *cobra.Command, args []string) error {
	prefix := validateConfig.namePrefix
	if prefix == "" {
		prefix = newEnviron()["NAME_PREFIX"]
	}

	var err error
	if validateConfig.normalize {
		prefix, err = config.NormalizeNamePrefix(prefix)
	} else {
		err = config.ValidateNamePrefix(prefix)
	}
	if err != nil {
		return err
	}
	successColor.Fprintf(cmd.OutOrStdout(), "name prefix %q is valid\n", prefix) //nolint:errcheck
	return nil
}
