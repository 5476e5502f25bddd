package clicommon

import (
	"github.com/klothoplatform/kbpipeline/pkg/config"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CommonConfig struct {
	Verbose  LevelledFlag
	JsonLog  bool
	LogLevel string
	Color    string
}

// SetupRoot adds the logging flags to root and installs the global logger before
// any subcommand runs. LOG_LEVEL from the environment, read once here, is used
// when --log-level is not given.
func SetupRoot(root *cobra.Command, commonCfg *CommonConfig) {
	flags := root.PersistentFlags()
	flags.VarP(&commonCfg.Verbose, "verbose", "v", "Enable verbose logging (repeat for development logging)")
	flags.Lookup("verbose").NoOptDefVal = "true"
	flags.BoolVar(&commonCfg.JsonLog, "json-log", false, "Enable JSON logging")
	flags.StringVar(&commonCfg.LogLevel, "log-level", "", "Minimum log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&commonCfg.Color, "color", "auto", "Colorize console logs (auto, always, never)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := commonCfg.NewLogger(config.Environ())
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		zap.L().Sync() //nolint:errcheck
	}
}

// NewLogger builds the CLI logger. env supplies LOG_LEVEL when the flag is unset.
func (c *CommonConfig) NewLogger(env map[string]string) (*zap.Logger, error) {
	levelText := c.LogLevel
	if levelText == "" {
		levelText = env["LOG_LEVEL"]
	}
	level, err := config.ParseLogLevel(levelText)
	if err != nil {
		return nil, err
	}
	logOpts := logging.LogOpts{
		Level:   level.ZapLevel(),
		Verbose: c.Verbose > 0,
		Color:   c.Color,
	}
	if c.JsonLog {
		logOpts.Encoding = "json"
	}
	logger := logOpts.NewLogger()
	if c.Verbose > 1 {
		logger = logger.WithOptions(zap.Development())
	}
	return logger, nil
}
