package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/requestid"
)

type globalFlags struct {
	envFiles  []string
	logLevel  string
	logFormat string
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "namegen",
		Short:         "Generate names that sound like a corpus",
		Long:          "Trains an order-N Markov chain over the characters or vowel/consonant clusters of a word list and samples new names from it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&g.envFiles, "env-file", nil, "Load environment from these files (default ./.env if present)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides NAMEGEN_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json (overrides NAMEGEN_LOG_FORMAT)")

	root.AddCommand(newGenerateCmd(g))
	root.AddCommand(newClustersCmd())
	root.AddCommand(newServeCmd(g))
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (g *globalFlags) logger(cmd *cobra.Command, s *settings) (*slog.Logger, error) {
	levelName := s.LogLevel
	if g.logLevel != "" {
		levelName = g.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	format := logger.Format(s.LogFormat)
	if g.logFormat != "" {
		format = logger.Format(g.logFormat)
	}
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, ErrLogFormat
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	), nil
}
