package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Dir     string
}

// Logger builds the command logger writing to w.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCommand creates the root command for the chaingen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "chaingen",
		Short:         "chaingen - typed deferred call chains",
		Long:          "Generates builders that record calls to a capability interface and replay them later.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", ".", "directory packages are resolved from")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}
