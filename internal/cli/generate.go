package cli

import (
	"fmt"

	"github.com/ib-77/lazy3/internal/gen"
	"github.com/spf13/cobra"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	gen.Request
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a chain builder for one interface",
		Example: `  chaingen generate --interface github.com/acme/calc.Calculator \
    --package calc --name CalculatorChain --output calculator_chain.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Interface, "interface", "", "interface full path - {package}.{interface}")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated file (default: the interface's)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "name of the generated builder (default: {interface}Chain)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "output file name (default: stdout)")
	_ = cmd.MarkFlagRequired("interface")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	g := gen.NewGenerator(opts.Dir, opts.Logger(cmd.ErrOrStderr()))

	src, err := g.Generate(opts.Request)
	if err != nil {
		return fmt.Errorf("generating %s: %w", opts.Interface, err)
	}

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", opts.Output)
	return nil
}
