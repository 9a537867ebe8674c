package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ib-77/lazy3/internal/gen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the chaingen.yaml file format.
type Config struct {
	Dir     string        `yaml:"dir"`
	Targets []gen.Request `yaml:"targets"`
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(cfg.Targets) == 0 {
		return nil, errors.New("config has no targets")
	}
	for i, target := range cfg.Targets {
		if target.Interface == "" {
			return nil, fmt.Errorf("target %d: interface is required", i)
		}
		if target.Output == "" {
			return nil, fmt.Errorf("target %d (%s): output is required", i, target.Interface)
		}
	}

	return &cfg, nil
}

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	File string
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate every builder listed in a YAML config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "chaingen.yaml", "config file")

	return cmd
}

func runConfig(cmd *cobra.Command, opts *ConfigOptions) error {
	cfg, err := LoadConfig(opts.File)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if cfg.Dir != "" && !cmd.Flags().Changed("dir") {
		dir = cfg.Dir
	}
	g := gen.NewGenerator(dir, opts.Logger(cmd.ErrOrStderr()))

	for _, target := range cfg.Targets {
		if _, err := g.Generate(target); err != nil {
			return fmt.Errorf("generating %s: %w", target.Interface, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", target.Output)
	}
	return nil
}
