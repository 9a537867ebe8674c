package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "config")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("dir"))
}

func TestGenerateCommand_RequiresInterface(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"generate"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interface")
}

func TestGenerateCommand_Stdout(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"generate", "--interface", "github.com/ib-77/lazy3/examples/calc.Calculator"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "package calc")
	assert.Contains(t, out.String(), "type CalculatorChain struct")
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "chaingen.yaml", `
dir: ../..
targets:
  - interface: github.com/ib-77/lazy3/examples/calc.Calculator
    package: calc
    name: CalcChain
    output: calc_chain.go
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "../..", cfg.Dir)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "CalcChain", cfg.Targets[0].Name)
	assert.Equal(t, "calc_chain.go", cfg.Targets[0].Output)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no targets", "dir: .\n", "no targets"},
		{"missing interface", "targets:\n  - output: x.go\n", "interface is required"},
		{"missing output", "targets:\n  - interface: a/b.C\n", "output is required"},
		{"bad yaml", "targets: [", "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "chaingen.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestConfigCommand_GeneratesTargets(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	output := filepath.Join(t.TempDir(), "calc_chain.go")
	path := writeFile(t, "chaingen.yaml", `
targets:
  - interface: github.com/ib-77/lazy3/examples/calc.Calculator
    package: calc
    name: CalcChain
    output: `+output+`
`)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"config", "--file", path})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "generated "+output)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type CalcChain struct")
}
