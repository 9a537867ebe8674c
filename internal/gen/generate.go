package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const mode packages.LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Request describes one builder to generate.
type Request struct {
	// Interface is {package path}.{interface name}
	Interface string `yaml:"interface"`
	// Package is the package name of the generated file
	Package string `yaml:"package"`
	// Name of the generated builder type
	Name string `yaml:"name"`
	// Output file; empty writes nothing and only returns the source
	Output string `yaml:"output"`
}

func (r Request) split() (string, string, error) {
	i := strings.LastIndex(r.Interface, ".")
	if i <= 0 || i == len(r.Interface)-1 {
		return "", "", fmt.Errorf("interface %q must look like {package}.{interface}", r.Interface)
	}
	return r.Interface[:i], r.Interface[i+1:], nil
}

type Generator struct {
	cfg    *packages.Config
	logger *slog.Logger
}

func NewGenerator(dir string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg: &packages.Config{
			Fset: token.NewFileSet(),
			Mode: mode,
			Dir:  dir,
		},
		logger: logger,
	}
}

// Generate renders the builder for req and writes it to req.Output.
func (g *Generator) Generate(req Request) ([]byte, error) {
	pkgPath, ifaceName, err := req.split()
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		req.Name = ifaceName + "Chain"
	}

	pkg, err := g.getPackage(pkgPath)
	if err != nil {
		return nil, err
	}
	if req.Package == "" {
		req.Package = pkg.Name
	}

	obj, ok := pkg.Types.Scope().Lookup(ifaceName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, ifaceName, pkgPath)
	}

	// same package only when the output declares the interface's package
	local := ""
	if req.Package == pkg.Name {
		local = pkg.PkgPath
	}

	data, err := Describe(obj, local, req.Package, req.Name)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("interface described",
		"interface", req.Interface,
		"methods", len(data.Methods),
		"imports", len(data.Imports))

	src, err := Render(data)
	if err != nil {
		return nil, err
	}

	if req.Output != "" {
		if err := os.WriteFile(req.Output, src, 0o644); err != nil {
			return nil, fmt.Errorf("error writing file: %w", err)
		}
		g.logger.Info("builder generated", "name", req.Name, "output", req.Output)
	}
	return src, nil
}

// Render executes the builder template and formats the result.
func Render(data InterfaceData) ([]byte, error) {
	tmpl := template.Must(template.New("chain").Parse(chainTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated builder: %w", err)
	}
	return formatted, nil
}

func (g *Generator) getPackage(pkgPath string) (*packages.Package, error) {
	pkgs, err := packages.Load(g.cfg, pkgPath)
	if err != nil {
		return nil, err
	}

	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, fmt.Errorf("loading %s: %v", pkgPath, p.Errors[0])
		}
		if p.PkgPath == pkgPath || len(pkgs) == 1 {
			return p, nil
		}
	}

	return nil, fmt.Errorf("package %s not found", pkgPath)
}
