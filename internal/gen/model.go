package gen

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnsupported = errors.New("unsupported method")
	ErrNotFound    = errors.New("interface not found")
)

const (
	lazyPath  = "github.com/ib-77/lazy3/pkg/lazy"
	tablePath = "github.com/ib-77/lazy3/pkg/lazy/table"
)

// reserved names belong to the generated builder itself.
var reserved = map[string]bool{"Value": true, "Steps": true, "Result": true}

type ImportData struct {
	Path  string
	Alias string
}

type ParamData struct {
	Name     string
	Type     string // as seen by table.Arg, variadics as slices
	Variadic bool
	Elem     string // element type of a variadic parameter
}

func (p ParamData) Decl() string {
	if p.Variadic {
		return p.Name + " ..." + p.Elem
	}
	return p.Name + " " + p.Type
}

func (p ParamData) Use() string {
	if p.Variadic {
		return p.Name + "..."
	}
	return p.Name
}

type MethodData struct {
	Name         string
	Params       []ParamData
	TakesContext bool
	Signature    string // method element inside an interface literal
	HasValue     bool
	ReturnsError bool
}

// Args is the argument list used by the dispatch call.
func (m MethodData) Args() string {
	parts := make([]string, 0, len(m.Params)+1)
	if m.TakesContext {
		parts = append(parts, "ctx")
	}
	for _, p := range m.Params {
		parts = append(parts, p.Use())
	}
	return strings.Join(parts, ", ")
}

// Record is the argument list handed to the recorder.
func (m MethodData) Record() string {
	parts := []string{strconv.Quote(m.Name)}
	for _, p := range m.Params {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}

func (m MethodData) Decl() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = p.Decl()
	}
	return strings.Join(parts, ", ")
}

type InterfaceData struct {
	PackageName   string
	Name          string
	InterfaceName string
	TargetType    string
	TableVar      string
	Imports       []ImportData
	ImportGroups  [][]ImportData
	Methods       []MethodData
}

// imports qualifies type names for the output file and collects imports.
type imports struct {
	local  string
	byPath map[string]string
	taken  map[string]bool
}

func newImports(localPath string) *imports {
	im := &imports{
		local:  localPath,
		byPath: map[string]string{},
		taken:  map[string]bool{},
	}
	for _, path := range []string{"context", lazyPath, tablePath} {
		alias := lastElem(path)
		im.byPath[path] = alias
		im.taken[alias] = true
	}
	return im
}

func (im *imports) qualifier(p *types.Package) string {
	if p.Path() == im.local {
		return ""
	}
	if alias, ok := im.byPath[p.Path()]; ok {
		return alias
	}

	alias := p.Name()
	for i := 1; im.taken[alias]; i++ {
		alias = fmt.Sprintf("%s%d", p.Name(), i)
	}
	im.byPath[p.Path()] = alias
	im.taken[alias] = true
	return alias
}

func (im *imports) list() []ImportData {
	out := make([]ImportData, 0, len(im.byPath))
	for path, alias := range im.byPath {
		imp := ImportData{Path: path}
		if alias != lastElem(path) {
			imp.Alias = alias
		}
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// groupImports splits sorted imports into the standard library group and the
// rest, the way goimports lays them out.
func groupImports(list []ImportData) [][]ImportData {
	var std, other []ImportData
	for _, imp := range list {
		if isStd(imp.Path) {
			std = append(std, imp)
		} else {
			other = append(other, imp)
		}
	}

	var groups [][]ImportData
	for _, g := range [][]ImportData{std, other} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func isStd(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func lastElem(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Describe turns the named interface obj into template data. local is the
// import path of the package the output file belongs to.
func Describe(obj *types.TypeName, local, pkgName, name string) (InterfaceData, error) {
	data := InterfaceData{
		PackageName:   pkgName,
		Name:          name,
		InterfaceName: obj.Name(),
		TableVar:      lowerFirst(name) + "Table",
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return data, fmt.Errorf("%w: %s is not a named type", ErrNotFound, obj.Name())
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return data, fmt.Errorf("%w: %s is not an interface", ErrNotFound, obj.Name())
	}
	if named.TypeParams().Len() > 0 {
		return data, fmt.Errorf("%w: generic interface %s", ErrUnsupported, obj.Name())
	}

	im := newImports(local)
	data.TargetType = types.TypeString(named, im.qualifier)

	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		if !fn.Exported() {
			continue
		}
		if reserved[fn.Name()] {
			return data, fmt.Errorf("%w: %s collides with the builder's own method", ErrUnsupported, fn.Name())
		}

		m, err := describeMethod(fn, im)
		if err != nil {
			return data, err
		}
		data.Methods = append(data.Methods, m)
	}
	if len(data.Methods) == 0 {
		return data, fmt.Errorf("%w: %s has no exported methods", ErrUnsupported, obj.Name())
	}

	data.Imports = im.list()
	data.ImportGroups = groupImports(data.Imports)
	return data, nil
}

func describeMethod(fn *types.Func, im *imports) (MethodData, error) {
	sig := fn.Type().(*types.Signature)
	m := MethodData{Name: fn.Name()}

	params := sig.Params()
	sigParams := make([]string, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		t := params.At(i).Type()
		variadic := sig.Variadic() && i == params.Len()-1

		if i == 0 && isContext(t) {
			m.TakesContext = true
			sigParams = append(sigParams, types.TypeString(t, im.qualifier))
			continue
		}

		p := ParamData{
			Name:     fmt.Sprintf("p%d", len(m.Params)),
			Type:     types.TypeString(t, im.qualifier),
			Variadic: variadic,
		}
		if variadic {
			p.Elem = types.TypeString(t.(*types.Slice).Elem(), im.qualifier)
			sigParams = append(sigParams, "..."+p.Elem)
		} else {
			sigParams = append(sigParams, p.Type)
		}
		m.Params = append(m.Params, p)
	}

	results := sig.Results()
	sigResults := make([]string, results.Len())
	for i := 0; i < results.Len(); i++ {
		sigResults[i] = types.TypeString(results.At(i).Type(), im.qualifier)
	}

	switch results.Len() {
	case 0:
	case 1:
		if isError(results.At(0).Type()) {
			m.ReturnsError = true
		} else {
			m.HasValue = true
		}
	case 2:
		if !isError(results.At(1).Type()) {
			return m, fmt.Errorf("%w: %s returns two values without a trailing error", ErrUnsupported, fn.Name())
		}
		m.HasValue = true
		m.ReturnsError = true
	default:
		return m, fmt.Errorf("%w: %s returns %d values", ErrUnsupported, fn.Name(), results.Len())
	}

	m.Signature = fn.Name() + "(" + strings.Join(sigParams, ", ") + ")"
	switch len(sigResults) {
	case 0:
	case 1:
		m.Signature += " " + sigResults[0]
	default:
		m.Signature += " (" + strings.Join(sigResults, ", ") + ")"
	}

	return m, nil
}

func isContext(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
