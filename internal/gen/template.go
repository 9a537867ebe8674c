package gen

const chainTemplate = `// Code generated by chaingen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range $i, $group := .ImportGroups}}
{{- if $i}}
{{end}}
{{- range $group}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- end}}
)

// {{.Name}} records calls to {{.InterfaceName}} and replays them on Value.
type {{.Name}} struct {
	rec *table.Recorder
}

func New{{.Name}}(target {{.TargetType}}, opts ...table.Option) *{{.Name}} {
	return &{{.Name}}{rec: table.NewRecorder(target, {{.TableVar}}, opts...)}
}
{{range .Methods}}
func (c *{{$.Name}}) {{.Name}}({{.Decl}}) *{{$.Name}} {
	c.rec.Record({{.Record}})
	return c
}
{{end}}
// Steps returns the recorded steps in call order.
func (c *{{.Name}}) Steps() []lazy.Step {
	return c.rec.Steps()
}

// Value replays the recorded calls. It may be called once.
func (c *{{.Name}}) Value(ctx context.Context) (any, error) {
	return c.rec.Value(ctx)
}

func (c *{{.Name}}) Result(ctx context.Context) lazy.Result[any] {
	return c.rec.Result(ctx)
}

var {{.TableVar}} = table.New(
{{- range $m := .Methods}}
	table.Entry{
		Name: "{{$m.Name}}",
		Call: table.Method(func(ctx context.Context, recv interface{ {{$m.Signature}} }, args []any) (any, error) {
			if err := table.Arity("{{$m.Name}}", args, {{len $m.Params}}); err != nil {
				return nil, err
			}
{{- range $i, $p := $m.Params}}
			{{$p.Name}}, err := table.Arg[{{$p.Type}}]("{{$m.Name}}", args, {{$i}})
			if err != nil {
				return nil, err
			}
{{- end}}
{{- if and $m.HasValue $m.ReturnsError}}
			return recv.{{$m.Name}}({{$m.Args}})
{{- else if $m.HasValue}}
			return recv.{{$m.Name}}({{$m.Args}}), nil
{{- else if $m.ReturnsError}}
			if err := recv.{{$m.Name}}({{$m.Args}}); err != nil {
				return nil, err
			}
			return recv, nil
{{- else}}
			recv.{{$m.Name}}({{$m.Args}})
			return recv, nil
{{- end}}
		}),
	},
{{- end}}
)
`
