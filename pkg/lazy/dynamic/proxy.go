package dynamic

import (
	"context"
	"reflect"

	"github.com/ib-77/lazy3/pkg/lazy"
	"github.com/ib-77/lazy3/pkg/lazy/core"
)

// Proxy records calls to the callable members of its target. It is not
// safe for concurrent use and is consumed by the first materialization.
type Proxy struct {
	target   any
	chain    *lazy.Chain
	members  members
	err      error
	invoker  invoker
	handlers core.ReplayHandlers
}

// Wrap builds a proxy over target. Callable members are discovered once,
// from the values they hold at this point.
func Wrap(target any, opts ...Option) *Proxy {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Proxy{
		target:   target,
		chain:    lazy.NewChain(),
		members:  discover(target),
		invoker:  invoker{injectContext: o.injectContext},
		handlers: core.JoinHandlers(append([]core.ReplayHandlers{core.LogHandlers(o.logger)}, o.handlers...)...),
	}
}

// Call records name(args...) and returns the proxy itself. Nothing runs
// until Value is called. An unknown name is reported by Value.
func (p *Proxy) Call(name string, args ...any) *Proxy {
	if p.err != nil || p.chain.Sealed() {
		return p
	}

	if _, ok := p.members.callable[name]; !ok {
		p.err = &lazy.NotCallableError{
			Name:     name,
			Index:    p.chain.Len(),
			Receiver: lazy.TypeName(p.target),
		}
		return p
	}

	_ = p.chain.Record(name, args...)
	return p
}

func (p *Proxy) Has(name string) bool {
	_, ok := p.members.callable[name]
	return ok
}

// Methods lists the intercepted member names, sorted.
func (p *Proxy) Methods() []string {
	return sortedKeys(p.members.callable)
}

// Fields lists the non-callable members left untouched, sorted.
func (p *Proxy) Fields() []string {
	return sortedKeys(p.members.data)
}

// Field reads a non-callable member of the target.
func (p *Proxy) Field(name string) (any, bool) {
	if _, ok := p.members.data[name]; !ok {
		return nil, false
	}
	v, ok := plainMember(reflect.ValueOf(p.target), name)
	if !ok || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

func (p *Proxy) Target() any {
	return p.target
}

// Steps returns the recorded steps in call order.
func (p *Proxy) Steps() []lazy.Step {
	return p.chain.Steps()
}

// Value replays the recorded steps and returns the final settled value.
// It may be called once; later calls return lazy.ErrConsumed.
func (p *Proxy) Value(ctx context.Context) (any, error) {
	steps, err := p.chain.Seal()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	return core.Replay(ctx, p.target, steps, p.invoker, p.handlers)
}

// Result is Value packed into a lazy.Result.
func (p *Proxy) Result(ctx context.Context) lazy.Result[any] {
	n := p.chain.Len()
	v, err := p.Value(ctx)
	return lazy.From(v, err, n)
}

// As materializes p and views the outcome as T.
func As[T any](ctx context.Context, p *Proxy) (T, error) {
	return lazy.As[T](p.Value(ctx))
}
