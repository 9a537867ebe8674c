package table

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/lazy3/pkg/lazy"
	"github.com/ib-77/lazy3/pkg/lazy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type text string

func (t text) Append(s string) text { return t + text(s) }
func (t text) Upper() text { return text(strings.ToUpper(string(t))) }
func (t text) Len() int { return len(t) }

var textTable = New(
	Entry{
		Name: "Append",
		Call: Method(func(ctx context.Context, recv interface{ Append(string) text }, args []any) (any, error) {
			if err := Arity("Append", args, 1); err != nil {
				return nil, err
			}
			p0, err := Arg[string]("Append", args, 0)
			if err != nil {
				return nil, err
			}
			return recv.Append(p0), nil
		}),
	},
	Entry{
		Name: "Upper",
		Call: Method(func(ctx context.Context, recv interface{ Upper() text }, args []any) (any, error) {
			return recv.Upper(), nil
		}),
	},
	Entry{
		Name: "Len",
		Call: Method(func(ctx context.Context, recv interface{ Len() int }, args []any) (any, error) {
			return recv.Len(), nil
		}),
	},
)

func TestTable_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Append", "Len", "Upper"}, textTable.Names())
	_, ok := textTable.Lookup("Upper")
	assert.True(t, ok)
	_, ok = textTable.Lookup("Lower")
	assert.False(t, ok)
}

func TestRecorder_Replay(t *testing.T) {
	t.Parallel()

	r := NewRecorder(text("go"), textTable)
	r.Record("Append", "pher")
	r.Record("Upper")
	r.Record("Len")

	v, err := r.Value(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, text("go"), r.Target())
}

func TestRecorder_ShapeChange(t *testing.T) {
	t.Parallel()

	r := NewRecorder(text("go"), textTable)
	r.Record("Len")
	r.Record("Upper")

	_, err := r.Value(context.Background())
	var nc *lazy.NotCallableError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, "Upper", nc.Name)
	assert.Equal(t, 1, nc.Index)
	assert.Equal(t, "int", nc.Receiver)
}

func TestRecorder_UnknownStep(t *testing.T) {
	t.Parallel()

	r := NewRecorder(text("go"), textTable)
	r.Record("Lower")

	_, err := r.Value(context.Background())
	assert.ErrorIs(t, err, lazy.ErrNotCallable)
}

func TestRecorder_Arguments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := NewRecorder(text("go"), textTable)
	r.Record("Append", 1)
	_, err := r.Value(ctx)
	var ae *lazy.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Append", ae.Name)
	assert.Equal(t, 0, ae.Position)

	r = NewRecorder(text("go"), textTable)
	r.Record("Append")
	_, err = r.Value(ctx)
	assert.ErrorIs(t, err, lazy.ErrArguments)

	r = NewRecorder(text("go"), textTable)
	r.Record("Append", nil)
	v, err := r.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, text("go"), v)
}

func TestRecorder_ConsumedAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var settled []string
	r := NewRecorder(text("a"), textTable, WithHandlers(core.ReplayHandlers{
		OnSettled: func(ctx context.Context, index int, step lazy.Step, result any) {
			settled = append(settled, step.Name())
		},
	}))
	r.Record("Append", "b")

	res := r.Result(ctx)
	require.True(t, res.IsSuccess())
	assert.Equal(t, text("ab"), res.Result())
	assert.Equal(t, 1, res.Steps())
	assert.Equal(t, []string{"Append"}, settled)

	r.Record("Upper")
	assert.Len(t, r.Steps(), 1)
	_, err := r.Value(ctx)
	assert.ErrorIs(t, err, lazy.ErrConsumed)
}

func TestInvoke_OperationErrorUnchanged(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tbl := New(Entry{Name: "Fail", Call: func(ctx context.Context, recv any, args []any) (any, error) {
		return nil, boom
	}})

	_, err := tbl.Invoke(context.Background(), 1, lazy.NewStep("Fail"), 0)
	assert.Same(t, boom, err)
}

func TestArg(t *testing.T) {
	t.Parallel()

	args := []any{"x", nil, 3}

	s, err := Arg[string]("Op", args, 0)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	p, err := Arg[*int]("Op", args, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = Arg[string]("Op", args, 2)
	assert.ErrorIs(t, err, lazy.ErrArguments)

	n, err := Arg[int]("Op", args, 5)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = Arg[float64]("Op", args, 1)
	var ae *lazy.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Op", ae.Name)
	assert.Equal(t, 1, ae.Position)

	var any0 any
	any0, err = Arg[any]("Op", args, 1)
	require.NoError(t, err)
	assert.Nil(t, any0)
}
