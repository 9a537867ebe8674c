package core

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/lazy3/pkg/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInvoker struct {
	mock.Mock
}

func (m *mockInvoker) Invoke(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
	args := m.Called(ctx, recv, step.Name(), index)
	return args.Get(0), args.Error(1)
}

func steps(names ...string) []lazy.Step {
	out := make([]lazy.Step, len(names))
	for i, n := range names {
		out[i] = lazy.NewStep(n)
	}
	return out
}

func TestReplay_EachStepReceivesPreviousOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inv := &mockInvoker{}
	inv.On("Invoke", ctx, "target", "A", 0).Return("a", nil).Once()
	inv.On("Invoke", ctx, "a", "B", 1).Return(lazy.Resolved("b"), nil).Once()
	inv.On("Invoke", ctx, "b", "C", 2).Return("c", nil).Once()

	out, err := Replay(ctx, "target", steps("A", "B", "C"), inv, ReplayHandlers{})

	require.NoError(t, err)
	assert.Equal(t, "c", out)
	inv.AssertExpectations(t)
}

func TestReplay_EmptyChainReturnsTarget(t *testing.T) {
	t.Parallel()

	inv := &mockInvoker{}
	target := &struct{ N int }{N: 1}

	out, err := Replay(context.Background(), target, nil, inv, ReplayHandlers{})

	require.NoError(t, err)
	assert.Same(t, target, out)
	inv.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReplay_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	inv := &mockInvoker{}
	inv.On("Invoke", ctx, 0, "A", 0).Return(1, nil).Once()
	inv.On("Invoke", ctx, 1, "B", 1).Return(lazy.Rejected[int](boom), nil).Once()

	var failed []int
	h := ReplayHandlers{
		OnFail: func(ctx context.Context, index int, step lazy.Step, err error) {
			failed = append(failed, index)
		},
	}

	_, err := Replay(ctx, 0, steps("A", "B", "C"), inv, h)

	assert.Same(t, boom, err)
	assert.Equal(t, []int{1}, failed)
	inv.AssertExpectations(t)
	inv.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, "C", mock.Anything)
}

func TestReplay_NotCallableAborts(t *testing.T) {
	t.Parallel()

	inv := InvokerFunc(func(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
		if step.Name() != "A" {
			return nil, &lazy.NotCallableError{Name: step.Name(), Index: index, Receiver: lazy.TypeName(recv)}
		}
		return "shape", nil
	})

	_, err := Replay(context.Background(), 1, steps("A", "B", "A"), inv, ReplayHandlers{})

	var nc *lazy.NotCallableError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, "B", nc.Name)
	assert.Equal(t, 1, nc.Index)
	assert.Equal(t, "string", nc.Receiver)
}

func TestReplay_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := &mockInvoker{}
	_, err := Replay(ctx, 0, steps("A"), inv, ReplayHandlers{})

	assert.ErrorIs(t, err, context.Canceled)
	inv.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinHandlers_CallsAllInOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	first := ReplayHandlers{
		OnStep: func(ctx context.Context, index int, step lazy.Step, recv any) { calls = append(calls, "1:step") },
		OnDone: func(ctx context.Context, steps int, result any) { calls = append(calls, "1:done") },
	}
	second := ReplayHandlers{
		OnStep:    func(ctx context.Context, index int, step lazy.Step, recv any) { calls = append(calls, "2:step") },
		OnSettled: func(ctx context.Context, index int, step lazy.Step, result any) { calls = append(calls, "2:settled") },
	}

	inv := InvokerFunc(func(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
		return recv, nil
	})
	_, err := Replay(context.Background(), 0, steps("A"), inv, JoinHandlers(first, second))

	require.NoError(t, err)
	assert.Equal(t, []string{"1:step", "2:step", "2:settled", "1:done"}, calls)
}
