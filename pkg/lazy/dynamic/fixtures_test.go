package dynamic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ib-77/lazy3/pkg/lazy"
)

var errBoom = errors.New("boom")

type counter struct {
	N int
}

func (c counter) Add(k int) counter {
	return counter{N: c.N + k}
}

func (c counter) Double() counter {
	return counter{N: c.N * 2}
}

func (c counter) AddLater(k int) *lazy.Future[counter] {
	return lazy.Go(func() (counter, error) {
		time.Sleep(5 * time.Millisecond)
		return counter{N: c.N + k}, nil
	})
}

func (c counter) Stream(k int) <-chan counter {
	ch := make(chan counter, 1)
	ch <- counter{N: c.N * k}
	close(ch)
	return ch
}

func (c counter) Checked(limit int) lazy.Result[counter] {
	if c.N > limit {
		return lazy.Fail[counter](fmt.Errorf("%d over %d", c.N, limit))
	}
	return lazy.Success(c, 0)
}

func (c counter) Fail() (counter, error) {
	return counter{}, errBoom
}

func (c counter) FailLater() *lazy.Future[counter] {
	return lazy.Rejected[counter](errBoom)
}

func (c counter) Label() label {
	return label{Text: fmt.Sprintf("n=%d", c.N)}
}

func (c counter) Fetch(ctx context.Context, k int) (counter, error) {
	if err := ctx.Err(); err != nil {
		return counter{}, err
	}
	return counter{N: c.N + k}, nil
}

func (c counter) Sum(ks ...int) counter {
	for _, k := range ks {
		c.N += k
	}
	return c
}

func (c counter) Split() (int, int) {
	return c.N / 2, c.N - c.N/2
}

type level struct {
	B uint8
}

func (l level) Set(b uint8) level {
	return level{B: b}
}

func (l level) Scale(f float32) float32 {
	return float32(l.B) * f
}

type label struct {
	Text string
}

func (l label) Upper() label {
	out := []rune(l.Text)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return label{Text: string(out)}
}

// account mutates itself through pointer receivers.
type account struct {
	Owner   string
	Balance int
	Audit   func(int) int
	Missing func()
	history []int
}

func (a *account) Deposit(n int) {
	a.Balance += n
	a.history = append(a.history, n)
}

func (a *account) Withdraw(n int) error {
	if n > a.Balance {
		return errors.New("insufficient funds")
	}
	a.Balance -= n
	return nil
}

func (a *account) Statement() string {
	return fmt.Sprintf("%s:%d", a.Owner, a.Balance)
}

type greeter struct{}

func (greeter) Hello() string { return "hello from greeter" }
func (greeter) Bye() string { return "bye from greeter" }

type politeGreeter struct {
	greeter
	Name string
}

func (politeGreeter) Hello() string { return "good day" }
