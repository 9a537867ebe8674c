package lazy

// Chain is the append-only sequence of steps owned by one interceptor.
// It is consumed exactly once by Seal.
type Chain struct {
	steps  []Step
	sealed bool
}

func NewChain() *Chain {
	return &Chain{}
}

// Record appends a step unless the chain was already sealed.
func (c *Chain) Record(name string, args ...any) error {
	if c.sealed {
		return ErrConsumed
	}
	c.steps = append(c.steps, NewStep(name, args...))
	return nil
}

func (c *Chain) Len() int {
	return len(c.steps)
}

func (c *Chain) Sealed() bool {
	return c.sealed
}

// Steps returns a snapshot of the recorded steps in call order.
func (c *Chain) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Seal hands the steps over for replay and rejects any later use.
func (c *Chain) Seal() ([]Step, error) {
	if c.sealed {
		return nil, ErrConsumed
	}
	c.sealed = true
	return c.Steps(), nil
}
