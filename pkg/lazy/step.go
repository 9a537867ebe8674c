package lazy

import (
	"fmt"
	"strings"
)

// Step is one recorded invocation. It is never mutated after creation.
type Step struct {
	name string
	args []any
}

func NewStep(name string, args ...any) Step {
	cp := make([]any, len(args))
	copy(cp, args)
	return Step{name: name, args: cp}
}

func (s Step) Name() string {
	return s.name
}

// Args returns a copy of the recorded arguments.
func (s Step) Args() []any {
	cp := make([]any, len(s.args))
	copy(cp, s.args)
	return cp
}

// NumArgs avoids the copy made by Args.
func (s Step) NumArgs() int {
	return len(s.args)
}

func (s Step) String() string {
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return s.name + "(" + strings.Join(parts, ", ") + ")"
}
