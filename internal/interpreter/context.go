package interpreter

import (
	"io"

	"regcanon/internal/equiv"
)

// Context is what a program runs against: where results go, how equiv
// statements are decided, and the let bindings seen so far.
type Context struct {
	Out     io.Writer
	Checker *equiv.Checker
	Env     *Environment
}

func (c *Context) env() *Environment {
	if c.Env == nil {
		c.Env = NewEnvironment()
	}
	return c.Env
}

func (c *Context) checker() *equiv.Checker {
	if c.Checker == nil {
		return &equiv.Checker{}
	}
	return c.Checker
}
