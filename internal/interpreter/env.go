package interpreter

import (
	"sort"
	"strings"

	"regcanon/internal/regexlib"
)

// Environment holds the expressions bound with let.
type Environment struct {
	vars map[string]*regexlib.Node
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*regexlib.Node)}
}

func (e *Environment) Get(name string) (*regexlib.Node, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val *regexlib.Node) {
	e.vars[name] = val
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name + "=" + regexlib.Serialize(e.vars[name]))
	}
	return b.String()
}
