package program

import (
	"fmt"

	"github.com/blLang/bugsworld/pkg/bytecode"
	"github.com/blLang/bugsworld/pkg/statement"
	"github.com/blLang/bugsworld/pkg/token"
)

// Context is the ordered table mapping user-defined instruction names
// to their BLOCK bodies. Iteration order is insertion order; it has no
// effect on generated code but keeps output stable.
//
// A Context is built freely with Define and validated once, when it is
// installed into a Program. The code generator reads an installed
// Context and must not replace entries it does not own.
type Context struct {
	names  []string
	bodies map[string]*statement.Statement
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{bodies: make(map[string]*statement.Statement)}
}

// Define adds a (name, body) entry, taking ownership of body. Defining
// a name twice is an error.
func (c *Context) Define(name string, body *statement.Statement) error {
	if _, ok := c.bodies[name]; ok {
		return fmt.Errorf("instruction %q defined twice", name)
	}
	c.names = append(c.names, name)
	c.bodies[name] = body
	return nil
}

// Lookup returns the body installed under name, if any. The returned
// statement is still owned by the Context.
func (c *Context) Lookup(name string) (*statement.Statement, bool) {
	body, ok := c.bodies[name]
	return body, ok
}

// Len returns the number of entries.
func (c *Context) Len() int {
	return len(c.names)
}

// Names returns the entry names in insertion order.
func (c *Context) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// validate applies the install-time invariants: every key is an
// identifier, no key collides with a primitive instruction name, and
// every body is a BLOCK.
func (c *Context) validate() error {
	for _, name := range c.names {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("instruction name %q is not a valid identifier", name)
		}
		if bytecode.IsPrimitiveName(name) {
			return fmt.Errorf("instruction name %q collides with a primitive instruction", name)
		}
		if c.bodies[name].Kind() != statement.KindBlock {
			return fmt.Errorf("body of instruction %q is a %s, not a BLOCK", name, c.bodies[name].Kind())
		}
	}
	return nil
}
