// Package program models a complete BL program: a name, a Context of
// user-defined instructions, and a BLOCK body. The Context invariants
// are enforced here, at install time; the code generator assumes them.
package program

import (
	"fmt"

	"github.com/blLang/bugsworld/pkg/statement"
	"github.com/blLang/bugsworld/pkg/token"
)

// Program owns its name, Context, and body exclusively. Body and
// Context move in and out by ownership transfer: a Take* call leaves a
// fresh empty value behind, and the matching Set* call validates and
// reinstalls.
type Program struct {
	name    string
	context *Context
	body    *statement.Statement
}

// New returns a program with the default value: name "Unnamed", an
// empty Context, and an empty BLOCK body.
func New() *Program {
	return &Program{
		name:    "Unnamed",
		context: NewContext(),
		body:    statement.New(),
	}
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// SetName renames the program. The name must be a valid identifier.
func (p *Program) SetName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("program name %q is not a valid identifier", name)
	}
	p.name = name
	return nil
}

// SetContext validates c and installs it, taking ownership. The
// previous Context is discarded.
func (p *Program) SetContext(c *Context) error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid context: %w", err)
	}
	p.context = c
	return nil
}

// TakeContext moves the Context out of the program, leaving an empty
// one behind.
func (p *Program) TakeContext() *Context {
	c := p.context
	p.context = NewContext()
	return c
}

// Context returns the installed Context without transferring ownership.
func (p *Program) Context() *Context {
	return p.context
}

// SetBody installs b as the program body, taking ownership. The body
// must be a BLOCK.
func (p *Program) SetBody(b *statement.Statement) error {
	if b.Kind() != statement.KindBlock {
		return fmt.Errorf("program body is a %s, not a BLOCK", b.Kind())
	}
	p.body = b
	return nil
}

// TakeBody moves the body out of the program, leaving an empty BLOCK
// behind.
func (p *Program) TakeBody() *statement.Statement {
	b := p.body
	p.body = statement.New()
	return b
}

// Body returns the program body without transferring ownership.
func (p *Program) Body() *statement.Statement {
	return p.body
}

// Equal reports whether p and o have the same name, the same body, and
// Contexts with the same entries in the same insertion order.
func (p *Program) Equal(o *Program) bool {
	if p.name != o.name || !p.body.Equal(o.body) {
		return false
	}
	if len(p.context.names) != len(o.context.names) {
		return false
	}
	for i, name := range p.context.names {
		if o.context.names[i] != name {
			return false
		}
		if !p.context.bodies[name].Equal(o.context.bodies[name]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy sharing no statements with the receiver.
func (p *Program) Copy() *Program {
	c := NewContext()
	for _, name := range p.context.names {
		c.names = append(c.names, name)
		c.bodies[name] = p.context.bodies[name].Copy()
	}
	return &Program{name: p.name, context: c, body: p.body.Copy()}
}
