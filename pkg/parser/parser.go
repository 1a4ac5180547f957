// Package parser turns BL source text into a validated Program using
// Participle v2. The grammar is defined as Go structs with tags.
//
// BL surface syntax:
//
//	PROGRAM name IS
//	    INSTRUCTION name IS
//	        statements
//	    END name
//	    ...
//	BEGIN
//	    statements
//	END name
//
// Statements are IF cond THEN ... [ELSE ...] END IF, WHILE cond DO ...
// END WHILE, and bare identifiers (instruction calls). Tokens are
// whitespace-separated; keywords are upper-case.
package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/blLang/bugsworld/pkg/program"
	"github.com/blLang/bugsworld/pkg/statement"
	"github.com/blLang/bugsworld/pkg/token"
)

// AST node types - parsed from source, converted to program/statement
// values for generation.

// File is the top-level AST node.
type File struct {
	Name         string       `parser:"\"PROGRAM\" @Ident \"IS\""`
	Instructions []*InstrDecl `parser:"@@*"`
	Body         []*Stmt      `parser:"\"BEGIN\" @@*"`
	EndName      string       `parser:"\"END\" @Ident"`
}

// InstrDecl: INSTRUCTION name IS statements END name
type InstrDecl struct {
	Name    string  `parser:"\"INSTRUCTION\" @Ident \"IS\""`
	Body    []*Stmt `parser:"@@*"`
	EndName string  `parser:"\"END\" @Ident"`
}

// Stmt is one BL statement.
type Stmt struct {
	If    *IfStmt    `parser:"  @@"`
	While *WhileStmt `parser:"| @@"`
	Call  *string    `parser:"| @Ident"`
}

// IfStmt covers both IF and IF/ELSE.
type IfStmt struct {
	Cond    string  `parser:"\"IF\" @Ident \"THEN\""`
	Then    []*Stmt `parser:"@@*"`
	HasElse bool    `parser:"(@\"ELSE\""`
	Else    []*Stmt `parser:"@@*)? \"END\" \"IF\""`
}

// WhileStmt: WHILE cond DO statements END WHILE
type WhileStmt struct {
	Cond string  `parser:"\"WHILE\" @Ident \"DO\""`
	Body []*Stmt `parser:"@@* \"END\" \"WHILE\""`
}

// BL lexer definition. Keywords get their own token type so a bare
// identifier statement can never swallow END, ELSE, or BEGIN.
var blLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Keyword", Pattern: `\b(?:PROGRAM|INSTRUCTION|BEGIN|END|IF|THEN|ELSE|WHILE|DO|IS)\b`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9-]*`},
})

// Parser is the BL parser.
var Parser = participle.MustBuild[File](
	participle.Lexer(blLexer),
	participle.Elide("Whitespace"),
)

// Parse parses BL source and converts it to a validated Program.
func Parse(source string) (*program.Program, error) {
	file, err := Parser.ParseString("", source)
	if err != nil {
		return nil, err
	}
	return file.ToProgram()
}

// ParseFile parses the BL source file at path.
func ParseFile(path string) (*program.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parser.ParseString(path, string(data))
	if err != nil {
		return nil, err
	}
	return file.ToProgram()
}

// ToProgram converts the AST to a Program, installing the Context with
// its install-time validation.
func (f *File) ToProgram() (*program.Program, error) {
	if f.EndName != f.Name {
		return nil, fmt.Errorf("program %q ends with END %s", f.Name, f.EndName)
	}

	p := program.New()
	if err := p.SetName(f.Name); err != nil {
		return nil, err
	}

	ctx := program.NewContext()
	for _, decl := range f.Instructions {
		if decl.EndName != decl.Name {
			return nil, fmt.Errorf("instruction %q ends with END %s", decl.Name, decl.EndName)
		}
		body, err := toBlock(decl.Body)
		if err != nil {
			return nil, fmt.Errorf("instruction %q: %w", decl.Name, err)
		}
		if err := ctx.Define(decl.Name, body); err != nil {
			return nil, err
		}
	}
	if err := p.SetContext(ctx); err != nil {
		return nil, err
	}

	body, err := toBlock(f.Body)
	if err != nil {
		return nil, err
	}
	if err := p.SetBody(body); err != nil {
		return nil, err
	}
	return p, nil
}

// toBlock converts a statement list to a BLOCK statement.
func toBlock(stmts []*Stmt) (*statement.Statement, error) {
	block := statement.New()
	for _, st := range stmts {
		conv, err := st.toStatement()
		if err != nil {
			return nil, err
		}
		block.AppendToBlock(conv)
	}
	return block, nil
}

func (st *Stmt) toStatement() (*statement.Statement, error) {
	switch {
	case st.If != nil:
		return st.If.toStatement()
	case st.While != nil:
		return st.While.toStatement()
	case st.Call != nil:
		if !token.IsIdentifier(*st.Call) {
			return nil, fmt.Errorf("%q is a %s, not an instruction name", *st.Call, token.Kind(*st.Call))
		}
		s := statement.New()
		s.AssembleCall(*st.Call)
		return s, nil
	}
	return nil, fmt.Errorf("empty statement")
}

func (is *IfStmt) toStatement() (*statement.Statement, error) {
	cond, ok := statement.ConditionByName(is.Cond)
	if !ok {
		return nil, fmt.Errorf("unknown condition %q", is.Cond)
	}
	thenBody, err := toBlock(is.Then)
	if err != nil {
		return nil, err
	}
	s := statement.New()
	if !is.HasElse {
		s.AssembleIf(cond, thenBody)
		return s, nil
	}
	elseBody, err := toBlock(is.Else)
	if err != nil {
		return nil, err
	}
	s.AssembleIfElse(cond, thenBody, elseBody)
	return s, nil
}

func (ws *WhileStmt) toStatement() (*statement.Statement, error) {
	cond, ok := statement.ConditionByName(ws.Cond)
	if !ok {
		return nil, fmt.Errorf("unknown condition %q", ws.Cond)
	}
	body, err := toBlock(ws.Body)
	if err != nil {
		return nil, err
	}
	s := statement.New()
	s.AssembleWhile(cond, body)
	return s, nil
}
