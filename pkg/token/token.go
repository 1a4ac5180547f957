// Package token classifies BL source tokens: keywords, conditions, and
// identifiers. The parser and the program validator share these checks.
package token

import "github.com/blLang/bugsworld/pkg/statement"

// keywords are the reserved words of the BL surface syntax.
var keywords = map[string]bool{
	"PROGRAM":     true,
	"INSTRUCTION": true,
	"IS":          true,
	"BEGIN":       true,
	"END":         true,
	"IF":          true,
	"THEN":        true,
	"ELSE":        true,
	"WHILE":       true,
	"DO":          true,
}

// IsKeyword reports whether tok is a BL keyword.
func IsKeyword(tok string) bool {
	return keywords[tok]
}

// IsCondition reports whether tok spells a sensor condition.
func IsCondition(tok string) bool {
	_, ok := statement.ConditionByName(tok)
	return ok
}

// IsIdentifier reports whether tok is a valid BL identifier: a letter
// followed by letters, digits, or hyphens, and not a keyword or a
// condition.
func IsIdentifier(tok string) bool {
	if tok == "" || IsKeyword(tok) || IsCondition(tok) {
		return false
	}
	for i, r := range tok {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Kind names the lexical class of a token; used by diagnostics.
func Kind(tok string) string {
	switch {
	case IsKeyword(tok):
		return "KEYWORD"
	case IsCondition(tok):
		return "CONDITION"
	case IsIdentifier(tok):
		return "IDENTIFIER"
	}
	return "ERROR"
}
