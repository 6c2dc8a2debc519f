package pattern

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/hebrew"
)

// Pattern expressions accepted on the command line and in config files:
//
//	יהוה       target word, midpoint split
//	יהוה@1     target word, explicit split index
//	יה+וה      explicit suffix and prefix
type patternExpr struct {
	First string    `@Word`
	Rest  *exprRest `@@?`
}

type exprRest struct {
	Prefix string `  "+" @Word`
	Split  *int   `| "@" @Int`
}

// exprLexer tokenizes pattern expressions. Order matters: digits must be
// claimed by Int before Word can swallow them.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "At", Pattern: `@`},
	{Name: "Word", Pattern: `[^\s@+0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var exprParser = participle.MustBuild[patternExpr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// ParseExpr parses a pattern expression into a validated Spec using the
// given normalizer. Parse failures and invalid splits are ConfigErrors.
func ParseExpr(label, expr string, n *hebrew.Normalizer) (Spec, error) {
	ast, err := exprParser.ParseString("", expr)
	if err != nil {
		return Spec{}, &errors.ConfigError{
			Field:   "pattern",
			Message: "unparseable expression " + expr,
			Err:     err,
		}
	}

	if ast.Rest == nil {
		return New(label, ast.First, 0, n)
	}
	if ast.Rest.Prefix != "" {
		return Parts(label, ast.First, ast.Rest.Prefix, n)
	}
	return New(label, ast.First, *ast.Rest.Split, n)
}
