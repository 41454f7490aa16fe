// Package eval computes arithmetic expressions by recursive descent,
// evaluating while it parses.
//
// The grammar, with left-associative binary operators:
//
//	expr   := term ( ('+' | '-') term )*
//	term   := factor ( ('*' | '/') factor )*
//	factor := Number | '(' expr ')'
//
// The first failure anywhere in the descent aborts the whole call: one of the
// error types in this package, or a *lexer.UnknownCharacterError from the
// scanning layer.
package eval

import (
	"github.com/agenthands/ncalc/pkg/calc/lexer"
)

// DefaultMaxDepth bounds grammar recursion (parenthesis nesting). Deep enough
// for any real expression while keeping pathological inputs off the call
// stack.
const DefaultMaxDepth = 64

type evaluator struct {
	scanner  *lexer.Scanner
	depth    int
	maxDepth int
}

// Evaluate parses input as one arithmetic expression and returns its value.
// Division follows IEEE-754 semantics: 2/0 is +Inf, not an error.
func Evaluate(input string) (float64, error) {
	return EvaluateDepth(input, DefaultMaxDepth)
}

// EvaluateDepth is Evaluate with an explicit nesting limit. Limits below 1
// fall back to DefaultMaxDepth.
func EvaluateDepth(input string, maxDepth int) (float64, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	e := &evaluator{
		scanner:  lexer.NewScanner([]byte(input)),
		maxDepth: maxDepth,
	}
	value, err := e.parseExpr()
	if err != nil {
		return 0, err
	}
	tok, err := e.scanner.Next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != lexer.KindEOF {
		return 0, &TrailingInputError{Found: tok}
	}
	return value, nil
}

func (e *evaluator) parseExpr() (float64, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.maxDepth {
		return 0, &NestingTooDeepError{Limit: e.maxDepth}
	}

	value, err := e.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		tok, err := e.scanner.Peek()
		if err != nil {
			return 0, err
		}
		switch tok.Kind {
		case lexer.KindPlus:
			e.scanner.Drop()
			rhs, err := e.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case lexer.KindMinus:
			e.scanner.Drop()
			rhs, err := e.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			// Not ours; leave it for the caller.
			return value, nil
		}
	}
}

func (e *evaluator) parseTerm() (float64, error) {
	value, err := e.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		tok, err := e.scanner.Peek()
		if err != nil {
			return 0, err
		}
		switch tok.Kind {
		case lexer.KindStar:
			e.scanner.Drop()
			rhs, err := e.parseFactor()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case lexer.KindSlash:
			e.scanner.Drop()
			rhs, err := e.parseFactor()
			if err != nil {
				return 0, err
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

func (e *evaluator) parseFactor() (float64, error) {
	tok, err := e.scanner.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case lexer.KindNumber:
		return tok.Value, nil
	case lexer.KindLParen:
		return e.parseParen()
	default:
		return 0, &UnexpectedTokenError{Found: tok}
	}
}

func (e *evaluator) parseParen() (float64, error) {
	value, err := e.parseExpr()
	if err != nil {
		return 0, err
	}
	tok, err := e.scanner.Next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != lexer.KindRParen {
		return 0, &UnclosedParenError{Offset: tok.Offset}
	}
	return value, nil
}
