package eval

import (
	"fmt"

	"github.com/agenthands/ncalc/pkg/calc/lexer"
)

// UnexpectedTokenError reports a token found where a number or '(' was
// required. Found may be the EOF sentinel.
type UnexpectedTokenError struct {
	Found lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s at offset %d", e.Found.Kind, e.Found.Offset)
}

// UnclosedParenError reports a '(' that was never matched by ')'. Offset is
// the position of the token found in place of the ')'.
type UnclosedParenError struct {
	Offset int
}

func (e *UnclosedParenError) Error() string {
	return fmt.Sprintf("expected ')' at offset %d", e.Offset)
}

// TrailingInputError reports leftover tokens after a complete expression.
type TrailingInputError struct {
	Found lexer.Token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("trailing %s at offset %d after expression", e.Found.Kind, e.Found.Offset)
}

// NestingTooDeepError reports that the recursion-depth guard tripped.
type NestingTooDeepError struct {
	Limit int
}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("expression nesting exceeds %d levels", e.Limit)
}
