package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindNumber:
		return "number"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindStar:
		return "'*'"
	case KindSlash:
		return "'/'"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	default:
		return "unknown"
	}
}

// Token is one lexical unit. Value is meaningful only for KindNumber.
// Offset is the byte position in the source where the token begins.
type Token struct {
	Kind   Kind
	Value  float64
	Offset int
}

// UnknownCharacterError reports a byte that cannot start any token.
type UnknownCharacterError struct {
	Offset int
	Char   byte
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q at offset %d", e.Char, e.Offset)
}
