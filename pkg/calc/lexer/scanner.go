// Package lexer performs lexical analysis on arithmetic expressions.
package lexer

import (
	"errors"
	"strconv"
	"unsafe"
)

// Scanner turns an expression buffer into tokens on demand, buffering at most
// one token of lookahead ahead of the cursor.
type Scanner struct {
	source    []byte
	cursor    int
	lookahead Token
	buffered  bool
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Next returns the next token, consuming it. A cached lookahead is served and
// cleared first; otherwise a fresh token is scanned from the cursor.
func (s *Scanner) Next() (Token, error) {
	if s.buffered {
		tok := s.lookahead
		s.Drop()
		return tok, nil
	}
	return s.scan()
}

// Peek returns the next token without consuming it. Repeated calls return the
// same token and do not advance the cursor until Next or Drop intervenes.
func (s *Scanner) Peek() (Token, error) {
	if !s.buffered {
		tok, err := s.scan()
		if err != nil {
			return Token{}, err
		}
		s.lookahead = tok
		s.buffered = true
	}
	return s.lookahead, nil
}

// Drop discards the cached lookahead, marking it consumed without returning
// it. A no-op when nothing is buffered.
func (s *Scanner) Drop() {
	s.buffered = false
}

func (s *Scanner) scan() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: s.cursor}, nil
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanNumber()
	}

	var kind Kind
	switch ch {
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '/':
		kind = KindSlash
	case '*':
		kind = KindStar
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	default:
		// Cursor stays put: the failure is terminal for the whole parse.
		return Token{}, &UnknownCharacterError{Offset: start, Char: ch}
	}

	s.cursor++
	return Token{Kind: kind, Offset: start}, nil
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\n', '\r':
			s.cursor++
		default:
			return
		}
	}
}

// scanNumber consumes the maximal prefix that forms a floating-point literal:
// digits, an optional fraction, and an optional signed exponent. This is the
// strtod prefix rule, so "7." and "1e10" are numbers while the 'e' of "9e" is
// left for the next scan.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	if s.cursor < len(s.source) && s.source[s.cursor] == '.' {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}
	if s.cursor < len(s.source) && (s.source[s.cursor] == 'e' || s.source[s.cursor] == 'E') {
		mark := s.cursor
		s.cursor++
		if s.cursor < len(s.source) && (s.source[s.cursor] == '+' || s.source[s.cursor] == '-') {
			s.cursor++
		}
		if s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
				s.cursor++
			}
		} else {
			// Not an exponent after all.
			s.cursor = mark
		}
	}

	// unsafe.String keeps the hot path allocation-free; ParseFloat does not
	// retain the string.
	lit := unsafe.String(&s.source[start], s.cursor-start)
	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return Token{}, &UnknownCharacterError{Offset: start, Char: s.source[start]}
		}
		// Out-of-range literals saturate to ±Inf, same as strtod.
	}
	return Token{Kind: KindNumber, Value: value, Offset: start}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
