package lexer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/agenthands/ncalc/pkg/calc/lexer"
)

func TestScanTokenSequence(t *testing.T) {
	s := lexer.NewScanner([]byte(" (2+3) * 4 / 1 - 5\n"))

	expected := []struct {
		kind   lexer.Kind
		offset int
	}{
		{lexer.KindLParen, 1},
		{lexer.KindNumber, 2},
		{lexer.KindPlus, 3},
		{lexer.KindNumber, 4},
		{lexer.KindRParen, 5},
		{lexer.KindStar, 7},
		{lexer.KindNumber, 9},
		{lexer.KindSlash, 11},
		{lexer.KindNumber, 13},
		{lexer.KindMinus, 15},
		{lexer.KindNumber, 17},
		{lexer.KindEOF, 19},
	}

	for i, exp := range expected {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != exp.kind {
			t.Errorf("token %d: expected kind %v, got %v", i, exp.kind, tok.Kind)
		}
		if tok.Offset != exp.offset {
			t.Errorf("token %d: expected offset %d, got %d", i, exp.offset, tok.Offset)
		}
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	s := lexer.NewScanner([]byte("12+34"))

	first, err := s.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	second, err := s.Peek()
	if err != nil {
		t.Fatalf("second peek: %v", err)
	}
	if first != second {
		t.Errorf("repeated peek changed the token: %+v vs %+v", first, second)
	}

	tok, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tok != first {
		t.Errorf("next did not return the peeked token: %+v vs %+v", tok, first)
	}
	tok, err = s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tok.Kind != lexer.KindPlus {
		t.Errorf("expected '+' after consumed lookahead, got %v", tok.Kind)
	}
}

func TestDropConsumesLookahead(t *testing.T) {
	s := lexer.NewScanner([]byte("7*8"))

	if _, err := s.Peek(); err != nil {
		t.Fatalf("peek: %v", err)
	}
	s.Drop()

	tok, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tok.Kind != lexer.KindStar {
		t.Errorf("expected '*' after drop, got %v", tok.Kind)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{"7.", 7},
		{"1e10", 1e10},
		{"2.5E-3", 2.5e-3},
		{"6e+2", 600},
		{"1e999", math.Inf(1)},
	}

	for _, tc := range tests {
		s := lexer.NewScanner([]byte(tc.input))
		tok, err := s.Next()
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.input, err)
			continue
		}
		if tok.Kind != lexer.KindNumber {
			t.Errorf("%q: expected number, got %v", tc.input, tok.Kind)
			continue
		}
		if tok.Value != tc.value {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.value, tok.Value)
		}
		tok, err = s.Next()
		if err != nil {
			t.Errorf("%q: error after literal: %v", tc.input, err)
		} else if tok.Kind != lexer.KindEOF {
			t.Errorf("%q: expected EOF after literal, got %v", tc.input, tok.Kind)
		}
	}
}

// "9e" takes the strtod prefix rule: the 9 is a literal and the dangling e is
// the next scan's problem.
func TestBareExponentStaysBehind(t *testing.T) {
	s := lexer.NewScanner([]byte("9e"))

	tok, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tok.Kind != lexer.KindNumber || tok.Value != 9 {
		t.Fatalf("expected number 9, got %+v", tok)
	}

	_, err = s.Next()
	var unknownErr *lexer.UnknownCharacterError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownCharacterError for dangling 'e', got %v", err)
	}
	if unknownErr.Offset != 1 || unknownErr.Char != 'e' {
		t.Errorf("expected 'e' at offset 1, got %q at %d", unknownErr.Char, unknownErr.Offset)
	}
}

func TestUnknownCharacter(t *testing.T) {
	s := lexer.NewScanner([]byte("2&3"))

	if _, err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	for i := 0; i < 2; i++ {
		_, err := s.Next()
		var unknownErr *lexer.UnknownCharacterError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("attempt %d: expected UnknownCharacterError, got %v", i, err)
		}
		// The cursor must not advance past the bad byte.
		if unknownErr.Offset != 1 || unknownErr.Char != '&' {
			t.Errorf("attempt %d: expected '&' at offset 1, got %q at %d", i, unknownErr.Char, unknownErr.Offset)
		}
	}
}

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte("(12.5 + 3) * 41 / 1e2 - 7")

	allocs := testing.AllocsPerRun(10, func() {
		s := lexer.NewScanner(src)
		for {
			tok, err := s.Next()
			if err != nil || tok.Kind == lexer.KindEOF {
				break
			}
		}
	})

	if allocs > 1 {
		t.Errorf("expected at most the scanner allocation, got %f", allocs)
	}
}
