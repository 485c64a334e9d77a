package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Literal limits inherited from the language definition. They apply only
// when the scanner's literal limits are enabled.
const (
	MaxIntLit    = 32767       // integer literals must be < MaxIntLit
	MaxFloatLit  = 117549436.0 // float literals must be < MaxFloatLit
	MaxStringLen = 64          // string literals must be shorter than MaxStringLen
)

// LexError reports a character, or a character sequence starting at Char,
// that is not part of the lexicon.
type LexError struct {
	Pos  Pos
	Char rune
	Msg  string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// TokenClass groups tokens for diagnostics and token dumps.
type TokenClass uint8

const (
	ClassEOF TokenClass = iota
	ClassKeyword
	ClassIdentifier
	ClassLiteral
	ClassOperator
	ClassPunctuation
)

var tokenClassNames = [...]string{
	ClassEOF:         "eof",
	ClassKeyword:     "keyword",
	ClassIdentifier:  "identifier",
	ClassLiteral:     "literal",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
}

func (c TokenClass) String() string {
	if int(c) < len(tokenClassNames) {
		return tokenClassNames[c]
	}
	return fmt.Sprintf("TokenClass(%d)", c)
}

// Class returns the lexical class of t.
func (t Token) Class() TokenClass {
	switch {
	case t == _EOF:
		return ClassEOF
	case t == _Name:
		return ClassIdentifier
	case t == _Literal:
		return ClassLiteral
	case t.IsKeyword():
		return ClassKeyword
	case t.IsOperator():
		return ClassOperator
	}
	return ClassPunctuation
}

// Lexeme is one scanned token together with its text and position.
type Lexeme struct {
	Tok  Token
	Lit  string  // identifier name, literal text (string content without quotes) or operator
	Kind LitKind // only meaningful when Tok is a literal
	Pos  Pos
}

// Scanner performs lexical analysis on MJS source code.
// It is a lazy token stream: each call to Next scans exactly one token.
// After the first lexical error the stream is exhausted and only EOF follows.
type Scanner struct {
	source

	tok    Token
	lit    string
	kind   LitKind
	tokPos Pos

	limits bool // enforce MaxIntLit, MaxFloatLit, MaxStringLen

	err  *LexError
	errh func(line, col uint32, msg string)

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// errh is called once, for the first lexical error; it may be nil.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	s := &Scanner{
		limits: true,
		errh:   errh,
	}
	s.source = *newSource(filename, src, s.sourceError)
	return s
}

// SetLiteralLimits enables or disables the literal range limits.
func (s *Scanner) SetLiteralLimits(enabled bool) {
	s.limits = enabled
}

// Reset rewinds the scanner to the beginning of its input, clearing any
// lexical error, so the same text can be tokenized again.
func (s *Scanner) Reset() {
	s.err = nil
	s.tok = _EOF
	s.lit = ""
	s.source.reset()
}

// Err returns the first lexical error, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.err != nil {
		s.tok = _EOF
		s.lit = ""
		return
	}

redo:
	s.skipWhitespace()
	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			goto redo
		}

	default:
		s.fail(s.tokPos, s.ch, fmt.Sprintf("unexpected character %q", s.ch))
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's text.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() is a literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Lexeme returns the current token as a Lexeme.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Tok: s.tok, Lit: s.lit, Kind: s.kind, Pos: s.tokPos}
}

// Tokenize drains s and returns every token up to and including EOF.
// On a lexical error it returns the tokens scanned so far and the error.
func Tokenize(s *Scanner) ([]Lexeme, error) {
	var toks []Lexeme
	for {
		s.Next()
		if err := s.Err(); err != nil {
			return toks, err
		}
		toks = append(toks, s.Lexeme())
		if s.tok == _EOF {
			return toks, nil
		}
	}
}

// fail records the first lexical error and ends the token stream.
func (s *Scanner) fail(pos Pos, ch rune, msg string) {
	if s.err == nil {
		s.err = &LexError{Pos: pos, Char: ch, Msg: msg}
		if s.errh != nil {
			s.errh(pos.Line(), pos.Col(), msg)
		}
	}
	s.tok = _EOF
	s.lit = ""
}

func (s *Scanner) sourceError(line, col uint32, msg string) {
	s.fail(NewPos(s.filename, line, col), utf8.RuneError, msg)
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal integer (123) or float (12.34) literal.
func (s *Scanner) scanNumber() {
	pos := s.tokPos
	first := s.ch
	s.litBuf.Reset()
	s.kind = IntLit

	s.scanDigits()
	if s.ch == '.' {
		if !isDigit(s.peek()) {
			s.fail(s.pos(), '.', "malformed float literal: expected digit after '.'")
			return
		}
		s.kind = FloatLit
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.scanDigits()
	}

	s.lit = s.litBuf.String()
	s.tok = _Literal

	switch s.kind {
	case IntLit:
		v, err := strconv.ParseInt(s.lit, 10, 64)
		if err != nil {
			s.fail(pos, first, "integer literal out of range: "+s.lit)
			return
		}
		if s.limits && v >= MaxIntLit {
			s.fail(pos, first, fmt.Sprintf("integer literal out of range: %s (must be less than %d)", s.lit, MaxIntLit))
		}
	case FloatLit:
		v, err := strconv.ParseFloat(s.lit, 64)
		if err != nil {
			s.fail(pos, first, "float literal out of range: "+s.lit)
			return
		}
		if s.limits && v >= MaxFloatLit {
			s.fail(pos, first, fmt.Sprintf("float literal out of range: %s (must be less than %.1f)", s.lit, MaxFloatLit))
		}
	}
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanString scans a string literal. There are no escape sequences: the
// literal is every character up to the closing quote, taken verbatim.
func (s *Scanner) scanString() {
	pos := s.tokPos
	s.nextch() // skip opening "
	s.litBuf.Reset()
	n := 0

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			if s.limits && n >= MaxStringLen {
				s.fail(pos, '"', fmt.Sprintf("string literal too long: %d characters (maximum %d)", n, MaxStringLen-1))
				return
			}
			s.lit = s.litBuf.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		case s.ch == '\n' || s.ch < 0:
			s.fail(pos, '"', "string literal not terminated")
			return

		default:
			s.litBuf.WriteRune(s.ch)
			n++
			s.nextch()
		}
	}
}

// scanOperator scans an operator or delimiter.
// It returns true if a comment was skipped instead.
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	// op or op= pairs
	pick := func(single, withAssign Token) {
		if s.ch == '=' {
			s.nextch()
			s.tok = withAssign
		} else {
			s.tok = single
		}
		s.lit = s.tok.String()
	}

	switch ch {
	case '+':
		pick(_Add, _AddAssign)
	case '-':
		pick(_Sub, _SubAssign)
	case '*':
		pick(_Mul, _MulAssign)
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		pick(_Div, _DivAssign)
	case '%':
		if s.ch != '=' {
			s.fail(s.tokPos, '%', "unexpected character '%' (only %= is allowed)")
			return false
		}
		s.nextch()
		s.tok = _RemAssign
		s.lit = "%="
	case '=':
		pick(_Assign, _Eql)
	case '!':
		pick(_Not, _Neq)
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	}

	return false
}

// skipLineComment skips from the second '/' to the end of the line.
func (s *Scanner) skipLineComment() {
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
