// Package expr implements a tokenizer and recursive-descent evaluator for
// plain arithmetic expressions. The grammar, lowest to highest precedence:
//
//	expr   := term ((+|-) term)*
//	term   := factor ((*|/|%) factor)*
//	factor := base (^ factor)?          exponent is right-associative
//	base   := number | (expr) | - base
//
// Unary minus is only valid where base is expected: at the start of an
// expression, after an operator, or after an opening paren. Division or
// modulo by zero is a parse failure, never NaN or Inf. Malformed input is
// extremely common while the user is still typing, so all failures are
// reported as a nil result rather than an error.
package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Result is a successfully evaluated expression.
type Result struct {
	Expression string  // the evaluated expression text (trailing operator stripped)
	Value      float64 // numeric value
	Display    string  // formatted value; ends in "..." for partial input
	Partial    bool    // input ended in a trailing operator
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	op   byte
	val  float64
}

// Evaluate parses and evaluates input. It returns nil when the input is not
// a valid expression. Input ending in an operator evaluates the prefix and
// marks the result partial.
func Evaluate(input string) *Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	partial := false
	if isOperator(trimmed[len(trimmed)-1]) {
		partial = true
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-1])
		if trimmed == "" {
			return nil
		}
		// "5+*" and friends are not a valid prefix
		if isOperator(trimmed[len(trimmed)-1]) {
			return nil
		}
	}

	toks, ok := tokenize(trimmed)
	if !ok || len(toks) == 0 {
		return nil
	}

	p := &parser{toks: toks}
	val, ok := p.parseExpr()
	if !ok || p.pos != len(p.toks) {
		return nil
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil
	}

	display := FormatNumber(val)
	if partial {
		display += "..."
	}

	return &Result{
		Expression: trimmed,
		Value:      val,
		Display:    display,
		Partial:    partial,
	}
}

// FormatNumber renders a float with thousands grouping and at most six
// significant decimals, trimming float noise.
func FormatNumber(v float64) string {
	// Round away artifacts like 0.30000000000000004 before display.
	rounded := math.Round(v*1e6) / 1e6
	if rounded == 0 {
		// Avoid "-0"
		rounded = 0
	}
	return humanize.CommafWithDigits(rounded, 6)
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}

func tokenize(s string) ([]token, bool) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case isOperator(c):
			toks = append(toks, token{kind: tokOp, op: c})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == ',') {
				i++
			}
			raw, ok := stripGrouping(s[start:i])
			if !ok {
				return nil, false
			}
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, false
			}
			toks = append(toks, token{kind: tokNumber, val: val})
		default:
			return nil, false
		}
	}
	return toks, true
}

// stripGrouping removes thousands separators after validating them: commas
// may only split the integer part into 3-digit groups (1-3 digits in the
// first). "1,2" is two numbers mistyped together, not 12.
func stripGrouping(raw string) (string, bool) {
	if !strings.Contains(raw, ",") {
		return raw, true
	}
	intPart := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart = raw[:i]
		if strings.Contains(raw[i:], ",") {
			return "", false
		}
	}
	groups := strings.Split(intPart, ",")
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	return strings.ReplaceAll(raw, ",", ""), true
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos < len(p.toks) {
		return p.toks[p.pos], true
	}
	return token{}, false
}

func (p *parser) parseExpr() (float64, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return 0, false
	}
	for {
		t, exists := p.peek()
		if !exists || t.kind != tokOp || (t.op != '+' && t.op != '-') {
			return left, true
		}
		p.pos++
		right, ok := p.parseTerm()
		if !ok {
			return 0, false
		}
		if t.op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return 0, false
	}
	for {
		t, exists := p.peek()
		if !exists || t.kind != tokOp || (t.op != '*' && t.op != '/' && t.op != '%') {
			return left, true
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		switch t.op {
		case '*':
			left *= right
		case '/':
			if right == 0 {
				return 0, false
			}
			left /= right
		case '%':
			if right == 0 {
				return 0, false
			}
			left = math.Mod(left, right)
		}
	}
}

func (p *parser) parseFactor() (float64, bool) {
	base, ok := p.parseBase()
	if !ok {
		return 0, false
	}
	t, exists := p.peek()
	if exists && t.kind == tokOp && t.op == '^' {
		p.pos++
		// Right-associative: 2^3^2 = 2^(3^2)
		exp, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		return math.Pow(base, exp), true
	}
	return base, true
}

func (p *parser) parseBase() (float64, bool) {
	t, exists := p.peek()
	if !exists {
		return 0, false
	}

	switch {
	case t.kind == tokOp && t.op == '-':
		p.pos++
		v, ok := p.parseBase()
		if !ok {
			return 0, false
		}
		return -v, true

	case t.kind == tokNumber:
		p.pos++
		return t.val, true

	case t.kind == tokLParen:
		p.pos++
		v, ok := p.parseExpr()
		if !ok {
			return 0, false
		}
		next, exists := p.peek()
		if !exists || next.kind != tokRParen {
			return 0, false
		}
		p.pos++
		return v, true
	}

	return 0, false
}
