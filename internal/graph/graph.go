// Package graph compiles calculator-style notation into an evaluable numeric
// function of one variable. Accepted forms: "y=...", "f(x)=...", a bare
// expression mentioning x, and absolute-value bars ("|x|"). The compiler
// rewrites bars to abs(), maps function names onto math primitives,
// substitutes pi and e, and inserts multiplication at implicit-multiplication
// boundaries ("2x", ")(", ")x", "x(").
//
// Compiled functions evaluate defensively: any non-finite intermediate or
// final value yields "undefined at x" so discontinuities render as path
// breaks instead of errors.
package graph

import (
	"math"
	"strconv"
	"strings"
)

// Func evaluates the compiled expression at x. ok is false where the
// expression is undefined.
type Func func(x float64) (float64, bool)

// Plot is a compiled graphable expression.
type Plot struct {
	// Expression is the normalized right-hand side, suitable for display.
	Expression string
	// Eval computes y for a given x.
	Eval Func
}

// Point is a sampled plot coordinate. OK is false where y is undefined.
type Point struct {
	X, Y float64
	OK   bool
}

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"ln":   math.Log,
	"log":  math.Log10,
	"exp":  math.Exp,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Candidate reports whether text looks like a graphable expression: it must
// contain a standalone x token and show intent beyond a bare variable — an
// explicit y=/f(x)= prefix, an operator, a known function name, or implicit
// multiplication against a digit.
func Candidate(text string) bool {
	body, hadPrefix := stripPrefix(text)
	toks, info, ok := scan(body)
	if !ok {
		return false
	}

	hasX := false
	for _, t := range toks {
		if t.kind == gtIdent && t.text == "x" {
			hasX = true
			break
		}
	}
	if !hasX {
		return false
	}

	return hadPrefix || info.hasOperator || info.hasFunction || info.digitAdjacentX
}

// Compile builds an evaluable function from text. It returns false for
// anything that does not parse; malformed math is normal while typing.
func Compile(text string) (*Plot, bool) {
	body, _ := stripPrefix(text)
	toks, _, ok := scan(body)
	if !ok || len(toks) == 0 {
		return nil, false
	}

	p := &gparser{toks: toks}
	fn, ok := p.parseExpr()
	if !ok || p.pos != len(p.toks) {
		return nil, false
	}

	eval := func(x float64) (float64, bool) {
		v, ok := fn(x)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}

	return &Plot{Expression: render(toks), Eval: eval}, true
}

// Sample evaluates the plot at n evenly spaced points across [xmin, xmax].
func (p *Plot) Sample(xmin, xmax float64, n int) []Point {
	if n < 2 || xmax <= xmin {
		return nil
	}
	step := (xmax - xmin) / float64(n-1)
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		x := xmin + float64(i)*step
		y, ok := p.Eval(x)
		points[i] = Point{X: x, Y: y, OK: ok}
	}
	return points
}

func stripPrefix(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, prefix := range []string{"y=", "f(x)="} {
		if strings.HasPrefix(strings.ReplaceAll(s, " ", ""), prefix) {
			idx := strings.Index(s, "=")
			return strings.TrimSpace(s[idx+1:]), true
		}
	}
	return s, false
}

type gtokenKind int

const (
	gtNum gtokenKind = iota
	gtIdent
	gtOp
	gtLParen
	gtRParen
)

type gtoken struct {
	kind gtokenKind
	text string
	val  float64
	op   byte
}

type scanInfo struct {
	hasOperator    bool
	hasFunction    bool
	digitAdjacentX bool
}

// scan tokenizes, unwraps absolute-value bars, and inserts implicit
// multiplication operators.
func scan(s string) ([]gtoken, scanInfo, bool) {
	var info scanInfo
	var toks []gtoken

	// Absolute-value bars become abs( ... ). A bar opens when it follows
	// nothing, an operator, or an opening paren.
	barDepth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '|':
			opens := true
			if len(toks) > 0 {
				last := toks[len(toks)-1]
				if last.kind == gtNum || last.kind == gtRParen ||
					(last.kind == gtIdent && functions[last.text] == nil) {
					opens = false
				}
			}
			if opens {
				toks = append(toks, gtoken{kind: gtIdent, text: "abs"}, gtoken{kind: gtLParen})
				barDepth++
			} else {
				if barDepth == 0 {
					return nil, info, false
				}
				toks = append(toks, gtoken{kind: gtRParen})
				barDepth--
			}
			i++
		case c == '(':
			toks = append(toks, gtoken{kind: gtLParen})
			i++
		case c == ')':
			toks = append(toks, gtoken{kind: gtRParen})
			i++
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			if c != '-' || !unaryPosition(toks) {
				info.hasOperator = true
			}
			toks = append(toks, gtoken{kind: gtOp, op: c})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
				i++
			}
			val, err := strconv.ParseFloat(s[start:i], 64)
			if err != nil {
				return nil, info, false
			}
			toks = append(toks, gtoken{kind: gtNum, val: val})
		case c >= 'a' && c <= 'z':
			start := i
			for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
				i++
			}
			name := s[start:i]
			if functions[name] != nil {
				info.hasFunction = true
			} else if name != "x" {
				if _, known := constants[name]; !known {
					return nil, info, false
				}
			}
			toks = append(toks, gtoken{kind: gtIdent, text: name})
		default:
			return nil, info, false
		}
	}
	if barDepth != 0 {
		return nil, info, false
	}

	toks = insertImplicitMult(toks, &info)
	return toks, info, true
}

func unaryPosition(toks []gtoken) bool {
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	return last.kind == gtOp || last.kind == gtLParen
}

// insertImplicitMult places explicit * tokens at every implicit
// multiplication boundary: 2x, 2(, )(, )x, x(, pi x, and so on.
func insertImplicitMult(toks []gtoken, info *scanInfo) []gtoken {
	out := make([]gtoken, 0, len(toks))
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			if implicitBoundary(prev, t) {
				out = append(out, gtoken{kind: gtOp, op: '*'})
				if prev.kind == gtNum && t.kind == gtIdent && t.text == "x" {
					info.digitAdjacentX = true
				}
			}
		}
		out = append(out, t)
	}
	return out
}

func implicitBoundary(prev, next gtoken) bool {
	prevValue := prev.kind == gtNum || prev.kind == gtRParen ||
		(prev.kind == gtIdent && functions[prev.text] == nil)
	if !prevValue {
		return false
	}
	switch next.kind {
	case gtNum:
		return prev.kind != gtNum
	case gtLParen:
		return true
	case gtIdent:
		return true
	}
	return false
}

// render reconstructs a display string from the normalized token stream.
func render(toks []gtoken) string {
	var b strings.Builder
	for _, t := range toks {
		switch t.kind {
		case gtNum:
			b.WriteString(strconv.FormatFloat(t.val, 'g', -1, 64))
		case gtIdent:
			b.WriteString(t.text)
		case gtOp:
			b.WriteByte(t.op)
		case gtLParen:
			b.WriteByte('(')
		case gtRParen:
			b.WriteByte(')')
		}
	}
	return b.String()
}

type gparser struct {
	toks []gtoken
	pos  int
}

func (p *gparser) peek() (gtoken, bool) {
	if p.pos < len(p.toks) {
		return p.toks[p.pos], true
	}
	return gtoken{}, false
}

func (p *gparser) parseExpr() (Func, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	for {
		t, exists := p.peek()
		if !exists || t.kind != gtOp || (t.op != '+' && t.op != '-') {
			return left, true
		}
		p.pos++
		right, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		l, r, op := left, right, t.op
		left = func(x float64) (float64, bool) {
			a, ok := l(x)
			if !ok {
				return 0, false
			}
			b, ok := r(x)
			if !ok {
				return 0, false
			}
			if op == '+' {
				return a + b, true
			}
			return a - b, true
		}
	}
}

func (p *gparser) parseTerm() (Func, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for {
		t, exists := p.peek()
		if !exists || t.kind != gtOp || (t.op != '*' && t.op != '/') {
			return left, true
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		l, r, op := left, right, t.op
		left = func(x float64) (float64, bool) {
			a, ok := l(x)
			if !ok {
				return 0, false
			}
			b, ok := r(x)
			if !ok {
				return 0, false
			}
			if op == '/' {
				if b == 0 {
					return 0, false
				}
				return a / b, true
			}
			return a * b, true
		}
	}
}

func (p *gparser) parseFactor() (Func, bool) {
	base, ok := p.parseBase()
	if !ok {
		return nil, false
	}
	t, exists := p.peek()
	if exists && t.kind == gtOp && t.op == '^' {
		p.pos++
		exp, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		b, e := base, exp
		return func(x float64) (float64, bool) {
			a, ok := b(x)
			if !ok {
				return 0, false
			}
			n, ok := e(x)
			if !ok {
				return 0, false
			}
			v := math.Pow(a, n)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, false
			}
			return v, true
		}, true
	}
	return base, true
}

func (p *gparser) parseBase() (Func, bool) {
	t, exists := p.peek()
	if !exists {
		return nil, false
	}

	switch {
	case t.kind == gtOp && t.op == '-':
		p.pos++
		inner, ok := p.parseBase()
		if !ok {
			return nil, false
		}
		return func(x float64) (float64, bool) {
			v, ok := inner(x)
			if !ok {
				return 0, false
			}
			return -v, true
		}, true

	case t.kind == gtNum:
		p.pos++
		v := t.val
		return func(float64) (float64, bool) { return v, true }, true

	case t.kind == gtIdent:
		name := t.text
		if fn := functions[name]; fn != nil {
			p.pos++
			open, exists := p.peek()
			if !exists || open.kind != gtLParen {
				return nil, false
			}
			p.pos++
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			closeTok, exists := p.peek()
			if !exists || closeTok.kind != gtRParen {
				return nil, false
			}
			p.pos++
			return func(x float64) (float64, bool) {
				v, ok := arg(x)
				if !ok {
					return 0, false
				}
				out := fn(v)
				if math.IsNaN(out) || math.IsInf(out, 0) {
					return 0, false
				}
				return out, true
			}, true
		}
		if c, known := constants[name]; known {
			p.pos++
			return func(float64) (float64, bool) { return c, true }, true
		}
		if name == "x" {
			p.pos++
			return func(x float64) (float64, bool) { return x, true }, true
		}
		return nil, false

	case t.kind == gtLParen:
		p.pos++
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closeTok, exists := p.peek()
		if !exists || closeTok.kind != gtRParen {
			return nil, false
		}
		p.pos++
		return inner, true
	}

	return nil, false
}
