package calc

const (
	tokNumber tokenKind = iota
	tokBinary
	tokUnary
	tokLParen
	tokRParen
)

type tokenKind int

// Token is one lexical unit of a scientific-mode expression: a number, an
// operator, or a parenthesis. Tokens are read-only outside this package.
type Token struct {
	kind tokenKind
	num  float64
	bin  binOp
	fn   unaryOp
}

func numberToken(v float64) Token { return Token{kind: tokNumber, num: v} }
func binaryToken(op binOp) Token  { return Token{kind: tokBinary, bin: op} }
func unaryToken(fn unaryOp) Token { return Token{kind: tokUnary, fn: fn} }

var (
	lparenToken = Token{kind: tokLParen}
	rparenToken = Token{kind: tokRParen}
)

func (t Token) String() string {
	switch t.kind {
	case tokNumber:
		return formatRaw(t.num)
	case tokBinary:
		return t.bin.String()
	case tokUnary:
		return t.fn.String()
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	default:
		panic("unknown token kind")
	}
}
