package calc

// unaryPrec sits above every binary precedence so that postfix unary
// functions bind tighter than power and root.
const unaryPrec = 4

func (op binOp) precedence() int {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv:
		return 2
	default: // opPow, opRoot
		return 3
	}
}

func (op binOp) rightAssoc() bool {
	return op == opPow || op == opRoot
}

func precedence(t Token) int {
	switch t.kind {
	case tokUnary:
		return unaryPrec
	case tokBinary:
		return t.bin.precedence()
	default:
		return 0
	}
}

// toPostfix converts an infix token sequence to postfix order using the
// shunting-yard algorithm. Unary functions follow their operand in the
// input, so they go straight through the operator stack at the highest
// precedence.
func toPostfix(tokens []Token) ([]Token, error) {
	var out, stack []Token
	for _, t := range tokens {
		switch t.kind {
		case tokNumber:
			out = append(out, t)

		case tokUnary:
			for len(stack) > 0 && precedence(stack[len(stack)-1]) >= unaryPrec {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case tokBinary:
			p := t.bin.precedence()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokLParen {
					break
				}
				tp := precedence(top)
				if tp > p || (tp == p && !t.bin.rightAssoc()) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)

		case tokLParen:
			stack = append(stack, t)

		case tokRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokLParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, errMalformed
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokLParen {
			return nil, errMalformed
		}
		out = append(out, top)
	}
	return out, nil
}

// evalPostfix runs a postfix token sequence on a numeric stack. Any arity
// mismatch is a malformed expression; domain and arithmetic failures come
// from the operator tables.
func evalPostfix(tokens []Token, unit AngleUnit) (float64, error) {
	var stack []float64
	for _, t := range tokens {
		switch t.kind {
		case tokNumber:
			stack = append(stack, t.num)

		case tokUnary:
			if len(stack) < 1 {
				return 0, errMalformed
			}
			v, err := t.fn.apply(stack[len(stack)-1], unit)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = v

		case tokBinary:
			if len(stack) < 2 {
				return 0, errMalformed
			}
			y := stack[len(stack)-1]
			x := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			v, err := t.bin.apply(x, y)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = v

		default:
			return 0, errMalformed
		}
	}
	if len(stack) != 1 {
		return 0, errMalformed
	}
	return stack[0], nil
}

// commitEntry turns the pending operand into a number token.
func (c *Calculator) commitEntry() {
	if c.entering {
		c.value = parseEntry(c.entry)
		c.entry = ""
		c.entering = false
		c.staged = true
	}
	if c.staged {
		c.tokens = append(c.tokens, numberToken(c.value))
		c.staged = false
	}
}

// sciOp appends a binary operator to the expression. An operator typed
// directly after another operator replaces it.
func (c *Calculator) sciOp(op binOp) {
	c.commitEntry()
	n := len(c.tokens)
	switch {
	case n == 0:
		c.tokens = append(c.tokens, numberToken(c.value))
	case c.tokens[n-1].kind == tokBinary:
		c.tokens[n-1] = binaryToken(op)
		c.justEvaluated = false
		return
	case c.tokens[n-1].kind == tokLParen:
		c.tokens = append(c.tokens, numberToken(c.value))
	}
	c.tokens = append(c.tokens, binaryToken(op))
	c.justEvaluated = false
}

// sciUnary applies a unary function in scientific mode. When the operand is
// a plain number it is folded immediately, so the display updates on the
// key press. After a close-paren the function stays in the token list and
// is applied by the evaluator.
func (c *Calculator) sciUnary(fn unaryOp) {
	c.commitEntry()
	n := len(c.tokens)
	if n == 0 {
		c.tokens = append(c.tokens, numberToken(c.value))
		n = 1
	}
	switch c.tokens[n-1].kind {
	case tokNumber:
		r, err := fn.apply(c.tokens[n-1].num, c.angle)
		if err != nil {
			c.fail()
			return
		}
		c.tokens[n-1].num = r
		c.value = r
	case tokRParen, tokUnary:
		c.tokens = append(c.tokens, unaryToken(fn))
	default:
		r, err := fn.apply(c.value, c.angle)
		if err != nil {
			c.fail()
			return
		}
		c.tokens = append(c.tokens, numberToken(r))
		c.value = r
	}
	c.justEvaluated = false
}

// sciLParen opens a group. A number or closed group directly before the
// paren gets an implicit multiplication.
func (c *Calculator) sciLParen() {
	c.freshOperand()
	c.commitEntry()
	if n := len(c.tokens); n > 0 {
		switch c.tokens[n-1].kind {
		case tokNumber, tokRParen, tokUnary:
			c.tokens = append(c.tokens, binaryToken(opMul))
		}
	}
	c.tokens = append(c.tokens, lparenToken)
	c.openParens++
	c.justEvaluated = false
}

// sciRParen closes a group. The key is dropped when there is no open group
// or when closing would leave it empty or end on an operator.
func (c *Calculator) sciRParen() {
	if c.openParens == 0 {
		return
	}
	c.commitEntry()
	n := len(c.tokens)
	if n == 0 {
		return
	}
	switch c.tokens[n-1].kind {
	case tokLParen, tokBinary:
		return
	}
	c.tokens = append(c.tokens, rparenToken)
	c.openParens--
	c.justEvaluated = false
}

// sciEquals evaluates the expression. Open groups are closed implicitly and
// a trailing binary operator is dropped. On success the token list is
// replaced with the result so that further operators chain from it.
func (c *Calculator) sciEquals() {
	c.commitEntry()
	if len(c.tokens) == 0 {
		c.justEvaluated = true
		return
	}
	for ; c.openParens > 0; c.openParens-- {
		c.tokens = append(c.tokens, rparenToken)
	}
	if n := len(c.tokens); c.tokens[n-1].kind == tokBinary {
		c.tokens = c.tokens[:n-1]
	}

	rpn, err := toPostfix(c.tokens)
	if err != nil {
		c.fail()
		return
	}
	result, err := evalPostfix(rpn, c.angle)
	if err != nil {
		c.fail()
		return
	}
	c.value = result
	c.tokens = append(c.tokens[:0], numberToken(result))
	c.justEvaluated = true
}
