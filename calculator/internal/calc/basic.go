package calc

// The basic evaluator is the single-pending-operator model of a simple
// four-function calculator: no precedence, strict left-to-right folding,
// and repeat-last-operation on bare equals.

// basicOp selects a binary operator. A pending operator folds immediately
// when an operand has been entered since it was selected, which gives
// left-to-right chained evaluation without pressing equals.
func (c *Calculator) basicOp(op binOp) {
	typed := c.entering || c.staged
	v := c.commitValue()
	switch {
	case !c.hasAcc:
		c.acc = v
		c.hasAcc = true
	case c.hasPending && typed:
		r, err := c.pending.apply(c.acc, v)
		if err != nil {
			c.fail()
			return
		}
		c.acc = r
	}
	c.value = c.acc
	c.pending = op
	c.hasPending = true
	c.justEvaluated = false
}

// basicEquals computes the pending operation. The right-hand operand and
// the operator are remembered so that further bare equals presses repeat
// the operation.
func (c *Calculator) basicEquals() {
	v := c.commitValue()
	switch {
	case c.hasPending:
		r, err := c.pending.apply(c.acc, v)
		if err != nil {
			c.fail()
			return
		}
		c.repeatOp = c.pending
		c.repeatRHS = v
		c.hasRepeat = true
		c.hasPending = false
		c.hasAcc = false
		c.value = r
	case c.hasRepeat:
		r, err := c.repeatOp.apply(v, c.repeatRHS)
		if err != nil {
			c.fail()
			return
		}
		c.value = r
	}
	c.justEvaluated = true
}

// basicPercent computes a percentage. Inside an active binary operation the
// entered value becomes a percentage of the accumulator; standalone it
// simply divides by 100.
func (c *Calculator) basicPercent() {
	v := c.commitValue()
	if c.hasPending && c.hasAcc {
		c.value = c.acc * v / 100
	} else {
		c.value = v / 100
	}
	c.staged = true
}

// basicUnary applies a unary function directly to the current operand.
func (c *Calculator) basicUnary(fn unaryOp) {
	v := c.commitValue()
	r, err := fn.apply(v, c.angle)
	if err != nil {
		c.fail()
		return
	}
	c.value = r
	c.staged = true
	c.justEvaluated = false
}
