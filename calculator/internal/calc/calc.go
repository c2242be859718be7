// Package calc implements the calculator engine: a single state machine
// that interprets discrete key presses and produces the display text. It
// supports two interpretation strategies, the left-to-right accumulator of
// a basic calculator and a full infix expression evaluator, switchable at
// any time without losing the displayed value.
package calc

import (
	"math"
	"math/rand"
	"strings"
)

const (
	Radians AngleUnit = iota
	Degrees
)

// AngleUnit selects how trigonometric functions interpret their argument.
type AngleUnit int

func (u AngleUnit) String() string {
	if u == Degrees {
		return "Deg"
	}
	return "Rad"
}

func (u AngleUnit) toRadians(v float64) float64 {
	if u == Degrees {
		return v * math.Pi / 180
	}
	return v
}

func (u AngleUnit) fromRadians(v float64) float64 {
	if u == Degrees {
		return v * 180 / math.Pi
	}
	return v
}

// errorText is the literal display marker for the latched error state.
const errorText = "Error"

// Calculator is the engine. The zero value is ready to use: display "0",
// basic mode, radians, no memory. It is not safe for concurrent use; a
// host embedding it must serialize calls.
type Calculator struct {
	entry    string  // raw text of the value being typed
	entering bool    // composing entry rather than showing value
	staged   bool    // value was injected and awaits commit
	value    float64 // last committed value

	justEvaluated bool
	errored       bool

	memory    float64
	hasMemory bool

	angle      AngleUnit
	second     bool
	scientific bool

	// Basic mode.
	acc        float64
	hasAcc     bool
	pending    binOp
	hasPending bool
	repeatRHS  float64
	repeatOp   binOp
	hasRepeat  bool

	// Scientific mode.
	tokens     []Token
	openParens int
}

// Apply processes one input event. While the error state is latched, only
// clearing and value-injecting keys are accepted; those re-seed the entry
// from zero before they are handled.
func (c *Calculator) Apply(k Key) {
	if c.errored {
		if !k.recovers() {
			return
		}
		c.errored = false
		c.value = 0
	}

	if k.isDigit() {
		c.digit(byte('0' + k - Key0))
		return
	}
	if op, ok := k.binary(); ok {
		if c.scientific {
			c.sciOp(op)
		} else {
			c.basicOp(op)
		}
		return
	}
	if fn, ok := k.unary(); ok {
		if c.scientific {
			c.sciUnary(fn)
		} else {
			c.basicUnary(fn)
		}
		return
	}

	switch k {
	case KeyDecimal:
		c.decimal()
	case KeyEE:
		c.exponent()
	case KeySign:
		c.toggleSign()
	case KeyPercent:
		if c.scientific {
			c.sciUnary(fnPercent)
		} else {
			c.basicPercent()
		}
	case KeyEquals:
		if c.scientific {
			c.sciEquals()
		} else {
			c.basicEquals()
		}
	case KeyClear:
		c.clearEntry()
	case KeyAllClear:
		c.allClear()
	case KeyMemClear:
		c.memory = 0
		c.hasMemory = false
	case KeyMemAdd:
		c.memoryAdd(1)
	case KeyMemSub:
		c.memoryAdd(-1)
	case KeyMemRecall:
		c.inject(c.memory)
	case KeyLParen:
		if c.scientific {
			c.sciLParen()
		}
	case KeyRParen:
		if c.scientific {
			c.sciRParen()
		}
	case KeyPi:
		c.inject(math.Pi)
	case KeyRand:
		c.inject(rand.Float64())
	case KeySecond:
		c.second = !c.second
	case KeyAngle:
		if c.angle == Radians {
			c.angle = Degrees
		} else {
			c.angle = Radians
		}
	}
}

// SetScientificMode switches the input interpretation strategy. It is
// idempotent and never changes the committed value: enabling seeds the
// expression with that value, disabling discards all expression state.
func (c *Calculator) SetScientificMode(on bool) {
	if c.scientific == on {
		return
	}
	v := c.commitValue()
	c.scientific = on
	c.hasAcc = false
	c.hasPending = false
	c.hasRepeat = false
	c.openParens = 0
	if on {
		c.tokens = []Token{numberToken(v)}
		c.justEvaluated = true
	} else {
		c.tokens = nil
		c.justEvaluated = false
	}
}

// SetAngleUnit sets the unit for trigonometric functions.
func (c *Calculator) SetAngleUnit(u AngleUnit) {
	c.angle = u
}

// SetValue replaces the current operand, as if the value had been typed.
func (c *Calculator) SetValue(v float64) {
	c.errored = false
	c.inject(v)
}

// Text gives the current display output.
func (c *Calculator) Text() string {
	if c.errored {
		return errorText
	}
	if c.entering {
		return formatEntry(c.entry)
	}
	return formatValue(c.value)
}

// Memory returns the memory value and whether one is set.
func (c *Calculator) Memory() (float64, bool) {
	return c.memory, c.hasMemory
}

func (c *Calculator) Angle() AngleUnit { return c.angle }

func (c *Calculator) SecondActive() bool { return c.second }

func (c *Calculator) Scientific() bool { return c.scientific }

// Tokens returns a copy of the in-progress expression.
func (c *Calculator) Tokens() []Token {
	return append([]Token(nil), c.tokens...)
}

// CanClearEntry reports whether a clear-entry action is meaningful: an
// entry is in progress, an operation is pending, or an error is latched.
func (c *Calculator) CanClearEntry() bool {
	if c.errored || c.entering || c.staged || c.hasPending {
		return true
	}
	if c.scientific {
		return len(c.tokens) > 1 || c.openParens > 0
	}
	return false
}

// PendingKey returns the key of the operator awaiting its right-hand
// operand, for highlighting on a keypad.
func (c *Calculator) PendingKey() (Key, bool) {
	if c.errored {
		return 0, false
	}
	if !c.scientific {
		if c.hasPending {
			return c.pending.key(), true
		}
		return 0, false
	}
	if n := len(c.tokens); n > 0 && !c.entering && !c.staged && c.tokens[n-1].kind == tokBinary {
		return c.tokens[n-1].bin.key(), true
	}
	return 0, false
}

// digit appends a digit to the entry, starting a fresh entry after an
// evaluation or a committed value.
func (c *Calculator) digit(d byte) {
	c.freshOperand()
	if !c.entering {
		c.entry = ""
		c.entering = true
		c.staged = false
	}
	if c.entry == "0" || c.entry == "-0" {
		c.entry = strings.TrimSuffix(c.entry, "0")
	}
	c.entry += string(d)
}

func (c *Calculator) decimal() {
	c.freshOperand()
	if !c.entering {
		c.entry = "0."
		c.entering = true
		c.staged = false
		return
	}
	if strings.ContainsAny(c.entry, ".e") {
		return
	}
	c.entry += "."
}

// exponent starts exponent entry. On a committed value it reopens the
// entry from the value's raw form.
func (c *Calculator) exponent() {
	c.freshOperand()
	if !c.entering {
		c.entry = formatRaw(c.value)
		c.entering = true
		c.staged = false
	}
	if strings.ContainsRune(c.entry, 'e') {
		return
	}
	c.entry += "e"
}

// toggleSign flips the sign of the entry in place while typing, including
// the exponent sign during exponent entry. On a committed value it negates
// the value itself.
func (c *Calculator) toggleSign() {
	if c.entering {
		c.entry = flipEntrySign(c.entry)
		return
	}
	if c.scientific {
		c.sciUnary(fnNegate)
		return
	}
	c.value = -c.value
	c.staged = true
}

func flipEntrySign(entry string) string {
	if i := strings.IndexByte(entry, 'e'); i >= 0 {
		mant, exp := entry[:i+1], entry[i+1:]
		switch {
		case strings.HasPrefix(exp, "-"):
			return mant + exp[1:]
		case strings.HasPrefix(exp, "+"):
			return mant + "-" + exp[1:]
		default:
			return mant + "-" + exp
		}
	}
	if strings.HasPrefix(entry, "-") {
		return entry[1:]
	}
	return "-" + entry
}

// inject stages a value as the current operand.
func (c *Calculator) inject(v float64) {
	c.freshOperand()
	c.entry = ""
	c.entering = false
	c.staged = true
	c.value = v
}

// freshOperand starts a new operand after an evaluation. In scientific
// mode the finished expression is discarded.
func (c *Calculator) freshOperand() {
	if !c.justEvaluated {
		return
	}
	if c.scientific {
		c.tokens = nil
		c.openParens = 0
	}
	c.justEvaluated = false
}

// commitValue finalizes the in-progress entry into the committed value.
func (c *Calculator) commitValue() float64 {
	if c.entering {
		c.value = parseEntry(c.entry)
		c.entry = ""
		c.entering = false
	}
	c.staged = false
	return c.value
}

func (c *Calculator) memoryAdd(sign float64) {
	v := c.commitValue()
	c.memory += sign * v
	c.hasMemory = true
}

// clearEntry resets the current entry to zero, keeping any pending
// operation so the operand can be retyped.
func (c *Calculator) clearEntry() {
	c.entry = ""
	c.entering = false
	c.staged = false
	c.value = 0
	c.justEvaluated = false
}

// allClear is the soft reset: everything except memory, angle unit and the
// mode flags goes back to the default state.
func (c *Calculator) allClear() {
	c.errored = false
	c.entry = ""
	c.entering = false
	c.staged = false
	c.value = 0
	c.justEvaluated = false
	c.acc = 0
	c.hasAcc = false
	c.hasPending = false
	c.repeatRHS = 0
	c.hasRepeat = false
	c.tokens = nil
	c.openParens = 0
}

// fail latches the error state. Pending evaluation state is discarded so
// that recovery continues from a clean slate.
func (c *Calculator) fail() {
	c.errored = true
	c.entry = ""
	c.entering = false
	c.staged = false
	c.value = 0
	c.justEvaluated = false
	c.hasAcc = false
	c.hasPending = false
	c.hasRepeat = false
	c.tokens = nil
	c.openParens = 0
}
