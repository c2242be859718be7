package calc

import (
	"errors"
	"math"
)

// The three failure kinds. They are converted uniformly into the latched
// error state, so none of them is visible to callers of Calculator.
var (
	errDivideByZero  = errors.New("division by zero")
	errInvalidDomain = errors.New("argument outside domain")
	errMalformed     = errors.New("malformed expression")
)

// epsilon is the machine epsilon for float64. Denominators at or below this
// magnitude count as zero.
const epsilon = 2.220446049250313e-16

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
	opRoot
)

type binOp int

func (op binOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "^"
	case opRoot:
		return "√"
	default:
		panic("unknown op")
	}
}

// key gives the input key that selects the operator.
func (op binOp) key() Key {
	switch op {
	case opAdd:
		return KeyAdd
	case opSub:
		return KeySub
	case opMul:
		return KeyMul
	case opDiv:
		return KeyDiv
	case opPow:
		return KeyPow
	case opRoot:
		return KeyRoot
	default:
		panic("unknown op")
	}
}

// apply computes the operation.
func (op binOp) apply(x, y float64) (float64, error) {
	switch op {
	case opAdd:
		return x + y, nil
	case opSub:
		return x - y, nil
	case opMul:
		return x * y, nil
	case opDiv:
		if math.Abs(y) <= epsilon {
			return 0, errDivideByZero
		}
		return x / y, nil
	case opPow:
		return math.Pow(x, y), nil
	case opRoot:
		return root(x, y)
	default:
		panic("unknown op")
	}
}

// root computes the x-th root of y.
func root(x, y float64) (float64, error) {
	if math.Abs(x) <= epsilon {
		return 0, errDivideByZero
	}
	if x < 0 && math.Abs(math.Mod(x, 2)) <= epsilon {
		return 0, errInvalidDomain
	}
	if y < 0 && x == math.Trunc(x) && math.Abs(math.Mod(x, 2)) == 1 {
		// Odd integer roots of negative values have a real result.
		return -math.Pow(-y, 1/x), nil
	}
	return math.Pow(y, 1/x), nil
}

const (
	fnReciprocal unaryOp = iota
	fnSquare
	fnCube
	fnSqrt
	fnCbrt
	fnFactorial
	fnExp10
	fnExpE
	fnLn
	fnLog10
	fnSin
	fnCos
	fnTan
	fnAsin
	fnAcos
	fnAtan
	fnSinh
	fnCosh
	fnTanh
	fnAsinh
	fnAcosh
	fnAtanh
	fnNegate
	fnPercent
)

type unaryOp int

func (fn unaryOp) String() string {
	switch fn {
	case fnReciprocal:
		return "1/x"
	case fnSquare:
		return "x²"
	case fnCube:
		return "x³"
	case fnSqrt:
		return "√x"
	case fnCbrt:
		return "³√x"
	case fnFactorial:
		return "!"
	case fnExp10:
		return "10^x"
	case fnExpE:
		return "e^x"
	case fnLn:
		return "ln"
	case fnLog10:
		return "log10"
	case fnSin:
		return "sin"
	case fnCos:
		return "cos"
	case fnTan:
		return "tan"
	case fnAsin:
		return "asin"
	case fnAcos:
		return "acos"
	case fnAtan:
		return "atan"
	case fnSinh:
		return "sinh"
	case fnCosh:
		return "cosh"
	case fnTanh:
		return "tanh"
	case fnAsinh:
		return "asinh"
	case fnAcosh:
		return "acosh"
	case fnAtanh:
		return "atanh"
	case fnNegate:
		return "±"
	case fnPercent:
		return "%"
	default:
		panic("unknown function")
	}
}

// apply computes the function. Trigonometric functions convert through the
// given angle unit; hyperbolic functions are always radian-equivalent.
func (fn unaryOp) apply(v float64, unit AngleUnit) (float64, error) {
	switch fn {
	case fnReciprocal:
		if math.Abs(v) <= epsilon {
			return 0, errDivideByZero
		}
		return 1 / v, nil
	case fnSquare:
		return v * v, nil
	case fnCube:
		return v * v * v, nil
	case fnSqrt:
		if v < 0 {
			return 0, errInvalidDomain
		}
		return math.Sqrt(v), nil
	case fnCbrt:
		return math.Cbrt(v), nil
	case fnFactorial:
		return factorial(v)
	case fnExp10:
		return math.Pow(10, v), nil
	case fnExpE:
		return math.Exp(v), nil
	case fnLn:
		if v <= 0 {
			return 0, errInvalidDomain
		}
		return math.Log(v), nil
	case fnLog10:
		if v <= 0 {
			return 0, errInvalidDomain
		}
		return math.Log10(v), nil
	case fnSin:
		return math.Sin(unit.toRadians(v)), nil
	case fnCos:
		return math.Cos(unit.toRadians(v)), nil
	case fnTan:
		return math.Tan(unit.toRadians(v)), nil
	case fnAsin:
		if v < -1 || v > 1 {
			return 0, errInvalidDomain
		}
		return unit.fromRadians(math.Asin(v)), nil
	case fnAcos:
		if v < -1 || v > 1 {
			return 0, errInvalidDomain
		}
		return unit.fromRadians(math.Acos(v)), nil
	case fnAtan:
		return unit.fromRadians(math.Atan(v)), nil
	case fnSinh:
		return math.Sinh(v), nil
	case fnCosh:
		return math.Cosh(v), nil
	case fnTanh:
		return math.Tanh(v), nil
	case fnAsinh:
		return math.Asinh(v), nil
	case fnAcosh:
		if v < 1 {
			return 0, errInvalidDomain
		}
		return math.Acosh(v), nil
	case fnAtanh:
		if v <= -1 || v >= 1 {
			return 0, errInvalidDomain
		}
		return math.Atanh(v), nil
	case fnNegate:
		return -v, nil
	case fnPercent:
		return v / 100, nil
	default:
		panic("unknown function")
	}
}

// factorial rejects negative, fractional and overflowing (> 170) arguments.
func factorial(v float64) (float64, error) {
	if v < 0 || v != math.Trunc(v) || v > 170 {
		return 0, errInvalidDomain
	}
	r := 1.0
	for i := 2.0; i <= v; i++ {
		r *= i
	}
	return r, nil
}
