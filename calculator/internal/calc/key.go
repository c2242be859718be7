package calc

// Key input events. Key0..Key9 are contiguous so that a digit key can be
// derived as Key0 + Key(n).
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDecimal
	KeySign
	KeyPercent
	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyPow
	KeyRoot
	KeyEquals
	KeyClear // clear entry
	KeyAllClear
	KeyMemClear
	KeyMemAdd
	KeyMemSub
	KeyMemRecall
	KeyLParen
	KeyRParen
	KeyPi
	KeyRand
	KeyEE // scientific-notation exponent marker
	KeySecond
	KeyAngle // toggle between radians and degrees
	KeyReciprocal
	KeySquare
	KeyCube
	KeySqrt
	KeyCbrt
	KeyFactorial
	KeyExp10
	KeyExpE
	KeyLn
	KeyLog10
	KeySin
	KeyCos
	KeyTan
	KeyAsin
	KeyAcos
	KeyAtan
	KeySinh
	KeyCosh
	KeyTanh
	KeyAsinh
	KeyAcosh
	KeyAtanh
)

// Key is a discrete calculator input event.
type Key int

// isDigit reports whether the key is one of the digits 0-9.
func (k Key) isDigit() bool {
	return k >= Key0 && k <= Key9
}

// binary returns the binary operator selected by the key.
func (k Key) binary() (binOp, bool) {
	switch k {
	case KeyAdd:
		return opAdd, true
	case KeySub:
		return opSub, true
	case KeyMul:
		return opMul, true
	case KeyDiv:
		return opDiv, true
	case KeyPow:
		return opPow, true
	case KeyRoot:
		return opRoot, true
	}
	return 0, false
}

// unary returns the unary function selected by the key.
func (k Key) unary() (unaryOp, bool) {
	switch k {
	case KeyReciprocal:
		return fnReciprocal, true
	case KeySquare:
		return fnSquare, true
	case KeyCube:
		return fnCube, true
	case KeySqrt:
		return fnSqrt, true
	case KeyCbrt:
		return fnCbrt, true
	case KeyFactorial:
		return fnFactorial, true
	case KeyExp10:
		return fnExp10, true
	case KeyExpE:
		return fnExpE, true
	case KeyLn:
		return fnLn, true
	case KeyLog10:
		return fnLog10, true
	case KeySin:
		return fnSin, true
	case KeyCos:
		return fnCos, true
	case KeyTan:
		return fnTan, true
	case KeyAsin:
		return fnAsin, true
	case KeyAcos:
		return fnAcos, true
	case KeyAtan:
		return fnAtan, true
	case KeySinh:
		return fnSinh, true
	case KeyCosh:
		return fnCosh, true
	case KeyTanh:
		return fnTanh, true
	case KeyAsinh:
		return fnAsinh, true
	case KeyAcosh:
		return fnAcosh, true
	case KeyAtanh:
		return fnAtanh, true
	}
	return 0, false
}

// recovers reports whether the key is accepted while the error state is
// latched. Everything else is dropped until the error is cleared.
func (k Key) recovers() bool {
	if k.isDigit() {
		return true
	}
	switch k {
	case KeyAllClear, KeyClear, KeyDecimal, KeyPi, KeyRand, KeyMemRecall:
		return true
	}
	return false
}
