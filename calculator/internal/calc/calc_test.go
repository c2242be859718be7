package calc

import "testing"

// press applies a sequence of keys.
func press(c *Calculator, keys ...Key) {
	for _, k := range keys {
		c.Apply(k)
	}
}

// enter types a numeral, digit by digit.
func enter(c *Calculator, s string) {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			c.Apply(Key0 + Key(r-'0'))
		case r == '.':
			c.Apply(KeyDecimal)
		}
	}
}

func check(t *testing.T, c *Calculator, text string) {
	t.Helper()
	if c.Text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", c.Text(), text, *c)
	}
}

func TestDefaultState(t *testing.T) {
	var c Calculator
	check(t, &c, "0")
	if c.Scientific() || c.SecondActive() {
		t.Fatal("mode flags set on zero value")
	}
	if c.Angle() != Radians {
		t.Fatalf("default angle unit is %v", c.Angle())
	}
	if _, ok := c.Memory(); ok {
		t.Fatal("memory set on zero value")
	}
}

func TestEntryEcho(t *testing.T) {
	var c Calculator
	enter(&c, "1234567.25")
	check(t, &c, "1,234,567.25")
	c.Apply(KeyEquals)
	check(t, &c, "1,234,567.25")
}

func TestModeSwitchPreservesValue(t *testing.T) {
	var c Calculator
	enter(&c, "123")
	c.SetScientificMode(true)
	check(t, &c, "123")
	press(&c, KeyAdd, Key1, KeyEquals)
	check(t, &c, "124")
	c.SetScientificMode(false)
	check(t, &c, "124")
}

func TestModeSwitchIdempotent(t *testing.T) {
	var c Calculator
	c.SetScientificMode(true)
	press(&c, Key2, KeyAdd)
	c.SetScientificMode(true) // no-op, expression must survive
	press(&c, Key3, KeyEquals)
	check(t, &c, "5")
}

func TestModeSwitchDropsPendingOperator(t *testing.T) {
	var c Calculator
	press(&c, Key7, KeyAdd)
	c.SetScientificMode(true)
	c.SetScientificMode(false)
	press(&c, Key2, KeyEquals)
	check(t, &c, "2")
}

func TestMemoryRoundTrip(t *testing.T) {
	var c Calculator
	press(&c, Key9, KeyMemAdd, KeyAllClear, KeyMemRecall)
	check(t, &c, "9")
	press(&c, KeyMemSub, KeyMemRecall)
	check(t, &c, "0")
	press(&c, KeyMemClear, KeyAllClear, KeyMemRecall)
	check(t, &c, "0")
	if _, ok := c.Memory(); ok {
		t.Fatal("memory still set after clear")
	}
}

func TestMemorySurvivesAllClear(t *testing.T) {
	var c Calculator
	press(&c, Key5, KeyMemAdd, Key3, KeyMemAdd, KeyAllClear)
	if v, ok := c.Memory(); !ok || v != 8 {
		t.Fatalf("memory = %v, %v, want 8, true", v, ok)
	}
}

func TestErrorGating(t *testing.T) {
	var c Calculator
	press(&c, Key1, KeyDiv, Key0, KeyEquals)
	check(t, &c, "Error")
	// Everything except clearing and value entry is dropped.
	press(&c, KeyAdd, KeyEquals, KeySqrt, KeyMemAdd, KeySign)
	check(t, &c, "Error")
	press(&c, KeyAllClear)
	check(t, &c, "0")
}

func TestErrorRecoveryByDigit(t *testing.T) {
	var c Calculator
	press(&c, Key1, KeyDiv, Key0, KeyEquals)
	check(t, &c, "Error")
	press(&c, Key5)
	check(t, &c, "5")
	press(&c, KeyAdd, Key2, KeyEquals)
	check(t, &c, "7")
}

func TestErrorRecoveryByClearEntry(t *testing.T) {
	var c Calculator
	press(&c, Key1, KeyDiv, Key0, KeyEquals, KeyClear)
	check(t, &c, "0")
}

func TestErrorRecoveryByRecall(t *testing.T) {
	var c Calculator
	press(&c, Key6, KeyMemAdd, Key1, KeyDiv, Key0, KeyEquals)
	check(t, &c, "Error")
	press(&c, KeyMemRecall)
	check(t, &c, "6")
}

func TestAngleToggle(t *testing.T) {
	var c Calculator
	press(&c, KeyAngle)
	if c.Angle() != Degrees {
		t.Fatalf("angle = %v after toggle", c.Angle())
	}
	press(&c, KeyAngle)
	if c.Angle() != Radians {
		t.Fatalf("angle = %v after second toggle", c.Angle())
	}
	c.SetAngleUnit(Degrees)
	if c.Angle() != Degrees {
		t.Fatalf("angle = %v after explicit set", c.Angle())
	}
}

func TestSecondToggle(t *testing.T) {
	var c Calculator
	press(&c, KeySecond)
	if !c.SecondActive() {
		t.Fatal("second labels not active")
	}
	// The toggle is an input-mapping concern and must not touch the value.
	enter(&c, "42")
	press(&c, KeySecond)
	check(t, &c, "42")
}

func TestRandomRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		var c Calculator
		press(&c, KeyRand, KeyEquals)
		if c.value < 0 || c.value >= 1 {
			t.Fatalf("random value %v outside [0, 1)", c.value)
		}
	}
}

func TestPiConstant(t *testing.T) {
	var c Calculator
	press(&c, KeyPi)
	check(t, &c, "3.1415926536")
}

func TestCanClearEntry(t *testing.T) {
	var c Calculator
	if c.CanClearEntry() {
		t.Fatal("clear entry meaningful on default state")
	}
	press(&c, Key4)
	if !c.CanClearEntry() {
		t.Fatal("clear entry not meaningful while entering")
	}
	press(&c, KeyAdd)
	if !c.CanClearEntry() {
		t.Fatal("clear entry not meaningful with pending operator")
	}
	press(&c, KeyAllClear)
	if c.CanClearEntry() {
		t.Fatal("clear entry meaningful after all-clear")
	}
	press(&c, Key1, KeyDiv, Key0, KeyEquals)
	if !c.CanClearEntry() {
		t.Fatal("clear entry not meaningful in error state")
	}
}

func TestClearEntryKeepsPendingOperator(t *testing.T) {
	var c Calculator
	press(&c, Key2, KeyAdd, Key3, KeyClear, Key4, KeyEquals)
	check(t, &c, "6")
}

func TestSetValue(t *testing.T) {
	var c Calculator
	c.SetValue(6.5)
	check(t, &c, "6.5")
	press(&c, KeyAdd, Key1, KeyEquals)
	check(t, &c, "7.5")
}

func TestPendingKey(t *testing.T) {
	var c Calculator
	if _, ok := c.PendingKey(); ok {
		t.Fatal("pending key on default state")
	}
	press(&c, Key2, KeyMul)
	if k, ok := c.PendingKey(); !ok || k != KeyMul {
		t.Fatalf("pending key = %v, %v, want KeyMul", k, ok)
	}
	c.SetScientificMode(true)
	press(&c, Key3, KeyPow)
	if k, ok := c.PendingKey(); !ok || k != KeyPow {
		t.Fatalf("pending key = %v, %v, want KeyPow", k, ok)
	}
	press(&c, Key2)
	if _, ok := c.PendingKey(); ok {
		t.Fatal("pending key while entering right-hand operand")
	}
}
