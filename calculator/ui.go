package main

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Aryamirsepasi/The-OldOS-Project/calculator/internal/calc"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	expressionColor  = color.NRGBA{170, 170, 170, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator. A portrait-shaped window
// shows the basic keypad; a wide window shows the scientific one. The
// window shape drives the engine's mode, so rotating never loses the
// displayed value.
type calcUI struct {
	calc  calc.Calculator
	theme *material.Theme

	basic [5][4]*button
	sci   [5][10]*button

	cornerRadius int
	gridSpacing  int
}

// button is a clickable key. Buttons with an alternate send their alternate
// key while the 2nd toggle is active.
type button struct {
	key     calc.Key
	text    string
	altKey  calc.Key
	altText string

	color   color.NRGBA
	clicker widget.Clickable
}

func newUI(theme *material.Theme) *calcUI {
	ui := &calcUI{theme: theme}
	ui.basic = [5][4]*button{
		{ui.special("AC", calc.KeyAllClear), ui.special("±", calc.KeySign), ui.special("%", calc.KeyPercent), ui.op("÷", calc.KeyDiv)},
		{ui.digit(7), ui.digit(8), ui.digit(9), ui.op("×", calc.KeyMul)},
		{ui.digit(4), ui.digit(5), ui.digit(6), ui.op("−", calc.KeySub)},
		{ui.digit(1), ui.digit(2), ui.digit(3), ui.op("+", calc.KeyAdd)},
		{ui.digit(0), nil, ui.special(".", calc.KeyDecimal), ui.op("=", calc.KeyEquals)},
	}

	extra := [5][6]*button{
		{ui.special("(", calc.KeyLParen), ui.special(")", calc.KeyRParen), ui.special("mc", calc.KeyMemClear), ui.special("m+", calc.KeyMemAdd), ui.special("m−", calc.KeyMemSub), ui.special("mr", calc.KeyMemRecall)},
		{ui.special("2nd", calc.KeySecond), ui.special("x²", calc.KeySquare), ui.special("x³", calc.KeyCube), ui.op("xʸ", calc.KeyPow), ui.special("eˣ", calc.KeyExpE), ui.special("10ˣ", calc.KeyExp10)},
		{ui.special("1/x", calc.KeyReciprocal), ui.special("√x", calc.KeySqrt), ui.special("³√x", calc.KeyCbrt), ui.op("ʸ√x", calc.KeyRoot), ui.special("ln", calc.KeyLn), ui.special("log₁₀", calc.KeyLog10)},
		{ui.special("x!", calc.KeyFactorial), ui.alt("sin", calc.KeySin, "sin⁻¹", calc.KeyAsin), ui.alt("cos", calc.KeyCos, "cos⁻¹", calc.KeyAcos), ui.alt("tan", calc.KeyTan, "tan⁻¹", calc.KeyAtan), ui.special("π", calc.KeyPi), ui.special("EE", calc.KeyEE)},
		{ui.special("Rad", calc.KeyAngle), ui.alt("sinh", calc.KeySinh, "sinh⁻¹", calc.KeyAsinh), ui.alt("cosh", calc.KeyCosh, "cosh⁻¹", calc.KeyAcosh), ui.alt("tanh", calc.KeyTanh, "tanh⁻¹", calc.KeyAtanh), ui.special("Rand", calc.KeyRand), nil},
	}
	for row := range ui.sci {
		for col := 0; col < 6; col++ {
			ui.sci[row][col] = extra[row][col]
		}
		// The scientific pad keeps the basic keys in its right half.
		for col := 0; col < 4; col++ {
			ui.sci[row][col+6] = ui.basic[row][col]
		}
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(n int) *button {
	return &button{key: calc.Key0 + calc.Key(n), text: strconv.Itoa(n), color: digitColor}
}

// op creates an operation button.
func (ui *calcUI) op(text string, k calc.Key) *button {
	return &button{key: k, text: text, color: opColor}
}

// special creates a function button.
func (ui *calcUI) special(text string, k calc.Key) *button {
	return &button{key: k, text: text, color: specialColor}
}

// alt creates a function button with a 2nd-toggle alternate.
func (ui *calcUI) alt(text string, k calc.Key, altText string, altKey calc.Key) *button {
	return &button{key: k, text: text, altKey: altKey, altText: altText, color: specialColor}
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	wide := gtx.Constraints.Max.X > gtx.Constraints.Max.Y
	ui.calc.SetScientificMode(wide)

	// Adapt design for screen size.
	base := gtx.Constraints.Max.X
	if wide {
		base = gtx.Constraints.Max.Y
	}
	scaleFactor := float32(base) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Rigid(ui.layoutExpression),
			layout.Flexed(1, ui.layoutResultText),
		)
	})
}

// layoutExpression shows the in-progress scientific expression.
func (ui *calcUI) layoutExpression(gtx layout.Context) layout.Dimensions {
	if !ui.calc.Scientific() {
		return layout.Dimensions{}
	}
	toks := ui.calc.Tokens()
	if len(toks) < 2 {
		return layout.Dimensions{}
	}
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	l := material.Label(ui.theme, ui.theme.TextSize, strings.Join(parts, " "))
	l.Color = expressionColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.calc.Text())
	l.Color = resultColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	if ui.calc.Scientific() {
		g := grid{rows: len(ui.sci), cols: len(ui.sci[0]), spacing: ui.gridSpacing}
		return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
			if b := ui.sci[row][col]; b != nil {
				return ui.layoutButton(gtx, b)
			}
			return layout.Dimensions{}
		})
	}
	g := grid{rows: len(ui.basic), cols: len(ui.basic[0]), spacing: ui.gridSpacing}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.basic[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked() {
		ui.calc.Apply(ui.buttonKey(b))
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, ui.buttonLabel(b))
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if k, ok := ui.calc.PendingKey(); ok && k == b.key {
			style.Background = activeOpColor
		}
		if b.key == calc.KeySecond && ui.calc.SecondActive() {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// buttonKey resolves the key a press sends, honoring the 2nd toggle and
// the AC/C dual role.
func (ui *calcUI) buttonKey(b *button) calc.Key {
	k := b.key
	if b.altText != "" && ui.calc.SecondActive() {
		k = b.altKey
	}
	if k == calc.KeyAllClear && ui.calc.CanClearEntry() {
		k = calc.KeyClear
	}
	return k
}

// buttonLabel resolves the current label of a button.
func (ui *calcUI) buttonLabel(b *button) string {
	switch b.key {
	case calc.KeyAllClear:
		if ui.calc.CanClearEntry() {
			return "C"
		}
	case calc.KeyAngle:
		if ui.calc.Angle() == calc.Degrees {
			return "Deg"
		}
	}
	if b.altText != "" && ui.calc.SecondActive() {
		return b.altText
	}
	return b.text
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,=,^,!,(,),⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.calc.Text()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			text := strings.ReplaceAll(strings.TrimSpace(ev.Text), ",", "")
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				ui.calc.SetValue(v)
			}
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		ui.calc.Apply(calc.Key0 + calc.Key(e.Name[0]-'0'))
	case ".":
		ui.calc.Apply(calc.KeyDecimal)
	case "+":
		ui.calc.Apply(calc.KeyAdd)
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.calc.Apply(calc.KeySign)
		} else {
			ui.calc.Apply(calc.KeySub)
		}
	case "*":
		ui.calc.Apply(calc.KeyMul)
	case "/":
		ui.calc.Apply(calc.KeyDiv)
	case "%":
		ui.calc.Apply(calc.KeyPercent)
	case "^":
		ui.calc.Apply(calc.KeyPow)
	case "!":
		ui.calc.Apply(calc.KeyFactorial)
	case "(":
		ui.calc.Apply(calc.KeyLParen)
	case ")":
		ui.calc.Apply(calc.KeyRParen)
	case "=", key.NameEnter, key.NameReturn:
		ui.calc.Apply(calc.KeyEquals)
	case key.NameDeleteBackward, key.NameDeleteForward:
		ui.calc.Apply(calc.KeyClear)
	case key.NameEscape:
		ui.calc.Apply(calc.KeyAllClear)
	}
}
