package stackviz

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Command func(*Context) error

type Key struct {
	Control bool
	Alt     bool
	Shift   bool
	Super   bool
	K       string
}

func (k Key) IsEmpty() bool {
	return k.K == ""
}

type Keymap map[Key]Command

type modifierKeyState struct {
	control bool
	alt     bool
	shift   bool
	super   bool
}

func getModifierKeyState() modifierKeyState {
	state := modifierKeyState{}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		state.control = true
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		state.alt = true
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		state.shift = true
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		state.super = true
	}

	return state
}

func getKey() Key {
	modifierState := getModifierKeyState()
	return Key{
		Control: modifierState.control,
		Alt:     modifierState.alt,
		Super:   modifierState.super,
		Shift:   modifierState.shift,
		K:       getKeyPressedString(),
	}
}

func getMouseKey() Key {
	modifierState := getModifierKeyState()
	var key string
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		key = "<lmouse>-click"
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		key = "<rmouse>-click"
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.Y != 0 {
		if wheel.Y < 0 {
			key = "<mouse-wheel-down>"
		}
		if wheel.Y > 0 {
			key = "<mouse-wheel-up>"
		}
	}

	if key == "" {
		return Key{}
	}

	return Key{
		Control: modifierState.control,
		Alt:     modifierState.alt,
		Super:   modifierState.super,
		Shift:   modifierState.shift,
		K:       key,
	}
}

// getPrintableChars drains the characters typed this frame. Only single
// byte printable characters are kept; tokens and expressions are ASCII.
func getPrintableChars() []byte {
	var out []byte
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if r >= 32 && r < 127 {
			out = append(out, byte(r))
		}
	}
	return out
}

func isPressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

var namedKeys = []struct {
	key  int32
	name string
}{
	{rl.KeyEscape, "<esc>"},
	{rl.KeyEnter, "<enter>"},
	{rl.KeyKpEnter, "<enter>"},
	{rl.KeyTab, "<tab>"},
	{rl.KeyBackspace, "<backspace>"},
	{rl.KeyDelete, "<delete>"},
	{rl.KeyRight, "<right>"},
	{rl.KeyLeft, "<left>"},
	{rl.KeyDown, "<down>"},
	{rl.KeyUp, "<up>"},
	{rl.KeyHome, "<home>"},
	{rl.KeyEnd, "<end>"},
	{rl.KeySpace, "<space>"},
	{rl.KeyF1, "<f1>"},
	{rl.KeyEqual, "="},
	{rl.KeyMinus, "-"},
	{rl.KeyKpAdd, "+"},
	{rl.KeyKpSubtract, "-"},
}

func getKeyPressedString() string {
	for _, k := range namedKeys {
		if isPressed(k.key) {
			return k.name
		}
	}
	for k := rl.KeyA; k <= rl.KeyZ; k++ {
		if isPressed(int32(k)) {
			return string(rune('a' + (k - rl.KeyA)))
		}
	}
	for k := rl.KeyZero; k <= rl.KeyNine; k++ {
		if isPressed(int32(k)) {
			return string(rune('0' + (k - rl.KeyZero)))
		}
	}

	return ""
}
