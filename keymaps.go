package stackviz

import (
	"github.com/amirrezaask/stackviz/components"
)

var GlobalKeymap = Keymap{
	Key{K: "<tab>"}: func(c *Context) error {
		if c.Overlay == nil {
			c.SwitchPanel()
		}
		return nil
	},
	Key{K: "q", Control: true}: func(c *Context) error {
		c.Exit()
		return nil
	},
	Key{K: "s", Control: true}: func(c *Context) error {
		c.OpenOverlay(NewCapacityPrompt(c))
		return nil
	},
	Key{K: "t", Alt: true}: func(c *Context) error {
		c.NextTheme()
		return nil
	},
	Key{K: "<mouse-wheel-down>", Control: true}: func(c *Context) error {
		c.DecreaseFontSize(2)
		return nil
	},
	Key{K: "<mouse-wheel-up>", Control: true}: func(c *Context) error {
		c.IncreaseFontSize(2)
		return nil
	},
	Key{K: "=", Control: true}: func(c *Context) error {
		c.IncreaseFontSize(2)
		return nil
	},
	Key{K: "-", Control: true}: func(c *Context) error {
		c.DecreaseFontSize(2)
		return nil
	},
}

// NextTheme cycles through the configured themes.
func (c *Context) NextTheme() {
	for i, theme := range c.Cfg.Themes {
		if theme.Name == c.Cfg.CurrentTheme {
			c.Cfg.CurrentTheme = c.Cfg.Themes[(i+1)%len(c.Cfg.Themes)].Name
			return
		}
	}
	c.Cfg.CurrentTheme = c.Cfg.Themes[0].Name
}

// makeInputKeymap binds the line editing keys to the text box returned by
// input.
func makeInputKeymap(input func(c *Context) *components.UserInputComponent) Keymap {
	with := func(f func(in *components.UserInputComponent) error) Command {
		return func(c *Context) error {
			return f(input(c))
		}
	}
	return Keymap{
		Key{K: "<right>"}:                    with(func(in *components.UserInputComponent) error { return in.CursorRight(1) }),
		Key{K: "<left>"}:                     with(func(in *components.UserInputComponent) error { return in.CursorLeft(1) }),
		Key{K: "f", Control: true}:           with(func(in *components.UserInputComponent) error { return in.CursorRight(1) }),
		Key{K: "b", Control: true}:           with(func(in *components.UserInputComponent) error { return in.CursorLeft(1) }),
		Key{K: "<right>", Control: true}:     with(func(in *components.UserInputComponent) error { return in.NextWordStart() }),
		Key{K: "<left>", Control: true}:      with(func(in *components.UserInputComponent) error { return in.PreviousWord() }),
		Key{K: "<home>"}:                     with(func(in *components.UserInputComponent) error { return in.BeginningOfTheLine() }),
		Key{K: "a", Control: true}:           with(func(in *components.UserInputComponent) error { return in.BeginningOfTheLine() }),
		Key{K: "<end>"}:                      with(func(in *components.UserInputComponent) error { return in.EndOfTheLine() }),
		Key{K: "e", Control: true}:           with(func(in *components.UserInputComponent) error { return in.EndOfTheLine() }),
		Key{K: "<backspace>"}:                with(func(in *components.UserInputComponent) error { return in.DeleteCharBackward() }),
		Key{K: "<backspace>", Control: true}: with(func(in *components.UserInputComponent) error { return in.DeleteWordBackward() }),
		Key{K: "<delete>"}:                   with(func(in *components.UserInputComponent) error { return in.DeleteCharForward() }),
		Key{K: "d", Control: true}:           with(func(in *components.UserInputComponent) error { return in.DeleteCharForward() }),
		Key{K: "d", Alt: true}:               with(func(in *components.UserInputComponent) error { return in.DeleteWordForward() }),
		Key{K: "k", Control: true}:           with(func(in *components.UserInputComponent) error { return in.KillLine() }),
		Key{K: "v", Control: true}:           with(func(in *components.UserInputComponent) error { return in.Paste() }),
		Key{K: "c", Control: true}:           with(func(in *components.UserInputComponent) error { return in.Copy() }),
	}
}
