package stackviz

import (
	"fmt"

	"github.com/amirrezaask/stackviz/components"
	"github.com/amirrezaask/stackviz/session"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CapacityPrompt asks for the stack size. Until a valid size is entered it
// keeps asking; it can only be dismissed once a stack exists.
type CapacityPrompt struct {
	Input   *components.UserInputComponent
	Err     string
	keymaps []Keymap
}

func NewCapacityPrompt(c *Context) *CapacityPrompt {
	cp := &CapacityPrompt{Input: components.NewUserInputComponent(2)}
	cp.keymaps = []Keymap{
		makeInputKeymap(func(c *Context) *components.UserInputComponent { return cp.Input }),
		{
			Key{K: "<enter>"}: func(c *Context) error {
				capacity, err := session.ParseCapacity(cp.Input.String())
				if err != nil {
					cp.Err = fmt.Sprintf("Please enter a valid stack size between %d and %d.", session.MinCapacity, session.MaxCapacity)
					cp.Input.Clear()
					return nil
				}
				if err := c.Resize(capacity); err != nil {
					return err
				}
				c.CloseOverlay()
				return nil
			},
			Key{K: "<esc>"}: func(c *Context) error {
				if c.Session != nil {
					c.CloseOverlay()
				}
				return nil
			},
		},
	}
	return cp
}

// InsertChars only accepts digits.
func (cp *CapacityPrompt) InsertChars(bs []byte) {
	for _, b := range bs {
		if b >= '0' && b <= '9' {
			cp.Input.InsertCharAtBuffer(b)
		}
	}
}

func (cp *CapacityPrompt) Keymaps() []Keymap {
	return cp.keymaps
}

func (cp *CapacityPrompt) String() string {
	return "Stack Size"
}

func (cp *CapacityPrompt) Render(c *Context, zeroLocation rl.Vector2, maxH float64, maxW float64) {
	colors := c.Colors()
	lh := c.lineHeight()
	c.drawText("Stack Size", zeroLocation, colors.Title)
	y := zeroLocation.Y + lh*1.5
	c.drawText(fmt.Sprintf("Enter stack (array) size (%d-%d):", session.MinCapacity, session.MaxCapacity), rl.NewVector2(zeroLocation.X, y), colors.Foreground)
	y += lh * 1.5
	rect := c.drawInput(cp.Input, rl.NewVector2(zeroLocation.X, y), float32(maxW)*0.3, true)
	y += rect.Height + lh
	if cp.Err != "" {
		c.drawText(cp.Err, rl.NewVector2(zeroLocation.X, y), colors.Error)
	}
	if c.Session != nil {
		c.drawSmallText("resizing discards the current stack, esc: cancel", rl.NewVector2(zeroLocation.X, zeroLocation.Y+float32(maxH)-lh), colors.Muted)
	}
}

// Samples are offered by the sample picker before any history.
var Samples = []string{
	"(a+b)*[c-d]",
	"{[()]}",
	"(a+b]",
	"(()",
	"{[(a*b)+(c/d)]-e}",
	"([)]",
	"))((",
	"f(x[i], {k: v})",
}

// SampleList is a fuzzy filtered picker over the samples and the
// expressions already checked in this session.
type SampleList struct {
	Input   *components.UserInputComponent
	List    *components.ListComponent[string]
	keymaps []Keymap
	last    string
}

func sampleItems(history []string) []string {
	seen := map[string]bool{}
	var items []string
	for i := len(history) - 1; i >= 0; i-- {
		if h := history[i]; h != "" && !seen[h] {
			seen[h] = true
			items = append(items, h)
		}
	}
	for _, s := range Samples {
		if !seen[s] {
			seen[s] = true
			items = append(items, s)
		}
	}
	return items
}

func NewSampleList(c *Context) *SampleList {
	sl := &SampleList{
		Input: components.NewUserInputComponent(maxExpressionLen),
		List:  components.NewListComponent(sampleItems(c.History)),
	}
	sl.keymaps = []Keymap{
		makeInputKeymap(func(c *Context) *components.UserInputComponent { return sl.Input }),
		{
			Key{K: "<up>"}: func(c *Context) error {
				sl.List.PrevItem()
				return nil
			},
			Key{K: "<down>"}: func(c *Context) error {
				sl.List.NextItem()
				return nil
			},
			Key{K: "p", Control: true}: func(c *Context) error {
				sl.List.PrevItem()
				return nil
			},
			Key{K: "n", Control: true}: func(c *Context) error {
				sl.List.NextItem()
				return nil
			},
			Key{K: "<mouse-wheel-up>"}: func(c *Context) error {
				sl.List.Scroll(-1)
				return nil
			},
			Key{K: "<mouse-wheel-down>"}: func(c *Context) error {
				sl.List.Scroll(1)
				return nil
			},
			Key{K: "<enter>"}: func(c *Context) error {
				expr, ok := sl.List.Selected()
				if !ok {
					return nil
				}
				c.CloseOverlay()
				c.BracketPanel.Input.Clear()
				c.BracketPanel.Input.InsertBytes([]byte(expr))
				c.ActivePanel = BracketPanelIndex
				c.CheckExpression(expr)
				return nil
			},
			Key{K: "<esc>"}: func(c *Context) error {
				c.CloseOverlay()
				return nil
			},
			Key{K: "g", Control: true}: func(c *Context) error {
				c.CloseOverlay()
				return nil
			},
		},
	}
	return sl
}

func (sl *SampleList) InsertChars(bs []byte) {
	sl.Input.InsertBytes(bs)
}

func (sl *SampleList) Keymaps() []Keymap {
	return sl.keymaps
}

func (sl *SampleList) String() string {
	return "Samples"
}

func (sl *SampleList) Render(c *Context, zeroLocation rl.Vector2, maxH float64, maxW float64) {
	if sl.last != sl.Input.String() {
		sl.last = sl.Input.String()
		sl.List.Filter(sl.last, func(s string) string { return s })
	}
	colors := c.Colors()
	lh := c.lineHeight()

	c.drawText("Expressions", zeroLocation, colors.Title)
	y := zeroLocation.Y + lh*1.5
	rect := c.drawInput(sl.Input, rl.NewVector2(zeroLocation.X, y), float32(maxW), true)
	y += rect.Height + lh*0.5

	maxLine := int((zeroLocation.Y + float32(maxH) - y) / lh)
	view := sl.List.VisibleView(maxLine)
	for idx, item := range view {
		pos := rl.NewVector2(zeroLocation.X, y+float32(idx)*lh)
		if sl.List.VisibleStart+idx == sl.List.Selection {
			rl.DrawRectangle(int32(pos.X), int32(pos.Y), int32(maxW), int32(lh), fade(colors.Selection, 0.5))
		}
		c.drawText(item, pos, colors.Foreground)
	}
}
