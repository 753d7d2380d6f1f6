package stackviz

import (
	"fmt"

	"github.com/amirrezaask/stackviz/components"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxTokenLen = 12

// StackPanel draws the session stack as an array of slots, bottom to top,
// with the controls to push, pop and peek above it.
type StackPanel struct {
	Input   *components.UserInputComponent
	keymaps []Keymap
	buttons []button
}

func NewStackPanel(c *Context) *StackPanel {
	p := &StackPanel{
		Input: components.NewUserInputComponent(maxTokenLen),
	}
	p.keymaps = []Keymap{
		makeInputKeymap(func(c *Context) *components.UserInputComponent { return p.Input }),
		{
			Key{K: "<enter>"}: func(c *Context) error {
				p.pushInput(c)
				return nil
			},
			Key{K: "o", Control: true}: func(c *Context) error {
				p.pop(c)
				return nil
			},
			Key{K: "t", Control: true}: func(c *Context) error {
				p.peek(c)
				return nil
			},
			Key{K: "<lmouse>-click"}: func(c *Context) error {
				if b, ok := clickedButton(p.buttons); ok {
					return b.Press(c)
				}
				return nil
			},
		},
	}
	return p
}

func (p *StackPanel) pushInput(c *Context) {
	if c.Session == nil {
		return
	}
	c.Push(p.Input.Take())
}

func (p *StackPanel) pop(c *Context) {
	if c.Session == nil {
		return
	}
	c.Pop()
}

func (p *StackPanel) peek(c *Context) {
	if c.Session == nil {
		return
	}
	c.Peek()
}

func (p *StackPanel) InsertChars(bs []byte) {
	p.Input.InsertBytes(bs)
}

func (p *StackPanel) Keymaps() []Keymap {
	return p.keymaps
}

func (p *StackPanel) String() string {
	return "Stack"
}

func (p *StackPanel) Render(c *Context, zeroLocation rl.Vector2, maxH float64, maxW float64) {
	colors := c.Colors()
	lh := c.lineHeight()
	focused := c.Overlay == nil && c.ActivePanel == StackPanelIndex

	heading := "Array stack"
	if c.Session != nil {
		heading = fmt.Sprintf("Array stack (size %d/%d)", c.Session.Len(), c.Session.Capacity())
	}
	c.drawText(heading, zeroLocation, colors.Title)

	y := zeroLocation.Y + lh*1.5
	inputWidth := float32(maxW) * 0.38
	inputRect := c.drawInput(p.Input, rl.NewVector2(zeroLocation.X, y), inputWidth, focused)

	gap := float32(8)
	buttonWidth := (float32(maxW) - inputWidth - 4*gap) / 3
	x := inputRect.X + inputRect.Width + gap
	p.buttons = p.buttons[:0]
	for _, b := range []struct {
		label string
		color RGBA
		press Command
	}{
		{"Push", colors.PushButton, func(c *Context) error { p.pushInput(c); return nil }},
		{"Pop", colors.PopButton, func(c *Context) error { p.pop(c); return nil }},
		{"Peek", colors.PeekButton, func(c *Context) error { p.peek(c); return nil }},
	} {
		btn := button{Label: b.label, Rect: rl.NewRectangle(x, y, buttonWidth, inputRect.Height), Color: b.color, Press: b.press}
		p.buttons = append(p.buttons, btn)
		c.drawButton(btn)
		x += buttonWidth + gap
	}

	y += inputRect.Height + lh*0.5
	if c.Session != nil && c.Session.Status.Text != "" {
		c.drawText(c.Session.Status.Text, rl.NewVector2(zeroLocation.X, y), c.statusColor(c.Session.Status.Kind))
	}
	y += lh * 1.5

	hint := "enter: push  ctrl+o: pop  ctrl+t: peek  ctrl+s: resize"
	c.drawSmallText(hint, rl.NewVector2(zeroLocation.X, zeroLocation.Y+float32(maxH)-lh), colors.Muted)

	if c.Session == nil {
		return
	}
	bottom := zeroLocation.Y + float32(maxH) - lh*1.8
	p.renderDiagram(c, zeroLocation.X, float32(maxW), y, bottom)
}

// renderDiagram draws slot 0 at the bottom. Addresses go on the left, array
// indices on the right and the top slot is highlighted.
func (p *StackPanel) renderDiagram(c *Context, left, width, top, bottom float32) {
	colors := c.Colors()
	cells := c.Session.Cells(c.Cfg.BaseAddress, c.Cfg.AddressStep)
	if len(cells) == 0 || bottom <= top {
		return
	}

	cellHeight := (bottom - top) / float32(len(cells))
	if cellHeight > 56 {
		cellHeight = 56
	}
	cellWidth := width * 0.4
	cellX := left + (width-cellWidth)/2
	pad := cellHeight * 0.1

	for _, cell := range cells {
		y := bottom - float32(cell.Index+1)*cellHeight
		rect := rl.NewRectangle(cellX, y+pad, cellWidth, cellHeight-2*pad)
		fill, edge := colors.Cell, colors.CellEdge
		if cell.Top {
			fill, edge = colors.TopCell, colors.TopCellEdge
		}
		c.drawCell(rect, cell.Value, fill, edge)
		if cell.Highlight {
			rl.DrawRectangleLinesEx(rl.NewRectangle(rect.X-3, rect.Y-3, rect.Width+6, rect.Height+6), 1, colors.TopCellEdge.ToColorRGBA())
		}

		midY := rect.Y + (rect.Height-c.lineHeight()*0.75)/2
		addr := fmt.Sprint(cell.Address)
		addrSize := c.measureText(addr, float32(c.FontSize)*0.75)
		c.drawSmallText(addr, rl.NewVector2(cellX-addrSize.X-10, midY), colors.Muted)
		c.drawSmallText(fmt.Sprintf("[%d]", cell.Index), rl.NewVector2(cellX+cellWidth+10, midY), colors.Muted)
		if cell.Top {
			c.drawSmallText("<- Top", rl.NewVector2(cellX+cellWidth+60, midY), colors.TopCellEdge)
		}
	}

	base := bottom
	rl.DrawLineEx(rl.NewVector2(cellX-6, base), rl.NewVector2(cellX+cellWidth+6, base), 4, colors.Muted.ToColorRGBA())
}
