package stackviz

import (
	"image/color"

	"github.com/amirrezaask/stackviz/components"
	"github.com/amirrezaask/stackviz/session"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (c *Context) drawText(text string, pos rl.Vector2, col RGBA) {
	rl.DrawTextEx(c.Font, text, pos, float32(c.FontSize), 0, col.ToColorRGBA())
}

func (c *Context) drawSmallText(text string, pos rl.Vector2, col RGBA) {
	rl.DrawTextEx(c.Font, text, pos, float32(c.FontSize)*0.75, 0, col.ToColorRGBA())
}

func (c *Context) lineHeight() float32 {
	return c.measureTextSize(' ').Y
}

// drawInput draws a one line text box and returns its bounds.
func (c *Context) drawInput(in *components.UserInputComponent, pos rl.Vector2, width float32, focused bool) rl.Rectangle {
	colors := c.Colors()
	charSize := c.measureTextSize(' ')
	rect := rl.NewRectangle(pos.X, pos.Y, width, charSize.Y*1.6)
	border := colors.InputBorder
	if focused {
		border = colors.ActiveBorder
	}
	rl.DrawRectangleLinesEx(rect, 2, border.ToColorRGBA())

	textPos := rl.NewVector2(rect.X+6, rect.Y+charSize.Y*0.3)
	c.drawText(in.String(), textPos, colors.Foreground)

	if focused {
		cursorX := textPos.X + c.measureText(string(in.UserInput[:in.Idx]), float32(c.FontSize)).X
		rl.DrawRectangle(int32(cursorX), int32(textPos.Y), 2, int32(charSize.Y), rl.Fade(colors.Cursor.ToColorRGBA(), 0.8))
	}
	return rect
}

type button struct {
	Label string
	Rect  rl.Rectangle
	Color RGBA
	Press Command
}

func (c *Context) drawButton(b button) {
	colors := c.Colors()
	col := b.Color.ToColorRGBA()
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Rect) {
		col = rl.Fade(col, 0.8)
	}
	rl.DrawRectangleRec(b.Rect, col)
	size := c.measureText(b.Label, float32(c.FontSize))
	c.drawText(b.Label, rl.NewVector2(b.Rect.X+(b.Rect.Width-size.X)/2, b.Rect.Y+(b.Rect.Height-size.Y)/2), colors.ButtonText)
}

// clickedButton returns the button under the mouse, if any.
func clickedButton(buttons []button) (button, bool) {
	pos := rl.GetMousePosition()
	for _, b := range buttons {
		if rl.CheckCollisionPointRec(pos, b.Rect) {
			return b, true
		}
	}
	return button{}, false
}

func (c *Context) statusColor(kind session.StatusKind) RGBA {
	colors := c.Colors()
	switch kind {
	case session.StatusWarning:
		return colors.Warning
	case session.StatusError:
		return colors.Error
	default:
		return colors.Foreground
	}
}

// drawCell draws one array slot with its text centred.
func (c *Context) drawCell(rect rl.Rectangle, text string, fill, edge RGBA) {
	rl.DrawRectangleRec(rect, fill.ToColorRGBA())
	rl.DrawRectangleLinesEx(rect, 2, edge.ToColorRGBA())
	if text == "" {
		return
	}
	size := c.measureText(text, float32(c.FontSize))
	for size.X > rect.Width-8 && len(text) > 2 {
		text = text[:len(text)-2] + "~"
		size = c.measureText(text, float32(c.FontSize))
	}
	c.drawText(text, rl.NewVector2(rect.X+(rect.Width-size.X)/2, rect.Y+(rect.Height-size.Y)/2), c.Colors().Foreground)
}

func fade(col RGBA, alpha float32) color.RGBA {
	return rl.Fade(col.ToColorRGBA(), alpha)
}
