package stackviz

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirrezaask/stackviz/brackets"
	"github.com/amirrezaask/stackviz/components"
	"github.com/amirrezaask/stackviz/replay"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxExpressionLen = 40

// BracketPanel runs the bracket recorder on an expression and replays the
// recorded steps one at a time.
type BracketPanel struct {
	Input      *components.UserInputComponent
	Expression string
	Result     brackets.Result
	Player     *replay.Player[brackets.Step]
	keymaps    []Keymap
}

func NewBracketPanel(c *Context) *BracketPanel {
	p := &BracketPanel{
		Input: components.NewUserInputComponent(maxExpressionLen),
	}
	p.keymaps = []Keymap{
		makeInputKeymap(func(c *Context) *components.UserInputComponent { return p.Input }),
		{
			Key{K: "<enter>"}: func(c *Context) error {
				c.CheckExpression(p.Input.String())
				return nil
			},
			Key{K: "p", Control: true}: func(c *Context) error {
				if p.Player != nil {
					p.Player.Toggle()
				}
				return nil
			},
			Key{K: "n", Control: true}: func(c *Context) error {
				if p.Player != nil {
					p.Player.Pause()
					p.Player.StepForward()
				}
				return nil
			},
			Key{K: "r", Control: true}: func(c *Context) error {
				if p.Player != nil {
					p.Player.Reset()
				}
				return nil
			},
			Key{K: "l", Control: true}: func(c *Context) error {
				c.OpenOverlay(NewSampleList(c))
				return nil
			},
		},
	}
	return p
}

// Run records a scan of expr and starts replaying it from the first step.
func (p *BracketPanel) Run(c *Context, expr string) {
	p.Expression = expr
	p.Result = brackets.Run(expr)
	p.Player = replay.NewPlayer(p.Result.Steps, c.Cfg.StepDelay)
	c.Logger.Info("bracket check", "expression", expr, "steps", len(p.Result.Steps), "balanced", p.Result.Balanced)
}

func (p *BracketPanel) Tick(c *Context, now time.Time) {
	if p.Player == nil {
		return
	}
	if p.Player.Tick(now) {
		if step, ok := p.Player.Current(); ok {
			c.Logger.Debug("step", "index", p.Player.Index(), "action", step.Action, "cursor", step.Cursor)
		}
	}
}

func (p *BracketPanel) InsertChars(bs []byte) {
	p.Input.InsertBytes(bs)
}

func (p *BracketPanel) Keymaps() []Keymap {
	return p.keymaps
}

func (p *BracketPanel) String() string {
	return "Brackets"
}

func (p *BracketPanel) Render(c *Context, zeroLocation rl.Vector2, maxH float64, maxW float64) {
	colors := c.Colors()
	lh := c.lineHeight()
	focused := c.Overlay == nil && c.ActivePanel == BracketPanelIndex

	c.drawText("Balanced brackets", zeroLocation, colors.Title)
	y := zeroLocation.Y + lh*1.5
	inputRect := c.drawInput(p.Input, rl.NewVector2(zeroLocation.X, y), float32(maxW), focused)
	y += inputRect.Height + lh

	hint := "enter: check  ctrl+p: pause  ctrl+n: step  ctrl+r: replay  ctrl+l: samples"
	c.drawSmallText(hint, rl.NewVector2(zeroLocation.X, zeroLocation.Y+float32(maxH)-lh), colors.Muted)

	if p.Player == nil {
		return
	}

	step, hasStep := p.Player.Current()
	cursor := -1
	partner := -1
	if hasStep {
		cursor = step.Cursor
		if strings.HasPrefix(step.Action, "pop") {
			partner = brackets.FindMatching([]rune(p.Expression), step.Cursor)
		}
	}
	p.renderExpression(c, rl.NewVector2(zeroLocation.X, y), cursor, partner)
	y += lh * 2

	progress := fmt.Sprintf("step %d/%d", p.Player.Index()+1, p.Player.Len())
	if p.Player.Paused() {
		progress += " (paused)"
	}
	c.drawSmallText(progress, rl.NewVector2(zeroLocation.X, y), colors.Muted)
	y += lh
	if hasStep {
		actionColor := colors.Foreground
		if strings.HasPrefix(step.Action, "mismatch") {
			actionColor = colors.Error
		}
		c.drawText(step.Action, rl.NewVector2(zeroLocation.X, y), actionColor)
	}
	y += lh * 1.5

	if p.Player.Done() {
		verdict, col := "Balanced", colors.Success
		if !p.Result.Balanced {
			verdict, col = "Not balanced", colors.Error
		}
		c.drawText(verdict, rl.NewVector2(zeroLocation.X, y), col)
	}
	y += lh * 1.5

	var snapshot []rune
	if hasStep {
		snapshot = step.Snapshot
	}
	bottom := zeroLocation.Y + float32(maxH) - lh*1.8
	p.renderSnapshot(c, snapshot, zeroLocation.X, float32(maxW), y, bottom)
}

// renderExpression draws the expression one character at a time. Scanned
// characters are solid, the rest faded; the current character gets a box
// and the opener closed by a pop is underlined.
func (p *BracketPanel) renderExpression(c *Context, pos rl.Vector2, cursor, partner int) {
	colors := c.Colors()
	x := pos.X
	for i, r := range []rune(p.Expression) {
		size := c.measureTextSize(r)
		col := colors.Foreground.ToColorRGBA()
		if i > cursor {
			col = fade(colors.Foreground, 0.4)
		}
		if i == cursor {
			rl.DrawRectangle(int32(x)-2, int32(pos.Y)-2, int32(size.X)+4, int32(size.Y)+4, colors.TopCell.ToColorRGBA())
		}
		rl.DrawTextEx(c.Font, string(r), rl.NewVector2(x, pos.Y), float32(c.FontSize), 0, col)
		if i == partner {
			rl.DrawLineEx(rl.NewVector2(x, pos.Y+size.Y+2), rl.NewVector2(x+size.X, pos.Y+size.Y+2), 2, colors.TopCellEdge.ToColorRGBA())
		}
		x += size.X
	}
}

func (p *BracketPanel) renderSnapshot(c *Context, snapshot []rune, left, width, top, bottom float32) {
	colors := c.Colors()
	if bottom <= top {
		return
	}
	slots := len(snapshot)
	if slots < 4 {
		slots = 4
	}
	cellHeight := (bottom - top) / float32(slots)
	if cellHeight > 48 {
		cellHeight = 48
	}
	cellWidth := width * 0.25
	cellX := left + (width-cellWidth)/2
	pad := cellHeight * 0.1

	for i, b := range snapshot {
		y := bottom - float32(i+1)*cellHeight
		rect := rl.NewRectangle(cellX, y+pad, cellWidth, cellHeight-2*pad)
		fill, edge := colors.Cell, colors.CellEdge
		if i == len(snapshot)-1 {
			fill, edge = colors.TopCell, colors.TopCellEdge
		}
		c.drawCell(rect, string(b), fill, edge)
	}
	if len(snapshot) == 0 {
		c.drawSmallText("(empty)", rl.NewVector2(cellX, bottom-c.lineHeight()*1.2), colors.Muted)
	}
	rl.DrawLineEx(rl.NewVector2(cellX-6, bottom), rl.NewVector2(cellX+cellWidth+6, bottom), 4, colors.Muted.ToColorRGBA())
}
