package stackviz

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"runtime/debug"
	"time"

	"github.com/amirrezaask/stackviz/components"
	"github.com/amirrezaask/stackviz/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/flopp/go-findfont"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drawable is anything that owns a region of the window and reacts to keys.
type Drawable interface {
	Render(c *Context, zeroLocation rl.Vector2, maxH float64, maxW float64)
	Keymaps() []Keymap
	fmt.Stringer
}

// charInserter is implemented by drawables that accept typed text.
type charInserter interface {
	InsertChars(bs []byte)
}

const (
	StackPanelIndex = iota
	BracketPanelIndex
)

type Context struct {
	Cfg      *Config
	Logger   *slog.Logger
	FontPath string
	Font     rl.Font
	FontSize int32

	Session      *session.Session
	Panels       []Drawable
	ActivePanel  int
	StackPanel   *StackPanel
	BracketPanel *BracketPanel

	// Overlay is a modal drawable (capacity prompt, sample picker) that
	// receives input before the panels. nil when nothing is open.
	Overlay Drawable

	GlobalKeymaps []Keymap
	// History holds every expression checked in this session, newest last.
	History []string

	panelRects    []rl.Rectangle
	charSizeCache map[rune]rl.Vector2
	exit          bool
}

func (c *Context) measureTextSize(s rune) rl.Vector2 {
	if charSize, exists := c.charSizeCache[s]; exists {
		return charSize
	}
	charSize := rl.MeasureTextEx(c.Font, string(s), float32(c.FontSize), 0)
	c.charSizeCache[s] = charSize
	return charSize
}

func (c *Context) measureText(s string, size float32) rl.Vector2 {
	return rl.MeasureTextEx(c.Font, s, size, 0)
}

// LoadFont looks up a system font by name and falls back to the raylib
// default font when it cannot be found.
func (c *Context) LoadFont(name string, size int32) error {
	c.FontSize = size
	c.charSizeCache = map[rune]rl.Vector2{}
	fontPath, err := findfont.Find(name + ".ttf")
	if err != nil {
		c.FontPath = ""
		c.Font = rl.GetFontDefault()
		return fmt.Errorf("find font %s: %w", name, err)
	}

	c.FontPath = fontPath
	c.Font = rl.LoadFontEx(c.FontPath, c.FontSize, nil)
	return nil
}

func (c *Context) reloadFont() {
	c.charSizeCache = map[rune]rl.Vector2{}
	if c.FontPath != "" {
		c.Font = rl.LoadFontEx(c.FontPath, c.FontSize, nil)
	}
}

func (c *Context) IncreaseFontSize(n int) {
	c.FontSize += int32(n)
	c.reloadFont()
}

func (c *Context) DecreaseFontSize(n int) {
	if c.FontSize-int32(n) < 8 {
		return
	}
	c.FontSize -= int32(n)
	c.reloadFont()
}

func (c *Context) Colors() *Colors {
	return c.Cfg.CurrentThemeColors()
}

func (c *Context) ActiveDrawable() Drawable {
	if c.Overlay != nil {
		return c.Overlay
	}
	return c.Panels[c.ActivePanel]
}

func (c *Context) OpenOverlay(d Drawable) {
	c.Logger.Debug("open overlay", "overlay", d.String())
	c.Overlay = d
}

func (c *Context) CloseOverlay() {
	c.Overlay = nil
}

func (c *Context) SwitchPanel() {
	c.ActivePanel = (c.ActivePanel + 1) % len(c.Panels)
}

func (c *Context) Exit() {
	c.exit = true
}

// Push, Pop and Peek run a stack command against the session and log the
// outcome. Failures are already reflected in the session status.
func (c *Context) Push(token string) {
	if err := c.Session.Push(token); err != nil {
		c.Logger.Warn("push rejected", "token", token, "error", err)
		return
	}
	c.Logger.Info("push", "token", token, "size", c.Session.Len())
}

func (c *Context) Pop() {
	v, err := c.Session.Pop()
	if err != nil {
		c.Logger.Warn("pop rejected", "error", err)
		return
	}
	c.Logger.Info("pop", "token", v, "size", c.Session.Len())
}

func (c *Context) Peek() {
	v, ok := c.Session.Peek()
	c.Logger.Info("peek", "token", v, "empty", !ok)
}

// Resize replaces the session stack with an empty one of the given capacity.
func (c *Context) Resize(capacity int) error {
	if c.Session == nil {
		s, err := session.New(capacity)
		if err != nil {
			return err
		}
		c.Session = s
	} else if err := c.Session.Resize(capacity); err != nil {
		return err
	}
	c.Logger.Info("stack created", "capacity", capacity)
	return nil
}

func (c *Context) CheckExpression(expr string) {
	c.History = append(c.History, expr)
	c.BracketPanel.Run(c, expr)
}

func (c *Context) HandleKeyEvents() {
	key := getKey()
	if !key.IsEmpty() {
		c.dispatch(key)
	}

	chars := getPrintableChars()
	if len(chars) == 0 || key.Control || key.Alt {
		return
	}
	if ci, ok := c.ActiveDrawable().(charInserter); ok {
		ci.InsertChars(chars)
	}
}

func (c *Context) HandleMouseEvents() {
	key := getMouseKey()
	if key.IsEmpty() {
		return
	}
	if key.K == "<lmouse>-click" && c.Overlay == nil {
		pos := rl.GetMousePosition()
		for i, rect := range c.panelRects {
			if rl.CheckCollisionPointRec(pos, rect) {
				c.ActivePanel = i
			}
		}
	}
	c.dispatch(key)
}

// dispatch runs the first command bound to key, searching the active
// drawable's keymaps from the last one added, then the global keymaps.
func (c *Context) dispatch(key Key) {
	keymaps := append(append([]Keymap{}, c.GlobalKeymaps...), c.ActiveDrawable().Keymaps()...)
	for i := len(keymaps) - 1; i >= 0; i-- {
		cmd := keymaps[i][key]
		if cmd == nil {
			continue
		}
		if err := cmd(c); err != nil {
			c.Logger.Error("command failed", "key", key.K, "error", err)
		}
		return
	}
}

func (c *Context) Update(now time.Time) {
	c.BracketPanel.Tick(c, now)
}

func (c *Context) layout() (title rl.Vector2, panels []rl.Rectangle) {
	width := float32(rl.GetRenderWidth())
	height := float32(rl.GetRenderHeight())
	const margin = 20
	top := float32(c.FontSize)*2 + margin

	panelWidth := (width - 3*margin) / 2
	panelHeight := height - top - margin
	return rl.NewVector2(margin, margin/2), []rl.Rectangle{
		rl.NewRectangle(margin, top, panelWidth, panelHeight),
		rl.NewRectangle(2*margin+panelWidth, top, panelWidth, panelHeight),
	}
}

func (c *Context) Render() {
	colors := c.Colors()
	rl.BeginDrawing()
	rl.ClearBackground(colors.Background.ToColorRGBA())

	titlePos, rects := c.layout()
	c.panelRects = rects
	titleSize := float32(c.FontSize) * 1.4
	title := "Stack Visualization"
	titlePos.X = (float32(rl.GetRenderWidth()) - c.measureText(title, titleSize).X) / 2
	rl.DrawTextEx(c.Font, title, titlePos, titleSize, 0, colors.Title.ToColorRGBA())

	for i, panel := range c.Panels {
		rect := rects[i]
		border := colors.InputBorder
		if i == c.ActivePanel && c.Overlay == nil {
			border = colors.ActiveBorder
		}
		rl.DrawRectangleLinesEx(rect, 2, border.ToColorRGBA())
		inner := rl.NewVector2(rect.X+12, rect.Y+12)
		panel.Render(c, inner, float64(rect.Height-24), float64(rect.Width-24))
	}

	if c.Overlay != nil {
		width := float32(rl.GetRenderWidth())
		height := float32(rl.GetRenderHeight())
		rl.DrawRectangle(0, 0, int32(width), int32(height), rl.Fade(colors.Background.ToColorRGBA(), 0.7))
		box := rl.NewRectangle(width/4, height/5, width/2, height*3/5)
		rl.DrawRectangleRec(box, colors.Background.ToColorRGBA())
		rl.DrawRectangleLinesEx(box, 2, colors.ActiveBorder.ToColorRGBA())
		c.Overlay.Render(c, rl.NewVector2(box.X+16, box.Y+16), float64(box.Height-32), float64(box.Width-32))
	}

	rl.EndDrawing()
}

func setupRaylib(cfg *Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.SetTraceLogLevel(rl.LogError)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Stack Visualization")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// New opens the window and builds the visualizer. When cfg.Capacity is zero
// the capacity prompt is shown before anything else.
func New(cfg *Config, logger *slog.Logger) (*Context, error) {
	setupRaylib(cfg)

	c := &Context{
		Cfg:           cfg,
		Logger:        logger,
		GlobalKeymaps: []Keymap{GlobalKeymap},
		charSizeCache: map[rune]rl.Vector2{},
	}
	if err := c.LoadFont(cfg.FontName, int32(cfg.FontSize)); err != nil {
		logger.Warn("using default font", "error", err)
	}
	if err := components.InitClipboard(); err != nil {
		logger.Warn("clipboard unavailable", "error", err)
	}

	c.StackPanel = NewStackPanel(c)
	c.BracketPanel = NewBracketPanel(c)
	c.Panels = []Drawable{c.StackPanel, c.BracketPanel}

	if cfg.Capacity != 0 {
		if err := c.Resize(cfg.Capacity); err != nil {
			rl.CloseWindow()
			return nil, err
		}
	} else {
		c.OpenOverlay(NewCapacityPrompt(c))
	}

	return c, nil
}

func (c *Context) StartMainLoop() {
	defer rl.CloseWindow()
	defer func() {
		if r := recover(); r != nil {
			c.writeCrashLog(r)
		}
	}()

	for !rl.WindowShouldClose() && !c.exit {
		c.HandleMouseEvents()
		c.HandleKeyEvents()
		c.Update(time.Now())
		c.Render()
	}
}

type crashState struct {
	Capacity    int
	Items       []string
	Status      session.Status
	Expression  string
	ReplayIndex int
	History     []string
	Config      string
}

func (c *Context) writeCrashLog(r any) {
	state := crashState{History: c.History, Config: c.Cfg.String()}
	if c.Session != nil {
		state.Capacity = c.Session.Capacity()
		state.Items = c.Session.Items()
		state.Status = c.Session.Status
	}
	if c.BracketPanel != nil {
		state.Expression = c.BracketPanel.Expression
		if c.BracketPanel.Player != nil {
			state.ReplayIndex = c.BracketPanel.Player.Index()
		}
	}

	name := path.Join(os.Getenv("HOME"), fmt.Sprintf("stackviz-crashlog-%d", time.Now().Unix()))
	err := os.WriteFile(name, []byte(fmt.Sprintf("%v\n%s\n%s", r, string(debug.Stack()), spew.Sdump(state))), 0644)
	if err != nil {
		c.Logger.Error("cannot write crash log", "path", name, "error", err)
		return
	}
	c.Logger.Error("crashed", "panic", r, "crashlog", name)
}
