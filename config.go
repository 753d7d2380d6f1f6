package stackviz

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/amirrezaask/stackviz/session"
)

type RGBA color.RGBA

func (r RGBA) ToColorRGBA() color.RGBA {
	return color.RGBA(r)
}

func (r RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

type Colors struct {
	Background   RGBA
	Foreground   RGBA
	Title        RGBA
	Muted        RGBA
	Cell         RGBA
	CellEdge     RGBA
	TopCell      RGBA
	TopCellEdge  RGBA
	PushButton   RGBA
	PopButton    RGBA
	PeekButton   RGBA
	ButtonText   RGBA
	InputBorder  RGBA
	ActiveBorder RGBA
	Cursor       RGBA
	Selection    RGBA
	Error        RGBA
	Warning      RGBA
	Success      RGBA
}

type Theme struct {
	Name   string
	Colors Colors
}

func (t Theme) String() string {
	return t.Name
}

type Config struct {
	Themes       []Theme
	CurrentTheme string
	FontName     string
	FontSize     int
	// Capacity of the stack; zero asks the user when the window opens.
	Capacity     int
	StepDelay    time.Duration
	BaseAddress  int
	AddressStep  int
	LogLevel     string
	WindowWidth  int
	WindowHeight int
}

func (c *Config) String() string {
	var output []string
	v := reflect.ValueOf(c).Elem()
	t := reflect.TypeOf(c).Elem()
	for i := 0; i < v.NumField(); i++ {
		typ := t.Field(i)
		if typ.Name == "Themes" {
			continue
		}
		output = append(output, fmt.Sprintf("%s = %v", typ.Name, v.Field(i).Interface()))
	}

	return strings.Join(output, "\n")
}

func mustParseHexColor(hex string) RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return RGBA(c)
}

var defaultConfig = Config{
	CurrentTheme: "Light",
	Themes: []Theme{
		{
			Name: "Light",
			Colors: Colors{
				Background:   mustParseHexColor("#f0f4f8"),
				Foreground:   mustParseHexColor("#2d415a"),
				Title:        mustParseHexColor("#2d415a"),
				Muted:        mustParseHexColor("#607d8b"),
				Cell:         mustParseHexColor("#b3e5fc"),
				CellEdge:     mustParseHexColor("#0288d1"),
				TopCell:      mustParseHexColor("#ffeb3b"),
				TopCellEdge:  mustParseHexColor("#fbc02d"),
				PushButton:   mustParseHexColor("#4caf50"),
				PopButton:    mustParseHexColor("#f44336"),
				PeekButton:   mustParseHexColor("#2196f3"),
				ButtonText:   mustParseHexColor("#ffffff"),
				InputBorder:  mustParseHexColor("#90a4ae"),
				ActiveBorder: mustParseHexColor("#0288d1"),
				Cursor:       mustParseHexColor("#f44336"),
				Selection:    mustParseHexColor("#b3e5fc"),
				Error:        mustParseHexColor("#d32f2f"),
				Warning:      mustParseHexColor("#f57c00"),
				Success:      mustParseHexColor("#388e3c"),
			},
		},
		{
			Name: "Dark",
			Colors: Colors{
				Background:   mustParseHexColor("#1e1f22"),
				Foreground:   mustParseHexColor("#d0d7de"),
				Title:        mustParseHexColor("#e6edf3"),
				Muted:        mustParseHexColor("#8b949e"),
				Cell:         mustParseHexColor("#1f4e79"),
				CellEdge:     mustParseHexColor("#58a6ff"),
				TopCell:      mustParseHexColor("#9e6a03"),
				TopCellEdge:  mustParseHexColor("#e3b341"),
				PushButton:   mustParseHexColor("#238636"),
				PopButton:    mustParseHexColor("#da3633"),
				PeekButton:   mustParseHexColor("#1f6feb"),
				ButtonText:   mustParseHexColor("#ffffff"),
				InputBorder:  mustParseHexColor("#484f58"),
				ActiveBorder: mustParseHexColor("#58a6ff"),
				Cursor:       mustParseHexColor("#f85149"),
				Selection:    mustParseHexColor("#388bfd"),
				Error:        mustParseHexColor("#f85149"),
				Warning:      mustParseHexColor("#d29922"),
				Success:      mustParseHexColor("#3fb950"),
			},
		},
	},
	FontName:     "LiberationMono-Regular",
	FontSize:     20,
	StepDelay:    700 * time.Millisecond,
	BaseAddress:  1000,
	AddressStep:  4,
	LogLevel:     "info",
	WindowWidth:  1100,
	WindowHeight: 760,
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() *Config {
	cfg := defaultConfig
	cfg.Themes = append([]Theme(nil), defaultConfig.Themes...)
	return &cfg
}

func (c *Config) CurrentThemeColors() *Colors {
	for i := range c.Themes {
		if c.Themes[i].Name == c.CurrentTheme {
			return &c.Themes[i].Colors
		}
	}
	return &c.Themes[0].Colors
}

func addToConfig(cfg *Config, key string, value string) error {
	var err error
	switch key {
	case "theme":
		cfg.CurrentTheme = value
	case "font":
		cfg.FontName = value
	case "font_size":
		cfg.FontSize, err = strconv.Atoi(value)
	case "capacity":
		cfg.Capacity, err = session.ParseCapacity(value)
	case "step_delay":
		var ms int
		ms, err = strconv.Atoi(value)
		if err == nil && ms < 0 {
			err = errors.New("must not be negative")
		}
		cfg.StepDelay = time.Duration(ms) * time.Millisecond
	case "base_address":
		cfg.BaseAddress, err = strconv.Atoi(value)
	case "address_step":
		cfg.AddressStep, err = strconv.Atoi(value)
	case "log_level":
		cfg.LogLevel = value
	case "window_width":
		cfg.WindowWidth, err = strconv.Atoi(value)
	case "window_height":
		cfg.WindowHeight, err = strconv.Atoi(value)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}

	return nil
}

// ReadConfig loads `key value` lines from cfgPath over the defaults. A
// missing file is not an error. Lines starting with # are ignored.
func ReadConfig(cfgPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	bs, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(bs), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		splitted := strings.SplitN(line, " ", 2)
		if len(splitted) != 2 {
			continue
		}
		key := strings.Trim(splitted[0], " \t\r")
		value := strings.Trim(splitted[1], " \t\r")
		if err := addToConfig(cfg, key, value); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
