package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Frame is a drawable: rows of runes in one foreground color. Spaces are
// transparent.
type Frame struct {
	Art   []string
	Color lipgloss.Color
}

// Width is the widest row in runes.
func (f Frame) Width() int {
	w := 0
	for _, row := range f.Art {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

func (f Frame) Height() int { return len(f.Art) }

// Sprite is a static image.
type Sprite struct {
	Key   Key
	Frame Frame
}

// Animation loops through frames, one per tick. Colors, when set, cycle
// independently of the frames.
type Animation struct {
	Key    Key
	Frames [][]string
	Colors []lipgloss.Color
}

// Frame returns the frame shown at tick.
func (a Animation) Frame(tick int) Frame {
	if tick < 0 {
		tick = -tick
	}
	f := Frame{Art: a.Frames[tick%len(a.Frames)]}
	if len(a.Colors) > 0 {
		f.Color = a.Colors[tick%len(a.Colors)]
	}
	return f
}

// Catalog maps keys to sprites and animations.
type Catalog struct {
	sprites    map[Key]Sprite
	animations map[Key]Animation
}

type catalogFile struct {
	Sprite    []spriteDef    `toml:"sprite"`
	Animation []animationDef `toml:"animation"`
}

type spriteDef struct {
	Key   string `toml:"key"`
	Color string `toml:"color"`
	Art   string `toml:"art"`
}

type animationDef struct {
	Key    string   `toml:"key"`
	Colors []string `toml:"colors"`
	Frames []string `toml:"frames"`
}

var errEmptyArt = errors.New("empty art")

// Load parses a catalog from TOML and checks that every required key is
// present.
func Load(data []byte) (*Catalog, error) {
	var cf catalogFile
	if _, err := toml.Decode(string(data), &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{
		sprites:    make(map[Key]Sprite, len(cf.Sprite)),
		animations: make(map[Key]Animation, len(cf.Animation)),
	}
	for _, d := range cf.Sprite {
		key := Key(strings.TrimSpace(d.Key))
		if err := c.checkNew(key); err != nil {
			return nil, err
		}
		col, err := parseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", key, err)
		}
		art := splitArt(d.Art)
		if len(art) == 0 {
			return nil, fmt.Errorf("sprite %q: %w", key, errEmptyArt)
		}
		c.sprites[key] = Sprite{Key: key, Frame: Frame{Art: art, Color: col}}
	}
	for _, d := range cf.Animation {
		key := Key(strings.TrimSpace(d.Key))
		if err := c.checkNew(key); err != nil {
			return nil, err
		}
		if len(d.Frames) == 0 {
			return nil, fmt.Errorf("animation %q: no frames", key)
		}
		a := Animation{Key: key}
		for i, raw := range d.Frames {
			art := splitArt(raw)
			if len(art) == 0 {
				return nil, fmt.Errorf("animation %q frame %d: %w", key, i, errEmptyArt)
			}
			a.Frames = append(a.Frames, art)
		}
		for _, raw := range d.Colors {
			col, err := parseColor(raw)
			if err != nil {
				return nil, fmt.Errorf("animation %q: %w", key, err)
			}
			a.Colors = append(a.Colors, col)
		}
		c.animations[key] = a
	}
	for _, k := range RequiredKeys() {
		if !c.Has(k) {
			return nil, fmt.Errorf("catalog missing %q", k)
		}
	}
	return c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded asset catalog: %v", err))
	}
	return c
}

func (c *Catalog) checkNew(k Key) error {
	if k == "" {
		return errors.New("asset with empty key")
	}
	if c.Has(k) {
		return fmt.Errorf("duplicate asset %q", k)
	}
	return nil
}

func (c *Catalog) Has(k Key) bool {
	_, s := c.sprites[k]
	_, a := c.animations[k]
	return s || a
}

func (c *Catalog) Sprite(k Key) (Sprite, bool) {
	s, ok := c.sprites[k]
	return s, ok
}

func (c *Catalog) Animation(k Key) (Animation, bool) {
	a, ok := c.animations[k]
	return a, ok
}

// Frame resolves k at tick. Sprites ignore the tick.
func (c *Catalog) Frame(k Key, tick int) (Frame, bool) {
	if s, ok := c.sprites[k]; ok {
		return s.Frame, true
	}
	if a, ok := c.animations[k]; ok {
		return a.Frame(tick), true
	}
	return Frame{}, false
}

func parseColor(raw string) (lipgloss.Color, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, err := colorful.Hex(raw); err != nil {
		return "", fmt.Errorf("color %q: %w", raw, err)
	}
	return lipgloss.Color(raw), nil
}

// splitArt drops leading and trailing blank rows and pads the rest to a common
// width.
func splitArt(raw string) []string {
	rows := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	w := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	for i, r := range rows {
		if n := len([]rune(r)); n < w {
			rows[i] = r + strings.Repeat(" ", w-n)
		}
	}
	return rows
}

// Fit resamples f into a cols×rows box by nearest neighbour.
func Fit(f Frame, cols, rows int) Frame {
	if cols <= 0 || rows <= 0 || len(f.Art) == 0 {
		return Frame{Color: f.Color}
	}
	src := make([][]rune, len(f.Art))
	for i, r := range f.Art {
		src[i] = []rune(r)
	}
	srcW := f.Width()
	srcH := len(src)
	out := make([]string, rows)
	for y := 0; y < rows; y++ {
		line := src[y*srcH/rows]
		var b strings.Builder
		for x := 0; x < cols; x++ {
			sx := x * srcW / cols
			if sx < len(line) {
				b.WriteRune(line[sx])
			} else {
				b.WriteRune(' ')
			}
		}
		out[y] = b.String()
	}
	return Frame{Art: out, Color: f.Color}
}
