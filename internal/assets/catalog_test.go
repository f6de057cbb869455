package assets

import (
	"strings"
	"testing"
)

func TestDefaultCatalogHasEveryRequiredKey(t *testing.T) {
	c := Default()
	for _, k := range RequiredKeys() {
		if !c.Has(k) {
			t.Errorf("default catalog missing %q", k)
		}
	}
	if _, ok := c.Animation(GlowingLeftArrows); !ok {
		t.Error("glowing_left_arrows should be an animation")
	}
	if _, ok := c.Sprite(OrbNeutral); !ok {
		t.Error("orb_neutral should be a sprite")
	}
}

func TestSpriteArtIsPadded(t *testing.T) {
	s, _ := Default().Sprite(OrbGreen)
	w := s.Frame.Width()
	for i, row := range s.Frame.Art {
		if n := len([]rune(row)); n != w {
			t.Fatalf("row %d width %d, want %d", i, n, w)
		}
	}
	if s.Frame.Color != "#6ce796" {
		t.Fatalf("color = %q", s.Frame.Color)
	}
}

func TestAnimationLoops(t *testing.T) {
	a, _ := Default().Animation(GlowingRightArrows)
	n := len(a.Frames)
	first := a.Frame(0)
	again := a.Frame(n * len(a.Colors))
	if strings.Join(first.Art, "\n") != strings.Join(again.Art, "\n") || first.Color != again.Color {
		t.Fatal("animation should loop back to its first frame")
	}
	if strings.Join(a.Frame(0).Art, "") == strings.Join(a.Frame(1).Art, "") {
		t.Fatal("consecutive frames should differ")
	}
}

func TestFrameSpriteIgnoresTick(t *testing.T) {
	c := Default()
	a, _ := c.Frame(OrbRed, 0)
	b, _ := c.Frame(OrbRed, 7)
	if strings.Join(a.Art, "\n") != strings.Join(b.Art, "\n") {
		t.Fatal("sprite frames should not change with tick")
	}
	if _, ok := c.Frame("nope", 0); ok {
		t.Fatal("unknown key should miss")
	}
}

func TestFitResamples(t *testing.T) {
	f := Frame{Art: []string{"ab", "cd"}, Color: "#ffffff"}
	got := Fit(f, 4, 4)
	want := []string{"aabb", "aabb", "ccdd", "ccdd"}
	for i := range want {
		if got.Art[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got.Art[i], want[i])
		}
	}
	small := Fit(f, 1, 1)
	if len(small.Art) != 1 || small.Art[0] != "a" {
		t.Fatalf("downsample = %q", small.Art)
	}
	if empty := Fit(f, 0, 3); len(empty.Art) != 0 {
		t.Fatalf("zero box should be empty, got %q", empty.Art)
	}
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"syntax": `[[sprite]`,
		"missing keys": `
[[sprite]]
key = "orb_neutral"
art = "x"
`,
		"duplicate": `
[[sprite]]
key = "orb_neutral"
art = "x"
[[sprite]]
key = "orb_neutral"
art = "y"
`,
		"bad color": `
[[sprite]]
key = "orb_neutral"
color = "orange"
art = "x"
`,
		"empty art": `
[[sprite]]
key = "orb_neutral"
art = "   "
`,
		"no frames": `
[[animation]]
key = "glowing_left_arrows"
`,
	}
	for name, data := range cases {
		if _, err := Load([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
