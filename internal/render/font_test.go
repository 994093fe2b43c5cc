package render

import (
	"testing"

	"github.com/opd-ai/creographics/internal/scene"
)

func TestFontStyleString(t *testing.T) {
	tests := []struct {
		style FontStyle
		want  string
	}{
		{FontStyleRegular, "regular"},
		{FontStyleBold, "bold"},
		{FontStyleItalic, "italic"},
		{FontStyleBoldItalic, "bold-italic"},
		{FontStyle(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("FontStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestStyleOf(t *testing.T) {
	st := scene.DefaultStyle()
	st.Bold, st.Italic = true, true
	if StyleOf(st) != FontStyleBoldItalic {
		t.Errorf("StyleOf(bold italic) = %v", StyleOf(st))
	}
	st.Italic = false
	if StyleOf(st) != FontStyleBold {
		t.Errorf("StyleOf(bold) = %v", StyleOf(st))
	}
}

func TestFontManagerResolvesFamilies(t *testing.T) {
	fm := NewFontManager()
	tests := []struct {
		family string
		want   string
	}{
		{"Arial", "GoSans"},
		{"'Courier New', monospace", "GoMono"},
		{"Unknown, monospace", "GoMono"},
		{"Comic Sans MS", "GoSans"},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			fm.mu.RLock()
			key := fm.resolve(tt.family)
			fm.mu.RUnlock()
			if got := fm.families[key].Name(); got != tt.want {
				t.Errorf("resolve(%q) = %s, want %s", tt.family, got, tt.want)
			}
		})
	}
}

func TestFontManagerCachesFaces(t *testing.T) {
	fm := NewFontManager()
	a := fm.Face("Arial", FontStyleBold, 16)
	b := fm.Face("helvetica", FontStyleBold, 16.05)
	if a != b {
		t.Error("equivalent requests returned different faces")
	}
	if c := fm.Face("Arial", FontStyleBold, 24); c == a {
		t.Error("different sizes shared a face")
	}
}

func TestFontManagerListFamilies(t *testing.T) {
	got := NewFontManager().ListFamilies()
	if len(got) != 2 || got[0] != "GoMono" || got[1] != "GoSans" {
		t.Errorf("ListFamilies() = %v, want [GoMono GoSans]", got)
	}
}

func TestLoadFontFromDataRejectsGarbage(t *testing.T) {
	if err := NewFontManager().LoadFontFromData("Mine", FontStyleRegular, []byte("nope")); err == nil {
		t.Error("LoadFontFromData accepted invalid data")
	}
}
