package render

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/creographics/internal/scene"
)

// FontStyle represents font style variations.
type FontStyle int

const (
	// FontStyleRegular is the regular/normal font style.
	FontStyleRegular FontStyle = iota
	// FontStyleBold is the bold font style.
	FontStyleBold
	// FontStyleItalic is the italic font style.
	FontStyleItalic
	// FontStyleBoldItalic is the bold and italic font style.
	FontStyleBoldItalic
)

// String returns the string representation of a FontStyle.
func (fs FontStyle) String() string {
	switch fs {
	case FontStyleRegular:
		return "regular"
	case FontStyleBold:
		return "bold"
	case FontStyleItalic:
		return "italic"
	case FontStyleBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// StyleOf returns the font style selected by the bold and italic flags of s.
func StyleOf(s scene.Style) FontStyle {
	switch {
	case s.Bold && s.Italic:
		return FontStyleBoldItalic
	case s.Bold:
		return FontStyleBold
	case s.Italic:
		return FontStyleItalic
	default:
		return FontStyleRegular
	}
}

// FontFamily is a named set of parsed TrueType fonts, one per style.
type FontFamily struct {
	name  string
	fonts map[FontStyle]*truetype.Font
}

// NewFontFamily creates a new FontFamily with the given name.
func NewFontFamily(name string) *FontFamily {
	return &FontFamily{name: name, fonts: make(map[FontStyle]*truetype.Font)}
}

// Name returns the family name.
func (ff *FontFamily) Name() string {
	return ff.name
}

// font returns the font for style, falling back to the closest available
// style and finally to regular.
func (ff *FontFamily) font(style FontStyle) *truetype.Font {
	if f, ok := ff.fonts[style]; ok {
		return f
	}
	if style == FontStyleBoldItalic {
		if f, ok := ff.fonts[FontStyleBold]; ok {
			return f
		}
		if f, ok := ff.fonts[FontStyleItalic]; ok {
			return f
		}
	}
	if f, ok := ff.fonts[FontStyleRegular]; ok {
		return f
	}
	for _, s := range []FontStyle{FontStyleBold, FontStyleItalic, FontStyleBoldItalic} {
		if f, ok := ff.fonts[s]; ok {
			return f
		}
	}
	return nil
}

type faceKey struct {
	family string
	style  FontStyle
	size   float64
}

// FontManager resolves CSS-like family names to embedded Go fonts and caches
// the sized faces handed to the rasterizer. The registry is safe for
// concurrent use; the returned faces are not.
type FontManager struct {
	mu            sync.RWMutex
	families      map[string]*FontFamily
	defaultFamily string
	faces         map[faceKey]font.Face
}

// NewFontManager creates a FontManager with the embedded Go fonts and the
// usual web family names mapped onto them.
func NewFontManager() *FontManager {
	fm := &FontManager{
		families:      make(map[string]*FontFamily),
		defaultFamily: "GoSans",
		faces:         make(map[faceKey]font.Face),
	}

	sans := NewFontFamily("GoSans")
	mustAdd(sans, FontStyleRegular, goregular.TTF)
	mustAdd(sans, FontStyleBold, gobold.TTF)
	mustAdd(sans, FontStyleItalic, goitalic.TTF)
	mustAdd(sans, FontStyleBoldItalic, gobolditalic.TTF)

	mono := NewFontFamily("GoMono")
	mustAdd(mono, FontStyleRegular, gomono.TTF)
	mustAdd(mono, FontStyleBold, gomonobold.TTF)
	mustAdd(mono, FontStyleItalic, gomonoitalic.TTF)
	mustAdd(mono, FontStyleBoldItalic, gomonobolditalic.TTF)

	for _, alias := range []string{"gosans", "go", "arial", "helvetica", "verdana", "sans-serif", "serif", "times new roman", "georgia"} {
		fm.families[alias] = sans
	}
	for _, alias := range []string{"gomono", "monospace", "courier", "courier new", "consolas"} {
		fm.families[alias] = mono
	}
	return fm
}

// mustAdd parses embedded font data. The Go fonts are known-good, so a parse
// failure is a build defect.
func mustAdd(family *FontFamily, style FontStyle, data []byte) {
	f, err := truetype.Parse(data)
	if err != nil {
		panic(fmt.Sprintf("parse embedded font %s %s: %v", family.name, style, err))
	}
	family.fonts[style] = f
}

// LoadFontFromFile registers a TrueType file under familyName and style.
func (fm *FontManager) LoadFontFromFile(familyName string, style FontStyle, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	return fm.LoadFontFromData(familyName, style, data)
}

// LoadFontFromData registers TrueType data under familyName and style.
func (fm *FontManager) LoadFontFromData(familyName string, style FontStyle, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font data: %w", err)
	}

	fm.mu.Lock()
	defer fm.mu.Unlock()

	key := normalizeFamily(familyName)
	family, ok := fm.families[key]
	if !ok || family.name != familyName {
		family = NewFontFamily(familyName)
		fm.families[key] = family
	}
	family.fonts[style] = f
	for k := range fm.faces {
		if k.family == key {
			delete(fm.faces, k)
		}
	}
	return nil
}

// Family returns the family registered under name, or nil.
func (fm *FontManager) Family(name string) *FontFamily {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	return fm.families[normalizeFamily(name)]
}

// ListFamilies returns the sorted canonical family names.
func (fm *FontManager) ListFamilies() []string {
	fm.mu.RLock()
	defer fm.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for _, f := range fm.families {
		if !seen[f.name] {
			seen[f.name] = true
			names = append(names, f.name)
		}
	}
	sort.Strings(names)
	return names
}

// Face returns a cached face for a CSS-like family list such as
// "Courier New, monospace". The first known family wins; unknown families
// fall back to the default. Sizes are rounded to a quarter point so that a
// zoom gesture does not fill the cache.
func (fm *FontManager) Face(family string, style FontStyle, size float64) font.Face {
	if size <= 0 {
		size = 16
	}
	size = math.Round(size*4) / 4

	fm.mu.RLock()
	name := fm.resolve(family)
	key := faceKey{family: name, style: style, size: size}
	face, ok := fm.faces[key]
	fm.mu.RUnlock()
	if ok {
		return face
	}

	fm.mu.Lock()
	defer fm.mu.Unlock()
	if face, ok := fm.faces[key]; ok {
		return face
	}
	face = truetype.NewFace(fm.families[name].font(style), &truetype.Options{
		Size:    size,
		Hinting: font.HintingNone,
	})
	fm.faces[key] = face
	return face
}

// resolve returns the registry key of the first family in list that is
// known. Caller must hold mu.
func (fm *FontManager) resolve(list string) string {
	for _, name := range strings.Split(list, ",") {
		key := normalizeFamily(name)
		if _, ok := fm.families[key]; ok {
			return key
		}
	}
	return normalizeFamily(fm.defaultFamily)
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(name), `"'`))
}
