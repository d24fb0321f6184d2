// Package fonts serves the Go Regular typeface at the sizes the game draws
// text with. The HUD uses bitmap faces for ebiten's text package and the
// pause menu uses text/v2 faces for ebitenui.
package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Face names one text style.
type Face int

const (
	HUD Face = iota
	HUDSmall
	Menu
	MenuTitle
	faceCount
)

var sizes = [faceCount]float64{
	HUD:       12,
	HUDSmall:  10,
	Menu:      12,
	MenuTitle: 18,
}

var (
	loadOnce sync.Once
	loadErr  error
	parsed   *truetype.Font
	source   *text.GoTextFaceSource

	mu      sync.Mutex
	bitmaps = map[Face]font.Face{}
)

// Load parses the typeface. It is safe to call more than once.
func Load() error {
	loadOnce.Do(func() {
		parsed, loadErr = truetype.Parse(goregular.TTF)
		if loadErr != nil {
			loadErr = fmt.Errorf("parse goregular: %w", loadErr)
			return
		}
		source, loadErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if loadErr != nil {
			loadErr = fmt.Errorf("load goregular source: %w", loadErr)
		}
	})
	return loadErr
}

// Size is the point size of f.
func (f Face) Size() float64 {
	if f < 0 || f >= faceCount {
		return sizes[HUD]
	}
	return sizes[f]
}

// Bitmap returns the rasterised face, built on first use.
func (f Face) Bitmap() font.Face {
	mustBeLoaded()
	mu.Lock()
	defer mu.Unlock()
	if face, ok := bitmaps[f]; ok {
		return face
	}
	face := truetype.NewFace(parsed, &truetype.Options{Size: f.Size()})
	bitmaps[f] = face
	return face
}

// Text returns a text/v2 face, the form ebitenui widgets take.
func (f Face) Text() text.Face {
	mustBeLoaded()
	return &text.GoTextFace{Source: source, Size: f.Size()}
}

func mustBeLoaded() {
	if parsed == nil || source == nil {
		panic("fonts: Load not called")
	}
}
