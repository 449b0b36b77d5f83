package fonts

import (
	"fmt"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load registers every face from the TTF at name in fsys. Without it, faces fall
// back to the built-in bitmap font.
func Load(fsys fs.FS, name string) error {
	ttf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", name, err)
	}
	if err := LoadFontWithSize(HUD, ttf, 18); err != nil {
		return err
	}
	return LoadFontWithSize(Title, ttf, 48)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	if f, ok := fonts[name]; ok {
		return f
	}
	return basicfont.Face7x13
}
