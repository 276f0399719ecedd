// Package assets loads the textures the game draws with.
//
// A texture is a text sprite: one rune per texel, with spaces treated as
// transparent. The renderer scales textures to the size of the entity they
// cover, the same way a bitmap would be stretched onto a quad.
package assets

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyTexture is returned when a sprite file contains no visible rows.
var ErrEmptyTexture = errors.New("assets: empty texture")

// Transparent is the texel value that is never drawn.
const Transparent = ' '

// Texture is an immutable grid of runes.
type Texture struct {
	width  int
	height int
	texels [][]rune
}

// Parse builds a texture from sprite file contents.
// Trailing blank lines are dropped and ragged rows are padded with
// transparent texels.
func Parse(data []byte) (*Texture, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyTexture
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	t := &Texture{width: width, height: len(lines), texels: make([][]rune, len(lines))}
	for y, l := range lines {
		row := make([]rune, width)
		for x := range row {
			row[x] = Transparent
		}
		copy(row, []rune(l))
		t.texels[y] = row
	}
	return t, nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.height
}

// At returns the texel at (x, y), or Transparent outside the texture.
func (t *Texture) At(x, y int) rune {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Transparent
	}
	return t.texels[y][x]
}

// Sample returns the texel nearest to normalized coordinates (u, v),
// where (0, 0) is the top-left corner and (1, 1) the bottom-right.
func (t *Texture) Sample(u, v float64) rune {
	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x == t.width {
		x--
	}
	if y == t.height {
		y--
	}
	return t.At(x, y)
}
