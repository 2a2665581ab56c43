package core

import "strings"

// TextBox is a framed area of text that can be replaced wholesale and
// drawn onto a Screen.
type TextBox struct {
	Frame Rect
	Color Color
	lines []string
}

// NewTextBox creates an empty text box occupying frame.
func NewTextBox(frame Rect) *TextBox {
	return &TextBox{Frame: frame, Color: ColorWhite}
}

// Replace discards the current content and sets text. Newlines split rows.
func (b *TextBox) Replace(text string) {
	b.lines = strings.Split(text, "\n")
}

// Text returns the current content.
func (b *TextBox) Text() string {
	return strings.Join(b.lines, "\n")
}

// Render draws the content clipped to the frame.
func (b *TextBox) Render(dst *Screen) {
	for i, line := range b.lines {
		if i >= b.Frame.H {
			break
		}
		col := 0
		for _, r := range line {
			if col >= b.Frame.W {
				break
			}
			dst.SetColored(b.Frame.X+col, b.Frame.Y+i, r, b.Color)
			col++
		}
	}
}
