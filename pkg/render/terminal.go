package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

var _ uv.Drawable = (*Screen)(nil)

// Draw copies the framebuffer into an ultraviolet screen as half-block
// cells, so a Screen can be handed straight to (*uv.Terminal).Draw.
// Cell (col, row) of area shows framebuffer rows 2*row and 2*row+1.
func (s *Screen) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= s.fb.Height {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= s.fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: HalfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: s.fb.GetPixel(x, topY),
					Bg: s.fb.GetPixel(x, botY),
				},
			})
		}
	}
}
