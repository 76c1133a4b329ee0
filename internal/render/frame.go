package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lgbarn/solitaire-go/internal/board"
	"github.com/lgbarn/solitaire-go/internal/solver"
)

// Frame colors. Tiles are drawn programmatically so no image assets ship
// with the tool: a wood-tone background, glassy pegs, darker holes, and an
// amber ring marking the source and destination of the current move.
var (
	woodColor      = color.RGBA{R: 0x9a, G: 0x66, B: 0x33, A: 0xff}
	woodDarkColor  = color.RGBA{R: 0x8a, G: 0x58, B: 0x2a, A: 0xff}
	pegColor       = color.RGBA{R: 0xd8, G: 0xe6, B: 0xf0, A: 0xff}
	pegEdgeColor   = color.RGBA{R: 0x90, G: 0xa8, B: 0xbc, A: 0xff}
	holeColor      = color.RGBA{R: 0x46, G: 0x2b, B: 0x12, A: 0xff}
	highlightColor = color.RGBA{R: 0xf0, G: 0xb4, B: 0x28, A: 0xff}
)

// palette is the full color set a frame can contain, shared by every GIF
// frame so all frames encode against the same palette.
var palette = color.Palette{
	woodColor,
	woodDarkColor,
	pegColor,
	pegEdgeColor,
	holeColor,
	highlightColor,
}

// frameSize returns the pixel dimensions for a board at the given tile size.
func frameSize(b *board.Board, tile int) (w, h int) {
	return (b.Cols() - 2*board.Border) * tile, (b.Rows() - 2*board.Border) * tile
}

// composeFrame draws one solution step as an image. When highlight is set
// the move's source and destination tiles are ringed; the final step has a
// Still move and nothing to mark.
func composeFrame(step solver.Step, tile int, highlight bool) *image.RGBA {
	b := step.Board
	w, h := frameSize(b, tile)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Checker the background slightly so tiles read as a grid.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/tile+y/tile)%2 == 0 {
				img.Set(x, y, woodColor)
			} else {
				img.Set(x, y, woodDarkColor)
			}
		}
	}

	for row, cells := range b.Playable() {
		for col, c := range cells {
			switch c {
			case board.Peg:
				drawDisc(img, col*tile, row*tile, tile, pegColor, pegEdgeColor)
			case board.Hole:
				drawDisc(img, col*tile, row*tile, tile, holeColor, holeColor)
			}
		}
	}

	if highlight && step.Move.Dir != board.Still {
		fromRow, fromCol := b.RowCol(step.Move.From)
		toRow, toCol := b.RowCol(step.Move.To)
		drawRing(img, (fromCol-board.Border)*tile, (fromRow-board.Border)*tile, tile)
		drawRing(img, (toCol-board.Border)*tile, (toRow-board.Border)*tile, tile)
	}

	return img
}

// drawDisc fills a circle inside the tile whose top-left corner is (x0, y0),
// with a one-tenth-tile edge band in the edge color.
func drawDisc(img *image.RGBA, x0, y0, tile int, fill, edge color.Color) {
	center := float64(tile) / 2
	outer := center * 0.8
	inner := outer - float64(tile)/10
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d2 := dx*dx + dy*dy
			if d2 <= inner*inner {
				img.Set(x0+x, y0+y, fill)
			} else if d2 <= outer*outer {
				img.Set(x0+x, y0+y, edge)
			}
		}
	}
}

// drawRing draws the highlight ring along the edge of a tile.
func drawRing(img *image.RGBA, x0, y0, tile int) {
	center := float64(tile) / 2
	outer := center * 0.95
	inner := outer - float64(tile)/12
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d2 := dx*dx + dy*dy
			if d2 <= outer*outer && d2 >= inner*inner {
				img.Set(x0+x, y0+y, highlightColor)
			}
		}
	}
}

// toPaletted converts a frame to the shared palette for GIF encoding.
func toPaletted(img *image.RGBA) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette)
	draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)
	return p
}
