package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/yalue/image_utils"
)

var (
	wallColor  = color.RGBA{30, 30, 40, 255}
	floorColor = color.RGBA{245, 245, 240, 255}
	startColor = color.RGBA{40, 180, 70, 255}
	goalColor  = color.RGBA{100, 120, 255, 255}
	bonusColor = color.RGBA{240, 190, 40, 255}
)

// mazeImage rasterizes a maze on demand. Walls are drawn on the left and top
// edge of every cell, plus one closing line on the right and bottom.
type mazeImage struct {
	m    *maze.Maze
	cell int // cell is the side of one cell in pixels, wall included.
	wall int
}

func (mi mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (mi mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, mi.m.Width()*mi.cell+mi.wall, mi.m.Height()*mi.cell+mi.wall)
}

func (mi mazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(mi.Bounds()) {
		return color.Transparent
	}
	cx, cy := x/mi.cell, y/mi.cell
	onVertical := x%mi.cell < mi.wall
	onHorizontal := y%mi.cell < mi.wall

	// Lines past the last column or row address cells out of bounds, which read as walled.
	switch {
	case onVertical && onHorizontal:
		return wallColor
	case onVertical && mi.m.HasWall(cx, cy, maze.Left):
		return wallColor
	case onHorizontal && mi.m.HasWall(cx, cy, maze.Top):
		return wallColor
	}
	return floorColor
}

// cellOrigin returns the top-left pixel inside the walls of a cell.
func (mi mazeImage) cellOrigin(c maze.Position) image.Point {
	return image.Pt(c.X*mi.cell+mi.wall, c.Y*mi.cell+mi.wall)
}

func square(side int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// render draws the maze and, when placement is non-nil, the spawn, goal and bonus markers.
func render(m *maze.Maze, placement *game.Placement, cell, wall int) (*image.RGBA, error) {
	mi := mazeImage{m: m, cell: cell, wall: wall}
	out := image_utils.NewCompositeImage()
	if e := out.AddImage(image_utils.ToRGBA(mi), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("error setting base maze image: %w", e)
	}
	if placement == nil {
		return image_utils.ToRGBA(out), nil
	}

	inner := cell - wall
	marker := max(inner*3/4, 1)
	pad := (inner - marker) / 2
	at := func(c maze.Position) image.Point {
		return mi.cellOrigin(c).Add(image.Pt(pad, pad))
	}

	start := image_utils.ResizeImage(image_utils.RightArrow(startColor), marker, marker)
	if e := out.AddImage(start, at(placement.Player)); e != nil {
		return nil, fmt.Errorf("error adding start marker: %w", e)
	}
	goal := image_utils.ResizeImage(image_utils.DownArrow(goalColor), marker, marker)
	if e := out.AddImage(goal, at(placement.Goal)); e != nil {
		return nil, fmt.Errorf("error adding goal marker: %w", e)
	}
	for _, b := range placement.Bonuses {
		if e := out.AddImage(square(max(marker/2, 1), bonusColor), at(b).Add(image.Pt(marker/4, marker/4))); e != nil {
			return nil, fmt.Errorf("error adding bonus marker: %w", e)
		}
	}
	return image_utils.ToRGBA(out), nil
}
