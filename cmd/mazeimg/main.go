// This defines a basic executable for writing a generated maze to a PNG file.
// With -level it draws that level of a run seed, including the item placement
// a player would see; otherwise it draws a bare maze of the given size.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/maze"
)

func run() int {
	var width, height, level, cellPixels, wallPixels int
	var ratio float64
	var seed int64
	var outFilename string
	var ascii bool
	flag.IntVar(&width, "width", 20, "The width of the maze, in cells.")
	flag.IntVar(&height, "height", 20, "The height of the maze, in cells.")
	flag.Float64Var(&ratio, "ratio", 0, "Fraction of extra wall removals, in [0, 1).")
	flag.IntVar(&level, "level", 0, "If positive, draw this level of the run seed instead.")
	flag.Int64Var(&seed, "seed", -1, "Random seed; negative uses the clock.")
	flag.IntVar(&cellPixels, "cell_pixels", 16, "Side of one cell in pixels.")
	flag.IntVar(&wallPixels, "wall_pixels", 2, "Wall thickness in pixels.")
	flag.StringVar(&outFilename, "output_file", "", "The .png file to write.")
	flag.BoolVar(&ascii, "ascii", false, "Also print the maze as text.")
	flag.Parse()

	if outFilename == "" || wallPixels < 1 || cellPixels <= wallPixels {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	var m *maze.Maze
	var placement *game.Placement
	if level > 0 {
		s, e := game.New(seed, level, game.DefaultConfig())
		if e != nil {
			fmt.Printf("Failed building level %d: %s\n", level, e)
			return 1
		}
		l := s.Layout()
		m = s.Maze()
		placement = &game.Placement{Player: l.Player, Goal: l.Goal, Bonuses: l.Bonuses}
		fmt.Printf("Level %d (%s): %dx%d, ratio %.2f, %ds.\n", l.Level, l.Name, l.Width, l.Height, l.RelaxationRatio, l.TimeLimit)
	} else {
		var e error
		m, e = maze.New(width, height, ratio, maze.WithSeed(seed))
		if e == nil {
			e = m.Generate()
		}
		if e != nil {
			fmt.Printf("Failed generating maze: %s\n", e)
			return 1
		}
	}

	fmt.Printf("Generated %dx%d maze, seed %d, %d passages, %d extra walls removed.\n",
		m.Width(), m.Height(), seed, m.Passages(), m.Relaxed())
	if placement != nil {
		fmt.Printf("Spawn to goal: %d cells.\n", m.PathLength(placement.Player, placement.Goal))
	} else {
		far := maze.Position{X: m.Width() - 1, Y: m.Height() - 1}
		fmt.Printf("Corner to corner: %d cells.\n", m.PathLength(maze.Position{}, far))
	}
	if ascii {
		fmt.Println(m.String())
	}

	pic, e := render(m, placement, cellPixels, wallPixels)
	if e != nil {
		fmt.Printf("Error drawing maze: %s\n", e)
		return 1
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	if e = png.Encode(f, pic); e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
