package grid

import "fmt"

// RectangularGrid builds a component table replicating one file over a
// width × height × layers block starting at the origin cell.
func RectangularGrid(width, height, layers int, file string) []Component {
	var table []Component
	for z := 0; z < layers; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				table = append(table, Component{
					Name: fmt.Sprintf("Component_%d_%d_%d", x, y, z),
					File: file,
					Pos:  Coord{X: x, Y: y, Z: z},
				})
			}
		}
	}
	return table
}

// AlternatingPattern builds a single-layer checkerboard over the given
// files: cell (x, y) gets files[(x+y) mod len(files)].
func AlternatingPattern(width, height int, files []string) []Component {
	if len(files) == 0 {
		return nil
	}
	var table []Component
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			table = append(table, Component{
				Name: fmt.Sprintf("Component_%d_%d", x, y),
				File: files[(x+y)%len(files)],
				Pos:  Coord{X: x, Y: y},
			})
		}
	}
	return table
}
