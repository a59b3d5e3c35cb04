// Package display renders a learned dictionary as a tiled grayscale
// grid, one square patch per atom.
//
// Atom columns of length L are interpreted as flattened sqrt(L) x
// sqrt(L) patches, renormalized per atom to [-1, 1] and laid out on a
// one-pixel border at the minimum gray level. Rendering never touches
// the optimizer: it consumes a finished dictionary.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// border is the gap, in patch pixels, around and between tiles.
const border = 1

// Grid tiles the atom columns of features into a single matrix with
// values in [-1, 1]. Each atom is scaled by its own max absolute
// value; background and borders sit at -1.
//
// rows picks the number of tile rows; rows <= 0 chooses an
// approximately square layout, ceil(sqrt(M)) rows for M atoms.
// Returns an error when the atom length is not a perfect square.
func Grid(features mat.Matrix, rows int) (*mat.Dense, error) {
	l, m := features.Dims()
	psize := int(math.Sqrt(float64(l)))
	if psize*psize != l {
		return nil, fmt.Errorf("display: atom length %d is not a perfect square", l)
	}

	if rows <= 0 {
		rows = int(math.Ceil(math.Sqrt(float64(m))))
	}
	cols := (m + rows - 1) / rows

	height := border + rows*(psize+border)
	width := border + cols*(psize+border)
	grid := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Set(y, x, -1)
		}
	}

	for i := 0; i < m; i++ {
		var absMax float64
		for j := 0; j < l; j++ {
			absMax = math.Max(absMax, math.Abs(features.At(j, i)))
		}
		if absMax == 0 {
			absMax = 1
		}

		top := border + (i/cols)*(psize+border)
		left := border + (i%cols)*(psize+border)
		for p := 0; p < psize; p++ {
			for q := 0; q < psize; q++ {
				grid.Set(top+p, left+q, features.At(p*psize+q, i)/absMax)
			}
		}
	}

	return grid, nil
}

// Image renders the tiled grid to an 8-bit grayscale buffer, mapping
// [-1, 1] linearly onto [0, 255]. This is the render-to-buffer
// operation; the caller owns the returned image.
func Image(features mat.Matrix, rows int) (*image.Gray, error) {
	grid, err := Grid(features, rows)
	if err != nil {
		return nil, err
	}

	height, width := grid.Dims()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := grid.At(y, x)
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round((v + 1) / 2 * 255))})
		}
	}

	return img, nil
}

// SavePNG renders the grid and writes it to path as a PNG file.
func SavePNG(path string, features mat.Matrix, rows int) error {
	img, err := Image(features, rows)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("display: encode %s: %w", path, err)
	}
	return nil
}
