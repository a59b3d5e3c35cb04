package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGridRejectsNonSquareAtoms(t *testing.T) {
	features := mat.NewDense(5, 2, nil)
	_, err := Grid(features, 0)
	require.Error(t, err)
}

func TestGridGeometry(t *testing.T) {
	tests := []struct {
		name         string
		l, m, rows   int
		wantH, wantW int
	}{
		{"auto square", 4, 4, 0, 7, 7},
		{"single row", 4, 4, 1, 4, 13},
		{"ragged last row", 4, 3, 2, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Grid(mat.NewDense(tt.l, tt.m, nil), tt.rows)
			require.NoError(t, err)
			h, w := grid.Dims()
			require.Equal(t, tt.wantH, h)
			require.Equal(t, tt.wantW, w)
		})
	}
}

func TestGridNormalizesPerAtom(t *testing.T) {
	features := mat.NewDense(4, 1, []float64{0.5, 0, -0.25, 0.25})
	grid, err := Grid(features, 1)
	require.NoError(t, err)

	// The single 2x2 tile sits at (1,1) with each value divided by
	// the atom's max absolute value, 0.5.
	require.InDelta(t, 1.0, grid.At(1, 1), 1e-12)
	require.InDelta(t, 0.0, grid.At(1, 2), 1e-12)
	require.InDelta(t, -0.5, grid.At(2, 1), 1e-12)
	require.InDelta(t, 0.5, grid.At(2, 2), 1e-12)

	// Borders stay at the background level.
	require.InDelta(t, -1.0, grid.At(0, 0), 1e-12)
	require.InDelta(t, -1.0, grid.At(3, 3), 1e-12)
}

func TestGridZeroAtom(t *testing.T) {
	grid, err := Grid(mat.NewDense(4, 1, nil), 1)
	require.NoError(t, err)

	// An all-zero atom must not divide by zero; its tile renders at
	// the zero level.
	require.InDelta(t, 0.0, grid.At(1, 1), 1e-12)
	require.InDelta(t, 0.0, grid.At(2, 2), 1e-12)
}

func TestImageMapsGrayLevels(t *testing.T) {
	features := mat.NewDense(4, 1, []float64{1, -1, 0, 1})
	img, err := Image(features, 1)
	require.NoError(t, err)

	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())

	// Tile values 1, -1, 0 map to 255, 0, 128; the border -1 maps
	// to 0.
	require.EqualValues(t, 255, img.GrayAt(1, 1).Y)
	require.EqualValues(t, 0, img.GrayAt(2, 1).Y)
	require.EqualValues(t, 128, img.GrayAt(1, 2).Y)
	require.EqualValues(t, 0, img.GrayAt(0, 0).Y)
}

func TestSavePNG(t *testing.T) {
	features := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		-1, 0,
		0, -1,
	})
	path := filepath.Join(t.TempDir(), "atoms.png")

	require.NoError(t, SavePNG(path, features, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Error(t, SavePNG(filepath.Join(t.TempDir(), "bad.png"), mat.NewDense(3, 2, nil), 0))
}
