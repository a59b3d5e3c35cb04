// Package dataset supplies data matrices and random initializations
// for sparse coding runs: a CSV loader for sample data, a seeded
// Gaussian initializer for dictionaries and codes, and a patch
// sampler that cuts training columns out of a grayscale image.
package dataset

import (
	"encoding/csv"
	"fmt"
	"image"
	"os"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LoadCSV reads a numeric CSV file where each record is one sample
// and returns the (L, N) data matrix with samples as columns: L is
// the record length, N the record count. All records must have the
// same length and every field must parse as a float.
func LoadCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %s contains no samples", path)
	}

	l := len(records[0])
	n := len(records)
	x := mat.NewDense(l, n, nil)
	for i, record := range records {
		if len(record) != l {
			return nil, fmt.Errorf("dataset: record %d has %d fields, want %d", i+1, len(record), l)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: record %d field %d: %w", i+1, j+1, err)
			}
			x.Set(j, i, v)
		}
	}

	return x, nil
}

// Randn returns an (rows, cols) matrix of N(0, sigma^2) draws from
// src. The same source state yields the same matrix, so seeded runs
// are reproducible.
func Randn(rows, cols int, sigma float64, src rand.Source) *mat.Dense {
	normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = normal.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

// Patches samples count random size x size patches from img and
// packs them as columns of a (size*size, count) matrix, pixel values
// scaled to [0, 1]. Patch positions are drawn from src.
func Patches(img *image.Gray, size, count int, src rand.Source) (*mat.Dense, error) {
	if size < 1 || count < 1 {
		return nil, fmt.Errorf("dataset: need positive patch size and count, got %d and %d", size, count)
	}
	bounds := img.Bounds()
	if bounds.Dx() < size || bounds.Dy() < size {
		return nil, fmt.Errorf("dataset: image %dx%d is smaller than patch size %d",
			bounds.Dx(), bounds.Dy(), size)
	}

	rng := rand.New(src)
	x := mat.NewDense(size*size, count, nil)
	for i := 0; i < count; i++ {
		left := bounds.Min.X + rng.Intn(bounds.Dx()-size+1)
		top := bounds.Min.Y + rng.Intn(bounds.Dy()-size+1)
		for p := 0; p < size; p++ {
			for q := 0; q < size; q++ {
				x.Set(p*size+q, i, float64(img.GrayAt(left+q, top+p).Y)/255)
			}
		}
	}

	return x, nil
}
