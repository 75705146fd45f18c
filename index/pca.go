package index

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Projection is a PCA basis fit once over the catalog embeddings at index
// build time. Queries are projected into the same space before similarity
// scoring. Projection is purely an efficiency device: similarities in the
// projected space approximate full-dimensional ones.
type Projection struct {
	mean       []float64
	components *mat.Dense // dim x k
}

// FitProjection computes a PCA basis over the given vectors, keeping
// min(maxComponents, dimension, len(vectors)) components. At least two
// vectors of equal, non-zero dimension are required.
func FitProjection(vectors [][]float32, maxComponents int) (*Projection, error) {
	n := len(vectors)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vectors, got %d", ErrProjectionFit, n)
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: zero-dimensional vectors", ErrProjectionFit)
	}
	if maxComponents < 1 {
		return nil, fmt.Errorf("%w: maxComponents must be positive", ErrProjectionFit)
	}
	k := min(maxComponents, dim, n)

	data := mat.NewDense(n, dim, nil)
	mean := make([]float64, dim)
	for i, vector := range vectors {
		if len(vector) != dim {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d",
				ErrProjectionFit, i, len(vector), dim)
		}
		for j, x := range vector {
			f := float64(x)
			data.Set(i, j, f)
			mean[j] += f
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	// Center the data before the SVD; the right singular vectors are then
	// the principal axes.
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			data.Set(i, j, data.At(i, j)-mean[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(data, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: svd did not converge", ErrProjectionFit)
	}

	var v mat.Dense
	svd.VTo(&v)
	components := mat.DenseCopyOf(v.Slice(0, dim, 0, k))

	return &Projection{mean: mean, components: components}, nil
}

// Components returns the dimensionality of the projected space.
func (p *Projection) Components() int {
	_, k := p.components.Dims()
	return k
}

// Apply projects a vector onto the PCA basis. Vectors shorter than the
// fitted dimension are zero-padded; longer ones are truncated.
func (p *Projection) Apply(vector []float32) []float32 {
	dim := len(p.mean)
	centered := make([]float64, dim)
	for j := 0; j < dim; j++ {
		var x float64
		if j < len(vector) {
			x = float64(vector[j])
		}
		centered[j] = x - p.mean[j]
	}

	_, k := p.components.Dims()
	in := mat.NewVecDense(dim, centered)
	out := mat.NewVecDense(k, nil)
	out.MulVec(p.components.T(), in)

	projected := make([]float32, k)
	for i := range projected {
		projected[i] = float32(out.AtVec(i))
	}
	return projected
}
