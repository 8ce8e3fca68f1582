// Package vector provides an immutable brute-force vector index for nearest-neighbor search.
package vector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/northbeam/mitsuke/pkg/utils"
)

var (
	// ErrEmptyIndex is returned when an index is built from no vectors.
	ErrEmptyIndex = errors.New("vector index requires at least one vector")
	// ErrDimensionMismatch is returned when a vector's length disagrees with the index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// Neighbor is a single nearest-neighbor hit.
type Neighbor struct {
	ID       int64
	Distance float64
}

// FlatIndex is an immutable brute-force Euclidean index. Vectors are
// L2-normalized on construction so that 1 - distance approximates cosine
// similarity; the converted score can still dip below zero for opposed
// vectors, which downstream threshold filtering handles. Built once;
// concurrent reads need no coordination.
type FlatIndex struct {
	dimensions int
	ids        []int64
	vectors    [][]float32
}

// NewFlatIndex builds an index over the given (id, vector) pairs. The index
// dimension is taken from the first vector; any disagreeing vector fails the
// build with ErrDimensionMismatch. An empty input fails with ErrEmptyIndex.
func NewFlatIndex(ids []int64, vectors [][]float32) (*FlatIndex, error) {
	if len(vectors) == 0 {
		return nil, ErrEmptyIndex
	}
	if len(ids) != len(vectors) {
		return nil, fmt.Errorf("ids and vectors length mismatch: %d vs %d", len(ids), len(vectors))
	}
	dims := len(vectors[0])
	if dims == 0 {
		return nil, fmt.Errorf("%w: first vector is empty", ErrDimensionMismatch)
	}
	idx := &FlatIndex{
		dimensions: dims,
		ids:        make([]int64, len(ids)),
		vectors:    make([][]float32, len(vectors)),
	}
	copy(idx.ids, ids)
	for i, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, expected %d", ErrDimensionMismatch, i, len(v), dims)
		}
		vec := make([]float32, dims)
		copy(vec, v)
		utils.NormalizeL2(vec)
		idx.vectors[i] = vec
	}
	return idx, nil
}

// Search returns the k nearest vectors by Euclidean distance, ascending.
// Equal distances keep insertion order. Result length is min(k, Size()).
// The query is normalized before measuring.
func (f *FlatIndex) Search(query []float32, k int) ([]Neighbor, error) {
	if len(query) != f.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, expected %d", ErrDimensionMismatch, len(query), f.dimensions)
	}
	if k <= 0 {
		return nil, nil
	}
	q := make([]float32, f.dimensions)
	copy(q, query)
	utils.NormalizeL2(q)

	neighbors := make([]Neighbor, len(f.ids))
	for i, vec := range f.vectors {
		neighbors[i] = Neighbor{ID: f.ids[i], Distance: utils.EuclideanDistance(q, vec)}
	}
	sort.SliceStable(neighbors, func(i, j int) bool { return neighbors[i].Distance < neighbors[j].Distance })
	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

// Size returns the number of vectors in the index.
func (f *FlatIndex) Size() int {
	return len(f.ids)
}

// Dimensions returns the index dimension.
func (f *FlatIndex) Dimensions() int {
	return f.dimensions
}
