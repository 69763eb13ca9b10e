package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MaxIndices returns the indices of every maximal element, in order.
func MaxIndices[T constraints.Ordered](values []T) []int {
	indices := []int{}
	for i, v := range values {
		switch {
		case len(indices) == 0 || v > values[indices[0]]:
			indices = append(indices[:0], i)
		case v == values[indices[0]]:
			indices = append(indices, i)
		}
	}
	return indices
}

// Choice picks a uniformly random element; it panics on an empty slice.
func Choice[T any](items []T, r *rand.Rand) T {
	if len(items) == 0 {
		panic("choice from an empty slice")
	}
	return items[r.Intn(len(items))]
}
