// Package aggregate computes reductions over a domain.Sequence.
//
// Every reduction fails with domain.ErrEmptySequence on an empty sequence;
// none of them substitutes a neutral element.
//
// Accumulator widths are part of the contract:
//
//	Min, Max  int32     (same width as the elements)
//	Sum       int64     (exact for fewer than 2^32 elements)
//	Product   *big.Int  (arbitrary precision, never wraps)
package aggregate

import (
	"math/big"

	"github.com/bft-labs/numstat/internal/domain"
)

// Result holds all four reductions of one sequence.
type Result struct {
	Min     int32
	Max     int32
	Sum     int64
	Product *big.Int
}

// Min returns the smallest element.
func Min(seq domain.Sequence) (int32, error) {
	if seq.IsEmpty() {
		return 0, domain.ErrEmptySequence
	}
	m := seq.At(0)
	for i := 1; i < seq.Len(); i++ {
		if v := seq.At(i); v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element.
func Max(seq domain.Sequence) (int32, error) {
	if seq.IsEmpty() {
		return 0, domain.ErrEmptySequence
	}
	m := seq.At(0)
	for i := 1; i < seq.Len(); i++ {
		if v := seq.At(i); v > m {
			m = v
		}
	}
	return m, nil
}

// Sum returns the arithmetic sum of all elements.
func Sum(seq domain.Sequence) (int64, error) {
	if seq.IsEmpty() {
		return 0, domain.ErrEmptySequence
	}
	var s int64
	for i := 0; i < seq.Len(); i++ {
		s += int64(seq.At(i))
	}
	return s, nil
}

// Product returns the arithmetic product of all elements.
func Product(seq domain.Sequence) (*big.Int, error) {
	if seq.IsEmpty() {
		return nil, domain.ErrEmptySequence
	}
	p := big.NewInt(1)
	var x big.Int
	for i := 0; i < seq.Len(); i++ {
		v := seq.At(i)
		if v == 0 {
			return new(big.Int), nil
		}
		p.Mul(p, x.SetInt64(int64(v)))
	}
	return p, nil
}

// All computes every reduction. It fails with domain.ErrEmptySequence on an
// empty sequence.
func All(seq domain.Sequence) (Result, error) {
	if seq.IsEmpty() {
		return Result{}, domain.ErrEmptySequence
	}
	minV, _ := Min(seq)
	maxV, _ := Max(seq)
	sum, _ := Sum(seq)
	product, _ := Product(seq)
	return Result{Min: minV, Max: maxV, Sum: sum, Product: product}, nil
}
