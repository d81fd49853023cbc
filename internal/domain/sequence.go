package domain

import (
	"strconv"
	"strings"
)

// Sequence is an ordered, immutable list of 32-bit signed integers.
// The zero value is the empty sequence.
type Sequence struct {
	values []int32
}

// NewSequence returns a Sequence holding a copy of values.
func NewSequence(values ...int32) Sequence {
	if len(values) == 0 {
		return Sequence{}
	}
	cp := make([]int32, len(values))
	copy(cp, values)
	return Sequence{values: cp}
}

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s.values) }

// IsEmpty reports whether the sequence has no elements.
func (s Sequence) IsEmpty() bool { return len(s.values) == 0 }

// At returns the i-th element. It panics if i is out of range.
func (s Sequence) At(i int) int32 { return s.values[i] }

// Values returns a copy of the elements.
func (s Sequence) Values() []int32 {
	cp := make([]int32, len(s.values))
	copy(cp, s.values)
	return cp
}

// Equal reports whether s and other hold the same elements in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

// String joins the elements with a single space.
func (s Sequence) String() string {
	var b strings.Builder
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
