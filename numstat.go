// Package numstat computes minimum, maximum, sum and product of the
// integers in a text file.
//
// Example usage:
//
//	rep, err := numstat.Compute(context.Background(), "numbers.txt")
//	if errors.Is(err, numstat.ErrEmptySequence) {
//	    log.Fatal("no numbers in file")
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Min, rep.Max, rep.Sum, rep.Product)
package numstat

import (
	"context"
	"math/big"

	fsAdapter "github.com/bft-labs/numstat/internal/adapters/fs"
	logAdapter "github.com/bft-labs/numstat/internal/adapters/log"
	"github.com/bft-labs/numstat/internal/aggregate"
	"github.com/bft-labs/numstat/internal/app"
	"github.com/bft-labs/numstat/internal/domain"
	"github.com/bft-labs/numstat/internal/parser"
)

// Sequence is an ordered, immutable list of 32-bit integers.
type Sequence = domain.Sequence

// Report holds the statistics computed for one input file.
type Report = app.Report

// FileError reports that the input file could not be read.
type FileError = domain.FileError

// FormatError reports a token that is not a base-10 32-bit integer.
type FormatError = domain.FormatError

// ErrEmptySequence is returned by every aggregation on an empty sequence.
var ErrEmptySequence = domain.ErrEmptySequence

// NewSequence returns a Sequence holding a copy of values.
func NewSequence(values ...int32) Sequence {
	return domain.NewSequence(values...)
}

// Parse reads the file at path and returns its integers.
func Parse(ctx context.Context, path string) (Sequence, error) {
	return newParser().Parse(ctx, path)
}

// ParseText parses in-memory text with the same rules as Parse.
func ParseText(text string) (Sequence, error) {
	return parser.ParseText(text)
}

// Min returns the smallest element of seq.
func Min(seq Sequence) (int32, error) { return aggregate.Min(seq) }

// Max returns the largest element of seq.
func Max(seq Sequence) (int32, error) { return aggregate.Max(seq) }

// Sum returns the sum of seq, accumulated in 64 bits.
func Sum(seq Sequence) (int64, error) { return aggregate.Sum(seq) }

// Product returns the product of seq with arbitrary precision.
func Product(seq Sequence) (*big.Int, error) { return aggregate.Product(seq) }

// Compute parses path and computes all four statistics.
func Compute(ctx context.Context, path string) (Report, error) {
	return app.NewRunner(newParser(), logAdapter.NewNoopLogger()).Run(ctx, path)
}

func newParser() *parser.Parser {
	return parser.New(fsAdapter.NewOSFileReader(), logAdapter.NewNoopLogger())
}
