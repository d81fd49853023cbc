package app

import (
	"context"
	"math/big"
	"time"

	"github.com/bft-labs/numstat/internal/aggregate"
	"github.com/bft-labs/numstat/internal/domain"
	"github.com/bft-labs/numstat/internal/ports"
)

// SequenceParser produces a sequence from an input path.
type SequenceParser interface {
	Parse(ctx context.Context, path string) (domain.Sequence, error)
}

// Report holds the statistics computed for one input file.
type Report struct {
	Path    string
	Count   int
	Min     int32
	Max     int32
	Sum     int64
	Product *big.Int
}

// Runner parses an input file and computes its statistics.
type Runner struct {
	parser SequenceParser
	logger ports.Logger
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(parser SequenceParser, logger ports.Logger) *Runner {
	return &Runner{parser: parser, logger: logger}
}

// Run parses path once and computes minimum, maximum, sum and product.
// Errors are returned unchanged: *domain.FileError, *domain.FormatError or
// domain.ErrEmptySequence.
func (r *Runner) Run(ctx context.Context, path string) (Report, error) {
	start := time.Now()

	seq, err := r.parser.Parse(ctx, path)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Path: path, Count: seq.Len()}
	if rep.Min, err = aggregate.Min(seq); err != nil {
		return Report{}, err
	}
	if rep.Max, err = aggregate.Max(seq); err != nil {
		return Report{}, err
	}
	if rep.Sum, err = aggregate.Sum(seq); err != nil {
		return Report{}, err
	}
	if rep.Product, err = aggregate.Product(seq); err != nil {
		return Report{}, err
	}

	r.logger.Info("statistics computed",
		ports.String("path", path),
		ports.Int("count", rep.Count),
		ports.Duration("took", time.Since(start)),
	)
	return rep, nil
}
