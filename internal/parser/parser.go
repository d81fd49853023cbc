// Package parser turns the text of an input file into a domain.Sequence.
//
// Tokens are maximal runs of non-whitespace characters. Each token must be a
// base-10 signed integer that fits in 32 bits. Empty or all-whitespace input
// yields an empty sequence; the first invalid token aborts the parse.
package parser

import (
	"context"
	"strconv"
	"strings"

	"github.com/bft-labs/numstat/internal/domain"
	"github.com/bft-labs/numstat/internal/ports"
)

// Parser reads input files through a ports.FileReader.
type Parser struct {
	reader ports.FileReader
	logger ports.Logger
}

// New creates a Parser.
func New(reader ports.FileReader, logger ports.Logger) *Parser {
	return &Parser{reader: reader, logger: logger}
}

// Parse reads the whole file at path and parses it.
// It returns *domain.FileError if the file cannot be read and
// *domain.FormatError if any token is not an integer.
func (p *Parser) Parse(ctx context.Context, path string) (domain.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sequence{}, err
	}

	data, err := p.reader.ReadFile(path)
	if err != nil {
		return domain.Sequence{}, &domain.FileError{Path: path, Err: err}
	}

	seq, err := parse(string(data), path)
	if err != nil {
		return domain.Sequence{}, err
	}

	p.logger.Debug("parsed input",
		ports.String("path", path),
		ports.Int("bytes", len(data)),
		ports.Int("count", seq.Len()),
	)
	return seq, nil
}

// ParseText parses in-memory input using the same rules as Parse.
func ParseText(text string) (domain.Sequence, error) {
	return parse(text, "")
}

// Normalize renders seq as its tokens joined by a single space.
// ParseText(Normalize(seq)) always equals seq.
func Normalize(seq domain.Sequence) string {
	return seq.String()
}

func parse(text, path string) (domain.Sequence, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return domain.Sequence{}, nil
	}

	values := make([]int32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return domain.Sequence{}, &domain.FormatError{
				Path:  path,
				Token: tok,
				Index: i,
				Err:   unwrapNumError(err),
			}
		}
		values[i] = int32(v)
	}
	return domain.NewSequence(values...), nil
}

// unwrapNumError strips the *strconv.NumError wrapper, which repeats the token.
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
