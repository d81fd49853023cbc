// Package domain contains the core value types and errors for numstat.
//
// This package has no dependencies on infrastructure concerns (file system,
// logging, CLI) and contains only the data the parser produces and the
// aggregator consumes.
//
// # Types
//
//   - [Sequence]: the ordered, immutable list of integers parsed from one input file
//   - [FileError]: the input path could not be read
//   - [FormatError]: a token in the input is not a base-10 integer
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
