// Package strparse is a small parser combinator library for matching strings.
//
// Everything is built from one contract, parser.Parser: a pure function that
// takes the input and returns a parser.Result. A successful Result splits the
// input into the consumed Value and the unconsumed Residual. A failed Result
// consumes nothing and returns the whole input as the Residual.
//
// The match package provides the primitive parsers (match.String,
// match.Digit, match.Letter, match.EOF, ...) and the combinators that build
// bigger parsers out of smaller ones (match.Seq, match.Either, match.Many0,
// match.TakeBetween, match.SeparatedBy, ...). Whitespace is only ever skipped
// by match.Whitespace and match.Tokens, so a grammar can be written without any
// whitespace bookkeeping:
//
//	date := match.Tokens(
//		month,
//		match.TakeBetween(1, 2, match.Digit),
//		match.Optional(","),
//		match.Either(match.Take(4, match.Digit), match.Take(2, match.Digit)),
//		match.EOF,
//	)
//
// Choice is committed. Once match.Either finds an alternative that works it
// never goes back to try another, even if a later part of the grammar fails.
// Put longer alternatives first or use match.Longest.
//
// To see what a grammar is doing, wrap any part of it with parser.Traced.
package strparse
