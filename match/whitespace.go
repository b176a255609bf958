package match

import "github.com/zostay/strparse/parser"

// Whitespace returns a Parser that skips any whitespace at the start of the
// input, applies p, and then, only if p succeeded, skips any whitespace that
// follows. The skipped whitespace is part of the Value. Whitespace means the
// ASCII characters matched by IsSpace.
//
// This is the only place whitespace is handled. Every other combinator treats
// whitespace like any other character.
func Whitespace(p parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		lead := leadingBytes(input, IsSpace)

		r := p(input[lead:])
		if !r.Success {
			return parser.Failure(input)
		}

		trail := leadingBytes(r.Residual, IsSpace)
		return consumed(input, r.Residual[trail:])
	}
}
