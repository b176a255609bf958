package match

import (
	"strings"

	"github.com/zostay/strparse/parser"
)

// Success always succeeds without consuming any input. Never pass it, or any
// other parser that can succeed on nothing, where forward progress is needed;
// see Many0.
func Success(input string) parser.Result {
	return parser.Succeed(input, 0)
}

// Fail always fails.
func Fail(input string) parser.Result {
	return parser.Failure(input)
}

// EOF succeeds only on empty input. It never consumes anything.
func EOF(input string) parser.Result {
	if len(input) > 0 {
		return parser.Failure(input)
	}
	return parser.Succeed(input, 0)
}

// String returns a Parser that succeeds when the input starts with target. The
// comparison is exact and case-sensitive.
func String(target string) parser.Parser {
	return func(input string) parser.Result {
		if !strings.HasPrefix(input, target) {
			return parser.Failure(input)
		}
		return parser.Succeed(input, len(target))
	}
}

// Maybe returns a Parser that returns the result of p when it succeeds and an
// empty success otherwise.
func Maybe(p parser.Parser) parser.Parser {
	return Either(p, Success)
}

// Optional returns a Parser that matches target if it is there and succeeds
// without consuming anything if it is not.
func Optional(target string) parser.Parser {
	return Maybe(String(target))
}

var (
	// Digit matches one ASCII decimal digit.
	Digit = OneByte(IsDigit)

	// Letter matches one ASCII letter.
	Letter = OneByte(IsLetter)

	// Alphanumeric matches one ASCII digit or letter.
	Alphanumeric = Either(Digit, Letter)

	Digits        = Many1(Digit)
	Letters       = Many1(Letter)
	Alphanumerics = Many1(Alphanumeric)
)
