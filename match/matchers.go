package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/strparse/parser"
)

// consumed returns the successful Result covering everything in input before
// rest. rest must be a suffix of input.
func consumed(input, rest string) parser.Result {
	return parser.Succeed(input, len(input)-len(rest))
}

// Seq returns a Parser that applies each parser in turn, each one starting
// where the last one stopped. It fails, consuming nothing, as soon as any of
// them fails. On success, the Value is everything the parsers consumed
// together.
func Seq(ps ...parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		rest := input
		for _, p := range ps {
			r := p(rest)
			if !r.Success {
				return parser.Failure(input)
			}

			rest = r.Residual
		}

		return consumed(input, rest)
	}
}

// Tokens works like Seq, but each parser is wrapped with Whitespace first, so
// any amount of whitespace is allowed around every token.
func Tokens(ps ...parser.Parser) parser.Parser {
	return Seq(slices.Map(ps, Whitespace)...)
}

// Either returns a Parser that tries each parser against the same input and
// returns the first success. If none succeed, the failure of the last one is
// returned.
func Either(ps ...parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		r := parser.Failure(input)
		for _, p := range ps {
			r = p(input)
			if r.Success {
				return r
			}
		}

		return r
	}
}

// Longest returns a Parser that tries all the given parsers against the same
// input and keeps the success that consumed the most. The earliest parser wins
// a tie. It fails if none of them succeed.
func Longest(ps ...parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		best := parser.Failure(input)
		for _, p := range ps {
			r := p(input)
			if !r.Success {
				continue
			}

			if !best.Success || r.Length() > best.Length() {
				best = r
			}
		}

		return best
	}
}

// Many0 returns a Parser that applies p as many times as possible, one after
// another. It always succeeds, possibly consuming nothing.
//
// p has to make progress each time it succeeds. A success that consumes
// nothing, such as from Success or Many0 itself, ends the repetition at that
// point instead of looping forever.
func Many0(p parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		rest := input
		for {
			r := p(rest)
			if !r.Success || len(r.Residual) >= len(rest) {
				break
			}

			rest = r.Residual
		}

		return consumed(input, rest)
	}
}

// Many1 works like Many0, but fails unless p consumed something.
func Many1(p parser.Parser) parser.Parser {
	many := Many0(p)
	return func(input string) parser.Result {
		r := many(input)
		if r.Length() == 0 {
			return parser.Failure(input)
		}

		return r
	}
}

// TakeBetween returns a Parser that applies p up to max times, stopping early
// at the first failure. It succeeds if p succeeded at least min times. When
// the range is empty (max < min) or min is negative, the returned Parser fails
// every input without ever calling p.
func TakeBetween(min, max int, p parser.Parser) parser.Parser {
	if min < 0 || max < min {
		return Fail
	}

	return func(input string) parser.Result {
		rest := input
		count := 0
		for count < max {
			r := p(rest)
			if !r.Success {
				break
			}

			count++
			rest = r.Residual
		}

		if count < min {
			return parser.Failure(input)
		}

		return consumed(input, rest)
	}
}

// Take returns a Parser that applies p exactly n times.
func Take(n int, p parser.Parser) parser.Parser {
	return TakeBetween(n, n, p)
}

// ManyWithSep returns a Parser that matches elem as many times as possible,
// provided that sep matches in between each one. A separator that is not
// followed by another elem is left in the residual. It fails if fewer than
// min elems match.
//
// A separator and elem pair that together consume nothing ends the repetition.
func ManyWithSep(min int, elem, sep parser.Parser) parser.Parser {
	return func(input string) parser.Result {
		r := elem(input)
		if !r.Success {
			if min > 0 {
				return parser.Failure(input)
			}
			return consumed(input, input)
		}

		rest := r.Residual
		count := 1
		for {
			s := sep(rest)
			if !s.Success {
				break
			}

			e := elem(s.Residual)
			if !e.Success || len(e.Residual) >= len(rest) {
				break
			}

			count++
			rest = e.Residual
		}

		if count < min {
			return parser.Failure(input)
		}

		return consumed(input, rest)
	}
}

// SeparatedBy returns a Parser that matches one or more elems with exactly one
// sep between each pair. No trailing sep is required.
//
//	list := match.SeparatedBy(match.String(","), match.Digits)
//	list("1,2,3]") // ok("1,2,3", "]")
func SeparatedBy(sep, elem parser.Parser) parser.Parser {
	return ManyWithSep(1, elem, sep)
}
