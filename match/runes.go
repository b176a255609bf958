package match

import (
	"unicode/utf8"

	"github.com/zostay/strparse/parser"
)

// RunePredicate is a function that returns true if it matches a single rune or
// false if it does not.
type RunePredicate func(r rune) bool

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are also
// matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that matches
// any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does not
// match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ManyRunes returns a Parser that greedily consumes the longest leading run of
// runes matching any of the given predicates. It fails unless at least one
// rune matches. Invalid UTF-8 is read one byte at a time as utf8.RuneError.
func ManyRunes(preds ...RunePredicate) parser.Parser {
	pred := AnyRunes(preds...)
	return func(input string) parser.Result {
		n := 0
		for n < len(input) {
			r, size := utf8.DecodeRuneInString(input[n:])
			if !pred(r) {
				break
			}
			n += size
		}

		if n == 0 {
			return parser.Failure(input)
		}

		return parser.Succeed(input, n)
	}
}

// Any returns a Parser that consumes the longest leading run of characters
// contained in charset. It fails if the first character is not in charset.
//
//	vowels := match.Any("aeiou")
//	vowels("audio") // ok("au", "dio")
func Any(charset string) parser.Parser {
	return ManyRunes(RunesInSet([]rune(charset)...))
}

// AnyExcept returns a Parser that consumes the longest leading run of
// characters NOT contained in charset. It fails if the first character is in
// charset or the input is empty.
//
//	consonants := match.AnyExcept("aeiou")
//	consonants("snow") // ok("sn", "ow")
func AnyExcept(charset string) parser.Parser {
	return ManyRunes(NotRunes(RunesInSet([]rune(charset)...)))
}
