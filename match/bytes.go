package match

import "github.com/zostay/strparse/parser"

// BytePredicate is a function that returns true if it matches a single byte or
// false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are also
// matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that matches
// any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does not
// match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a byte that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		return this(b) && !that(b)
	}
}

// The ASCII character classes. Nothing outside of ASCII is classified.
var (
	IsDigit  = BytesInRange('0', '9')
	IsLetter = AnyBytes(BytesInRange('a', 'z'), BytesInRange('A', 'Z'))
	IsSpace  = BytesInSet(' ', '\t', '\n', '\v', '\f', '\r')
)

// OneByte returns a Parser that consumes exactly one byte if the first byte of
// the input matches any of the given predicates. It fails on empty input.
func OneByte(preds ...BytePredicate) parser.Parser {
	pred := AnyBytes(preds...)
	return func(input string) parser.Result {
		if len(input) == 0 || !pred(input[0]) {
			return parser.Failure(input)
		}

		return parser.Succeed(input, 1)
	}
}

// leadingBytes returns the length of the longest prefix of s made up of bytes
// matching pred.
func leadingBytes(s string, pred BytePredicate) int {
	n := 0
	for n < len(s) && pred(s[n]) {
		n++
	}
	return n
}
