package parser

// Parser is the type for parsing functions. A Parser accepts the input to
// start matching from and returns a Result describing how much of it was
// consumed.
//
// Every Parser must be pure: the same input always yields the same Result and
// nothing is retained between calls. This makes any Parser, including one
// built from many nested combinators, safe to call from many goroutines at
// once.
//
// If the parse succeeds, the returned Value and Residual concatenate back to
// the input. A Parser may succeed while consuming nothing.
//
// If the parse fails, the Result must be Failure(input). Failures never
// consume input.
type Parser func(input string) Result

// Parse runs the parser against input. It is the same as calling p directly,
// but reads better at the end of a long chain of combinators.
func (p Parser) Parse(input string) Result {
	return p(input)
}
