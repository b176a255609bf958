package parser

import "fmt"

// Result is the outcome of running a Parser against some input. On success,
// Value holds the prefix of the input that was consumed and Residual holds the
// rest. On failure, Value is empty and Residual is the input, untouched.
type Result struct {
	Success  bool   // true when the parser matched
	Value    string // the consumed prefix of the input
	Residual string // the input that has not been consumed
}

// Succeed returns a successful Result that consumes the first n bytes of
// input.
func Succeed(input string, n int) Result {
	return Result{
		Success:  true,
		Value:    input[:n],
		Residual: input[n:],
	}
}

// Failure returns the failing Result for the given input. Failures never
// consume input.
func Failure(input string) Result {
	return Result{Residual: input}
}

// Length returns the number of bytes consumed.
func (r Result) Length() int {
	return len(r.Value)
}

func (r Result) String() string {
	if !r.Success {
		return fmt.Sprintf("fail(%q)", r.Residual)
	}
	return fmt.Sprintf("ok(%q, %q)", r.Value, r.Residual)
}

// Sound reports whether r is a Result some parser could legally have returned
// for input. A success must split input into Value and Residual exactly. A
// failure must have an empty Value and return all of input as Residual.
func Sound(input string, r Result) bool {
	if !r.Success {
		return r.Value == "" && r.Residual == input
	}

	return len(r.Value)+len(r.Residual) == len(input) &&
		input[:len(r.Value)] == r.Value &&
		input[len(r.Value):] == r.Residual
}
