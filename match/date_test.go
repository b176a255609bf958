package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/strparse/match"
	"github.com/zostay/strparse/parser"
)

var month = match.Either(
	match.String("Jan"), match.String("Feb"), match.String("Mar"),
	match.String("Apr"), match.String("May"), match.String("Jun"),
	match.String("Jul"), match.String("Aug"), match.String("Sep"),
	match.String("Oct"), match.String("Nov"), match.String("Dec"),
)

func dateGrammar(year parser.Parser) parser.Parser {
	return match.Tokens(
		month,
		match.TakeBetween(1, 2, match.Digit),
		match.Optional(","),
		year,
		match.EOF,
	)
}

func TestDateGrammar(t *testing.T) {
	date := dateGrammar(match.Either(
		match.Take(4, match.Digit),
		match.Take(2, match.Digit),
	))

	runParseCases(t, []parseCase{
		{"comma four digit year", date, "Jan 12, 2022", ok("Jan 12, 2022", "")},
		{"two digit year", date, "Oct 2, 22", ok("Oct 2, 22", "")},
		{"no comma", date, "Aug 8 2022", ok("Aug 8 2022", "")},
		{"extra whitespace", date, "  Dec 31 , 99  ", ok("  Dec 31 , 99  ", "")},
		{"three digit year", date, "Aug 8 202", fail("Aug 8 202")},
		{"three digit day", date, "Jan 123, 2022", fail("Jan 123, 2022")},
		{"unknown month", date, "Foo 12, 2022", fail("Foo 12, 2022")},
		{"lowercase month", date, "jan 12, 2022", fail("jan 12, 2022")},
		{"trailing text", date, "Jan 12, 2022 AD", fail("Jan 12, 2022 AD")},
	})
}

func TestDateGrammarLongestYear(t *testing.T) {
	date := dateGrammar(match.Longest(
		match.Take(2, match.Digit),
		match.Take(4, match.Digit),
	))

	assert.Equal(t, ok("Jan 12, 2022", ""), date("Jan 12, 2022"))
	assert.Equal(t, ok("Oct 2, 22", ""), date("Oct 2, 22"))
}

// Either commits to the first alternative that succeeds. When a later token
// fails, nothing goes back to try the next alternative.
func TestDateGrammarNoBacktracking(t *testing.T) {
	date := dateGrammar(match.Either(
		match.Take(2, match.Digit),
		match.Take(4, match.Digit),
	))

	assert.Equal(t, fail("Jan 12, 2022"), date("Jan 12, 2022"))
	assert.Equal(t, ok("Oct 2, 22", ""), date("Oct 2, 22"))
}
