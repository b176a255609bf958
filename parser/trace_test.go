package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zostay/strparse/parser"
)

func firstByte(input string) parser.Result {
	if len(input) == 0 || input[0] < '0' || input[0] > '9' {
		return parser.Failure(input)
	}
	return parser.Succeed(input, 1)
}

type lineTracer struct {
	lines []string
}

func (lt *lineTracer) trace(v ...any) {
	lt.lines = append(lt.lines, fmt.Sprint(v...))
}

func TestTraced(t *testing.T) {
	lt := &lineTracer{}
	p := parser.Traced(lt.trace, "digit", firstByte)

	assert.Equal(t, parser.Succeed("12", 1), p("12"))
	assert.Equal(t, parser.Failure("x"), p("x"))

	assert.Equal(t, []string{
		`TRY digit("12"…)`,
		`GOT digit("12"…) = ok("1", "2")`,
		`TRY digit("x"…)`,
		`ERR digit("x"…)`,
	}, lt.lines)
}

func TestTracedNil(t *testing.T) {
	p := parser.Traced(nil, "digit", firstByte)
	assert.Equal(t, parser.Succeed("12", 1), p("12"))
}

func TestTracePreview(t *testing.T) {
	lt := &lineTracer{}
	parser.Trace(lt.trace, parser.StageTry, "long", "abcdefghijklmnop")

	require.Len(t, lt.lines, 1)
	assert.Equal(t, `TRY long("abcdefghij"…)`, lt.lines[0])
}

func TestTraceArgs(t *testing.T) {
	lt := &lineTracer{}
	parser.Trace(lt.trace, parser.StageTry, "take", "123", 2, firstByte)

	require.Len(t, lt.lines, 1)
	assert.True(t, strings.HasPrefix(lt.lines[0], `TRY take("123"…, 2, `))
	assert.True(t, strings.HasSuffix(lt.lines[0], ".firstByte)"))
}

func TestSugaredTracer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := parser.SugaredTracer(zap.New(core).Sugar())

	p := parser.Traced(tr, "digit", firstByte)
	p("7")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, `TRY digit("7"…)`, entries[0].Message)
	assert.Equal(t, `GOT digit("7"…) = ok("7", "")`, entries[1].Message)

	assert.Nil(t, parser.SugaredTracer(nil))
}
