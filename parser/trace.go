package parser

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Tracer is a function that is use to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

// Stage identifies the point in a parse a trace line was written from.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// previewLen is how many bytes of the input are shown in a trace line.
const previewLen = 10

// SugaredTracer returns a Tracer that writes trace lines to the given logger
// at debug level. A nil logger returns a nil Tracer, which disables tracing.
func SugaredTracer(l *zap.SugaredLogger) Tracer {
	if l == nil {
		return nil
	}
	return l.Debug
}

// Trace writes a single trace line for the named parser to tr, if tr is not
// nil. The line shows the stage, the name, the first few bytes of the input
// and then the args. Func args are written by their function name. When the
// last arg is a Result, it is written as the outcome of the call.
func Trace(tr Tracer, stage Stage, name, input string, args ...any) {
	if tr == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")

	preview := input
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}
	fmt.Fprintf(out, "%q…", preview)

	tr(finishTrace(out, args))
}

func finishTrace(out *strings.Builder, args []any) string {
	for i, arg := range args {
		if i == len(args)-1 {
			if r, isResult := arg.(Result); isResult {
				fmt.Fprintf(out, ") = %v", r)
				return out.String()
			}
		}

		fmt.Fprint(out, ", ")

		if arg != nil && reflect.TypeOf(arg).Kind() == reflect.Func {
			fmt.Fprint(out, runtime.FuncForPC(reflect.ValueOf(arg).Pointer()).Name())
			continue
		}

		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")
	return out.String()
}

// Traced wraps p so that every call writes a TRY line before p runs and a GOT
// or ERR line after. When tr is nil, p is returned unchanged.
func Traced(tr Tracer, name string, p Parser) Parser {
	if tr == nil {
		return p
	}

	return func(input string) Result {
		Trace(tr, StageTry, name, input)

		r := p(input)
		if r.Success {
			Trace(tr, StageGot, name, input, r)
		} else {
			Trace(tr, StageFail, name, input)
		}

		return r
	}
}
