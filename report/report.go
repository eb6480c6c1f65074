// Package report renders the debug/progress/profile instrumentation
// spec.md §4.5 describes as "thin transforms that wrap every reachable
// parser in a continuation parser with the appropriate side effect".
// It never mutates the graph it instruments: Debug/Progress/Profile
// each hand back a fresh root via parsekit.Transform.
package report

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	parsekit "github.com/kalopsian/parsekit"
)

// Debug wraps every reachable parser in a continuation that renders an
// indented trace as parsing proceeds: one line per invocation, colored
// by success/failure, nested by call depth.
func Debug(root parsekit.Parser) parsekit.Parser {
	depth := 0
	return parsekit.Transform(root, func(p parsekit.Parser) parsekit.Parser {
		label := p.String()
		return parsekit.NewContinuation(p, func(ctx *parsekit.Context, next parsekit.Continuation) parsekit.Result {
			indent := repeatStr("  ", depth)
			depth++
			res := next(ctx)
			depth--
			if res.IsSuccess() {
				pterm.Success.Println(indent + label + " -> ok")
			} else {
				pterm.Error.Println(indent + label + " -> " + res.Message())
			}
			return res
		})
	})
}

// Progress wraps every reachable parser to print a one-line position
// marker (a colored caret into the input) each time it's invoked.
func Progress(root parsekit.Parser) parsekit.Parser {
	return parsekit.Transform(root, func(p parsekit.Parser) parsekit.Parser {
		return parsekit.NewContinuation(p, func(ctx *parsekit.Context, next parsekit.Continuation) parsekit.Result {
			marker := caret(ctx)
			pterm.Debug.Println(marker)
			return next(ctx)
		})
	})
}

func caret(ctx *parsekit.Context) string {
	pos := ctx.Position
	if pos > len(ctx.Buffer) {
		pos = len(ctx.Buffer)
	}
	before := string(ctx.Buffer[:pos])
	after := string(ctx.Buffer[pos:])
	return before + pterm.LightRed("|") + after
}

// nodeStat accumulates per-node profiling data.
type nodeStat struct {
	Label string
	Calls int
	Total time.Duration
}

// Profile accumulates per-node invocation counts and cumulative
// runtime, returning an instrumented root plus a *Stats handle whose
// Render/JSON methods can be called once parsing has finished.
func Profile(root parsekit.Parser) (parsekit.Parser, *Stats) {
	stats := &Stats{byLabel: map[string]*nodeStat{}}

	instrumented := parsekit.Transform(root, func(p parsekit.Parser) parsekit.Parser {
		label := p.String()
		return parsekit.NewContinuation(p, func(ctx *parsekit.Context, next parsekit.Continuation) parsekit.Result {
			start := stats.now()
			res := next(ctx)
			elapsed := stats.since(start)

			stats.mu().record(label, elapsed)
			return res
		})
	})

	return instrumented, stats
}

func repeatStr(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

// Stats is the handle Profile returns: it exposes a rendered
// pterm.DefaultTable summary plus a JSON export.
type Stats struct {
	byLabel map[string]*nodeStat
	order   []string
}

// now/since are indirected through Stats rather than called as bare
// time.Now()/time.Since() at the top level so the continuation
// closures above read consistently through one object; they carry no
// state of their own.
func (s *Stats) now() time.Time            { return time.Now() }
func (s *Stats) since(t time.Time) time.Duration { return time.Since(t) }

type statRecorder struct{ s *Stats }

func (s *Stats) mu() statRecorder { return statRecorder{s} }

func (r statRecorder) record(label string, elapsed time.Duration) {
	st, ok := r.s.byLabel[label]
	if !ok {
		st = &nodeStat{Label: label}
		r.s.byLabel[label] = st
		r.s.order = append(r.s.order, label)
	}
	st.Calls++
	st.Total += elapsed
}

// Render prints a pterm.DefaultTable summary of per-node call counts
// and cumulative time, in first-seen order.
func (s *Stats) Render() {
	rows := [][]string{{"parser", "calls", "total"}}
	for _, label := range s.order {
		st := s.byLabel[label]
		rows = append(rows, []string{st.Label, fmt.Sprintf("%d", st.Calls), st.Total.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// JSON serializes the same stats as a pretty-printed JSON report,
// built incrementally with sjson rather than encoding/json.
func (s *Stats) JSON() (string, error) {
	doc := "{}"
	var err error
	for i, label := range s.order {
		st := s.byLabel[label]
		path := fmt.Sprintf("nodes.%d", i)
		doc, err = sjson.Set(doc, path+".label", st.Label)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".calls", st.Calls)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".totalNanos", st.Total.Nanoseconds())
		if err != nil {
			return "", err
		}
	}
	return string(pretty.Pretty([]byte(doc))), nil
}
