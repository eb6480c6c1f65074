package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	parsekit "github.com/kalopsian/parsekit"
	"github.com/kalopsian/parsekit/examples/csv"
	"github.com/kalopsian/parsekit/examples/hexcolor"
	"github.com/kalopsian/parsekit/examples/json"
	"github.com/kalopsian/parsekit/examples/redis"
	"github.com/kalopsian/parsekit/report"
)

var grammars = map[string]func() parsekit.Parser{
	"hexcolor": hexcolor.Parser,
	"csv":      csv.Parser,
	"json":     json.Parser,
	"redis":    redis.Parser,
}

var (
	runDebug   bool
	runProfile bool
)

var runCmd = &cobra.Command{
	Use:   "run <grammar>",
	Short: "Parse stdin with a named example grammar",
	Long: fmt.Sprintf(`Parse stdin with one of the library's worked example grammars.

Available grammars: %s

With --debug, every reachable parser is wrapped to print an indented
success/failure trace as parsing proceeds. With --profile, per-node
call counts and cumulative time are printed once parsing finishes.`,
		strings.Join(grammarNames(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runDebug, "debug", false, "trace every parser invocation")
	runCmd.Flags().BoolVar(&runProfile, "profile", false, "report per-node call counts and timing")
}

func grammarNames() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	return names
}

func runRun(cmd *cobra.Command, args []string) error {
	name := args[0]
	build, ok := grammars[name]
	if !ok {
		return fmt.Errorf("unknown grammar %q (available: %s)", name, strings.Join(grammarNames(), ", "))
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	root := build()

	var stats *report.Stats
	switch {
	case runDebug:
		root = report.Debug(root)
	case runProfile:
		root, stats = report.Profile(root)
	}

	result := root.Parse(string(input))
	if stats != nil {
		stats.Render()
	}

	if !result.IsSuccess() {
		return fmt.Errorf("parse failed at position %d: %s", result.Position(), result.Message())
	}

	fmt.Printf("%#v\n", result.Value())
	return nil
}
