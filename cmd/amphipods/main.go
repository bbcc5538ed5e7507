// amphipods reads a burrow board and prints the minimum energy needed to organize it, both as
// given (Part 1) and unfolded with two extra bay rows (Part 2).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/amphipodGo/internal/profilers"
	"github.com/janpfeifer/amphipodGo/internal/puzzle"
	"github.com/janpfeifer/amphipodGo/internal/searchers"
	_ "github.com/janpfeifer/amphipodGo/internal/searchers/default"
	"github.com/janpfeifer/amphipodGo/internal/ui/cli"
	"github.com/janpfeifer/amphipodGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagInput    = flag.String("input", "input.txt", "File with the board, or \"-\" to read from stdin.")
	flagExample  = flag.Bool("example", false, "Solve the example board of the puzzle statement, instead of --input.")
	flagConfig   = flag.String("config", searchers.DefaultConfig, "Searcher configuration, in the format \"<name>:<key>=<value>,...\".")
	flagParallel = flag.Bool("parallel", false, "Solve both variants concurrently.")
	flagPath     = flag.Bool("print_path", false, "Print the sequence of moves and the boards of each variant.")
	flagQuiet    = flag.Bool("quiet", false, "Only print the answers: no board and no spinner.")
	flagColor    = flag.String("color", cli.ColorAuto, "Color mode: auto, on or off.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	must.M(profilers.Setup(ctx))
	defer profilers.OnQuit()

	err := exceptions.TryCatch[error](func() { run(ctx) })
	if err != nil {
		spinning.Reset(os.Stderr)
		klog.Exitf("Failed: %+v", err)
	}
}

func run(ctx context.Context) {
	text := readBoard()
	searcher := must.M1(searchers.New(searcherConfig(*flagConfig, *flagPath)))
	color := must.M1(cli.ColorEnabled(*flagColor, os.Stdout))
	ui := cli.New(os.Stdout, color, cli.TerminalWidth(os.Stdout))

	var spinner *spinning.Spinning
	if !*flagQuiet {
		initial := must.M1(puzzle.ParseBoard(text))
		ui.PrintState(initial)
		fmt.Println()
		if cli.TerminalWidth(os.Stderr) > 0 {
			spinner = spinning.New(ctx, os.Stderr, fmt.Sprintf("Searching with %s", searcher))
		}
	}
	answer, err := puzzle.Solve(text, searcher, *flagParallel)
	if spinner != nil {
		spinner.Done()
	}
	must.M(err)

	if *flagPath {
		for v := range puzzle.NumVariants {
			fmt.Printf("\nPart %d, %s variant:\n\n", int(v)+1, v)
			ui.PrintPath(answer.Initial[v], answer.Results[v].Path)
		}
		fmt.Println()
	}
	ui.PrintAnswer(answer)
	klog.V(1).Infof("Solved in %s", answer.Elapsed)
}

// readBoard returns the text of the board selected by the flags.
func readBoard() string {
	if *flagExample {
		return puzzle.Example
	}
	if *flagInput == "-" {
		return string(must.M1(io.ReadAll(os.Stdin)))
	}
	contents, err := os.ReadFile(*flagInput)
	if err != nil {
		panic(errors.Wrapf(err, "reading board from --input=%q", *flagInput))
	}
	return string(contents)
}

// searcherConfig returns the searcher configuration, with path tracking added if trackPath is set.
func searcherConfig(config string, trackPath bool) string {
	if !trackPath {
		return config
	}
	if config == "" {
		config = searchers.DefaultConfig
	}
	if strings.Contains(config, ":") {
		return config + ",path"
	}
	return config + ":path"
}
