// Command minic compiles one entry file through the Scanner -> Parser ->
// Binder -> Checker -> Transform -> Emitter pipeline and writes the
// emitted plain JavaScript to stdout (or -o).
//
// Flag-based argument parsing (stdlib flag) is a deliberate departure
// from the teacher's raw os.Args-index style in cmd/funxy/main.go — the
// teacher repo has no "flag" import anywhere, but SPEC_FULL's CLI is a
// single small driver where flag's -usage/-help generation earns its
// keep. Error reporting (fmt.Fprintf(os.Stderr, ...) + os.Exit(1)) and
// the moduleCache-style content-addressed caching both follow
// cmd/funxy/main.go directly.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/minic/internal/binder"
	"github.com/funvibe/minic/internal/cache"
	"github.com/funvibe/minic/internal/checker"
	"github.com/funvibe/minic/internal/config"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/emitter"
	"github.com/funvibe/minic/internal/lexer"
	"github.com/funvibe/minic/internal/parser"
	"github.com/funvibe/minic/internal/pipeline"
	"github.com/funvibe/minic/internal/transform"
)

const configFile = "minic.yaml"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minic", flag.ContinueOnError)
	entryFlag := fs.String("e", "", "entry file to compile (overrides minic.yaml's entry field and the positional argument)")
	outFlag := fs.String("o", "", "write emitted output to this file instead of stdout")
	verbose := fs.Bool("verbose", false, "log to stderr whether the result was compiled or a cache hit, and how long ago the compile started")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %s\n", configFile, err)
		return 1
	}

	entry := *entryFlag
	if entry == "" {
		entry = cfg.Entry
	}
	if entry == "" && fs.NArg() > 0 {
		entry = fs.Arg(0)
	}
	if entry == "" {
		fmt.Fprintf(os.Stderr, "usage: minic [-e file] [-o file] [-verbose] [file]\n")
		return 1
	}

	source, err := os.ReadFile(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %s\n", entry, err)
		return 1
	}

	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening compile cache: %s\n", err)
		return 1
	}
	defer store.Close()

	start := time.Now()
	hash := cache.Hash(string(source))

	entryResult, fromCache, err := store.Lookup(hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading compile cache: %s\n", err)
		return 1
	}

	var diagnosticLines []string
	var emitted string
	var failed bool

	if entryResult != nil {
		for _, d := range entryResult.Diagnostics {
			diagnosticLines = append(diagnosticLines, string(d.Code)+": "+d.Message)
		}
		emitted = entryResult.Emitted
		failed = len(entryResult.Diagnostics) > 0
	} else {
		diags, compiled, crashErr := compile(string(source))
		if crashErr != nil {
			fmt.Fprintf(os.Stderr, "minic: %s\n", crashErr)
			return 1
		}
		for _, d := range diags {
			diagnosticLines = append(diagnosticLines, string(d.Code)+": "+d.Message)
		}
		emitted = compiled
		failed = len(diags) > 0

		if storeErr := store.Store(hash, &cache.Entry{
			Diagnostics: diags,
			Emitted:     emitted,
			CompiledAt:  start,
		}); storeErr != nil {
			fmt.Fprintf(os.Stderr, "writing compile cache: %s\n", storeErr)
		}
	}

	printDiagnostics(diagnosticLines)

	if *verbose {
		tag := "compiled"
		if fromCache {
			tag = "cache hit"
		}
		fmt.Fprintf(os.Stderr, "minic: %s %s, started %s\n", tag, entry, humanize.RelTime(start, time.Now(), "ago", "from now"))
	}

	if failed {
		return 1
	}

	if *outFlag != "" {
		if err := os.WriteFile(*outFlag, []byte(emitted), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %s\n", *outFlag, err)
			return 1
		}
		return 0
	}
	fmt.Println(emitted)
	return 0
}

// compile runs the full pipeline, recovering from the *diagnostics.InternalError
// panic a Fatalf raises on a broken parser/binder contract (spec §7 tier 2)
// and turning it into a plain error the driver can report with an exit code
// instead of a raw crash.
func compile(source string) (diags []*diagnostics.DiagnosticError, emitted string, crashErr error) {
	defer func() {
		if r := recover(); r != nil {
			if ierr, ok := r.(*diagnostics.InternalError); ok {
				crashErr = ierr
				return
			}
			panic(r)
		}
	}()

	pl := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.Processor{},
		&binder.Processor{},
		&checker.Processor{},
		&transform.Processor{},
		&emitter.Processor{},
	)
	ctx := pl.Run(pipeline.NewPipelineContext(source))
	return ctx.Errors(), ctx.Emitted, nil
}

// colorEnabled mirrors the teacher's internal/evaluator/builtins_term.go
// terminal-capability check for deciding whether to colorize diagnostics.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func printDiagnostics(lines []string) {
	if len(lines) == 0 {
		return
	}
	red, reset := "", ""
	if colorEnabled() {
		red, reset = "\x1b[31m", "\x1b[0m"
	}
	for _, line := range lines {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", red, line, reset)
	}
}
