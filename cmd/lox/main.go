// Command lox scans and parses a Lox expression source file (or
// stdin) and prints the canonical parenthesized AST rendering.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox-lang/lox/internal/ast"
	"github.com/lox-lang/lox/internal/cli"
	"github.com/lox-lang/lox/internal/diagnostic"
	"github.com/lox-lang/lox/internal/lexer"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/watch"
)

const (
	exitUsage   = 64 // command line usage error
	exitData    = 65 // input contained lexical or parse errors
	exitNoInput = 74 // input file could not be read
)

func main() {
	var (
		showVersion  = flag.Bool("version", false, "show version information")
		jsonOutput   = flag.Bool("json", false, "output version in JSON format")
		showTokens   = flag.Bool("tokens", false, "dump the token stream instead of parsing")
		watchMode    = flag.Bool("watch", false, "re-run on every change to the input file")
		checkVersion = flag.String("check-version", "", "exit non-zero unless the tool version satisfies the given semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parses a Lox expression and prints its AST.\n")
		fmt.Fprintf(os.Stderr, "Reads from stdin when no file is given.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *checkVersion != "" {
		ok, err := cli.SatisfiesConstraint(*checkVersion)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		if !ok {
			cli.ExitWithError("version %s does not satisfy %q", cli.Version, *checkVersion)
		}
	}

	if *showVersion {
		cli.PrintVersion("Lox", *jsonOutput)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
		if *watchMode {
			fmt.Fprintln(os.Stderr, "--watch requires a file argument")
			os.Exit(exitUsage)
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not read stdin: %v\n", err)
			os.Exit(exitNoInput)
		}
		os.Exit(run(string(source), "<stdin>", *showTokens))

	case 1:
		file := flag.Arg(0)
		if *watchMode {
			runWatch(file, *showTokens)
			return
		}
		os.Exit(runFile(file, *showTokens))

	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(path string, showTokens bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %s: %v\n", path, err)
		return exitNoInput
	}
	return run(string(source), path, showTokens)
}

// run scans, parses, and prints one input unit. Lexical errors are
// reported as a batch before parsing is attempted; a parse error
// aborts this input unit only.
func run(source, filename string, showTokens bool) int {
	diag := diagnostic.NewWriter(os.Stderr, cli.IsTerminal(os.Stderr.Fd()))

	results := lexer.NewWithFilename(source, filename).ScanTokens()
	if errs := lexer.Errors(results); len(errs) > 0 {
		for _, e := range errs {
			diag.Write(diagnostic.FromLexical(e, filename))
		}
		return exitData
	}

	tokens := lexer.Tokens(results)
	if showTokens {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return 0
	}

	p := parser.New(tokens)
	expr, err := p.Parse()
	if err != nil {
		writeParseError(diag, err)
		return exitData
	}
	if !p.AtEnd() {
		writeParseError(diag, &parser.ParseError{Expected: "end of input", Actual: p.Remaining()})
		return exitData
	}

	printer := &ast.Printer{}
	fmt.Println(printer.Print(expr))
	return 0
}

func writeParseError(diag *diagnostic.Writer, err error) {
	if pe, ok := err.(*parser.ParseError); ok {
		diag.Write(diagnostic.FromParse(pe))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// runWatch re-runs the pipeline on every write to the file until
// interrupted.
func runWatch(path string, showTokens bool) {
	w, err := watch.New(path)
	if err != nil {
		cli.ExitWithError("failed to watch %s: %v", path, err)
	}
	defer w.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	runFile(path, showTokens)

	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
			runFile(path, showTokens)
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigChan:
			return
		}
	}
}
