// Command lox-repl is the interactive Lox front-end loop: each line is
// scanned, parsed, and printed as a canonical AST rendering.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lox-lang/lox/internal/ast"
	"github.com/lox-lang/lox/internal/cli"
	"github.com/lox-lang/lox/internal/diagnostic"
	"github.com/lox-lang/lox/internal/lexer"
	"github.com/lox-lang/lox/internal/parser"
)

func main() {
	var (
		showVersion  = flag.Bool("version", false, "show version information")
		jsonOutput   = flag.Bool("json", false, "output version in JSON format")
		noPrompt     = flag.Bool("no-prompt", false, "disable interactive prompt")
		evalStr      = flag.String("eval", "", "parse one expression, print its AST, and exit")
		checkVersion = flag.String("check-version", "", "exit non-zero unless the tool version satisfies the given semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Lox interactive front end (scan, parse, print).\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nREPL COMMANDS:\n")
		fmt.Fprintf(os.Stderr, "  :help, :h          Show help\n")
		fmt.Fprintf(os.Stderr, "  :quit, :q, :exit   Exit REPL\n")
		fmt.Fprintf(os.Stderr, "  :tokens on|off     Toggle token stream dump\n")
		fmt.Fprintf(os.Stderr, "  :history           Show line history\n")
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
		cli.PrintVersion("Lox REPL", *jsonOutput)
		os.Exit(0)
	}

	repl := NewREPL()

	if *evalStr != "" {
		result, err := repl.Evaluate(*evalStr)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		fmt.Println(result)
		os.Exit(0)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	interactive := !*noPrompt && cli.IsTerminal(os.Stdin.Fd())
	if interactive {
		repl.PrintWelcome()
	}
	repl.Run(interactive)
}

// REPL reads lines, feeds them through the front end, and prints the
// result. Errors never terminate the loop.
type REPL struct {
	showTokens bool
	history    []string
	scanner    *bufio.Scanner
	printer    *ast.Printer
	diag       *diagnostic.Writer
}

func NewREPL() *REPL {
	return &REPL{
		scanner: bufio.NewScanner(os.Stdin),
		printer: &ast.Printer{},
		diag:    diagnostic.NewWriter(os.Stderr, cli.IsTerminal(os.Stderr.Fd())),
	}
}

func (r *REPL) PrintWelcome() {
	info := cli.GetVersionInfo()
	fmt.Printf("Lox REPL v%s\n", info.Version)
	fmt.Printf("Type :help for help, :quit to exit\n")
	fmt.Println()
}

func (r *REPL) Run(prompt bool) {
	for {
		if prompt {
			fmt.Print("lox> ")
		}

		if !r.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		r.history = append(r.history, line)

		if strings.HasPrefix(line, ":") {
			if r.HandleCommand(line) {
				break
			}
			continue
		}

		r.runLine(line)
	}
}

// HandleCommand processes a :command line; it returns true when the
// loop should exit
func (r *REPL) HandleCommand(cmd string) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case ":help", ":h":
		r.PrintHelp()
	case ":quit", ":q", ":exit":
		fmt.Println("Goodbye!")
		return true
	case ":tokens":
		if len(parts) < 2 {
			fmt.Printf("Token dump: %v\n", r.showTokens)
			break
		}
		switch parts[1] {
		case "on", "true", "1":
			r.showTokens = true
			fmt.Println("Token dump enabled")
		case "off", "false", "0":
			r.showTokens = false
			fmt.Println("Token dump disabled")
		default:
			fmt.Println("Usage: :tokens on|off")
		}
	case ":history":
		for i, line := range r.history {
			fmt.Printf("%4d  %s\n", i+1, line)
		}
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
		fmt.Println("Type :help for available commands")
	}

	return false
}

func (r *REPL) PrintHelp() {
	fmt.Println("REPL Commands:")
	fmt.Println("  :help, :h          Show this help")
	fmt.Println("  :quit, :q, :exit   Exit REPL")
	fmt.Println("  :tokens on|off     Toggle token stream dump")
	fmt.Println("  :history           Show line history")
	fmt.Println()
	fmt.Println("Enter a Lox expression to see its parsed AST.")
}

func (r *REPL) runLine(line string) {
	if r.showTokens {
		for _, res := range lexer.NewWithFilename(line, "<repl>").ScanTokens() {
			if res.IsErr() {
				r.diag.Write(diagnostic.FromLexical(res.Err, "<repl>"))
				continue
			}
			fmt.Println(res.Token)
		}
	}

	result, err := r.Evaluate(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("=> %s\n", result)
}

// Evaluate runs one line through the front end and returns the printed
// AST. Lexical errors are reported as a batch; a parse error aborts
// this line only.
func (r *REPL) Evaluate(input string) (string, error) {
	results := lexer.NewWithFilename(input, "<repl>").ScanTokens()

	if lexErrs := lexer.Errors(results); len(lexErrs) > 0 {
		errs := make([]error, len(lexErrs))
		for i, e := range lexErrs {
			errs[i] = e
		}
		return "", errors.Join(errs...)
	}

	p := parser.New(lexer.Tokens(results))
	expr, err := p.Parse()
	if err != nil {
		return "", err
	}
	if !p.AtEnd() {
		return "", &parser.ParseError{Expected: "end of input", Actual: p.Remaining()}
	}

	return r.printer.Print(expr), nil
}
