/*
Folidity compiles and verifies folidity smart-contract source files.

Usage:

	folidity check <file>
	folidity verify <file>
	folidity compile <file>
	folidity repl

check runs stages 1-3 (lex, parse, analyze) and exits 0 unless a
diagnostic of error severity was produced. verify additionally runs the
SMT verifier (stage 4). compile runs the full pipeline and, on success,
writes <file>.approval.teal and <file>.clear.teal next to the source.

The flags are:

	-v, --version
		Print the current version and exit.

	-c, --config FILE
		Load a folidity.toml configuration file. Defaults to using
		FillDefaults() of an empty config.

	-o, --solver PATH
		Path to an SMT-LIB2-speaking solver binary, used by verify and
		compile. Omitted: verification is skipped and a warning is
		printed.

repl starts an interactive session for trying expressions and
declarations against the analyzer, using GNU-readline-style line editing
where a tty is attached.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/folidity/folidity"
	"github.com/folidity/folidity/config"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/internal/ferrors"
	"github.com/folidity/folidity/internal/parser"
	"github.com/folidity/folidity/internal/version"
	"github.com/folidity/folidity/sema"
	"github.com/folidity/folidity/verify"
)

const (
	ExitSuccess = iota
	ExitDiagnosticsFailed
	ExitUsageError
	ExitInternalError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagConfig  = pflag.StringP("config", "c", "", "Path to a folidity.toml configuration file")
	flagSolver  = pflag.StringP("solver", "o", "", "Path to an SMT-LIB2 solver binary")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ERROR: internal: %v\n", r)
			os.Exit(ExitInternalError)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: folidity <check|verify|compile> <file> | folidity repl")
		returnCode = ExitUsageError
		return
	}

	cmd := args[0]
	if cmd == "repl" {
		runREPL()
		return
	}

	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: folidity %s <file>\n", cmd)
		returnCode = ExitUsageError
		return
	}

	cfg, err := config.LoadOrDefault(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: config: %s\n", err)
		returnCode = ExitUsageError
		return
	}

	source, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitUsageError
		return
	}

	var stage folidity.Stage
	switch cmd {
	case "check":
		stage = folidity.StageCheck
	case "verify":
		stage = folidity.StageVerify
	case "compile":
		stage = folidity.StageCompile
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown command %q\n", cmd)
		returnCode = ExitUsageError
		return
	}

	p := folidity.Pipeline{Config: cfg}
	if (stage == folidity.StageVerify || stage == folidity.StageCompile) && *flagSolver != "" {
		solver := *flagSolver
		p.NewOracle = func() (verify.Oracle, error) {
			return verify.NewProcessOracle(solver)
		}
	} else if stage == folidity.StageVerify || stage == folidity.StageCompile {
		fmt.Fprintln(os.Stderr, "warning: no --solver given, skipping verification")
	}

	result, err := p.Run(context.Background(), args[1], string(source), stage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		if ferrors.IsFatal(err) {
			returnCode = ExitInternalError
		} else {
			returnCode = ExitUsageError
		}
		return
	}

	for _, r := range result.Sink.Reports() {
		fmt.Fprintln(os.Stderr, r.String())
	}

	if result.Sink.HasSeverity(diag.Error) {
		returnCode = ExitDiagnosticsFailed
		return
	}

	if stage == folidity.StageCompile {
		approvalPath := args[1] + ".approval.teal"
		clearPath := args[1] + ".clear.teal"
		if err := os.WriteFile(approvalPath, []byte(result.Program.Approval), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitInternalError
			return
		}
		if err := os.WriteFile(clearPath, []byte(result.Program.Clear), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitInternalError
			return
		}
		fmt.Printf("wrote %s and %s\n", approvalPath, clearPath)
	}
}

// runREPL reads one line at a time, parses and semantically analyzes it in
// isolation as a complete source file (so a line holds top-level
// declarations; a bare statement is a parse error), and prints whatever
// diagnostics resulted — a quick way to try syntax without a full file.
func runREPL() {
	rl, err := readline.NewEx(&readline.Config{Prompt: "folidity> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInternalError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "" {
			continue
		}

		tree := parser.Parse("<repl>", line)
		sink := diag.NewSink()
		for _, e := range tree.Errors {
			sink.Addf(diag.Error, diag.KindUnexpectedToken, e.Span, "%s", e.Message)
		}
		sema.Analyze(tree, sink)

		for _, r := range sink.Reports() {
			fmt.Println(r.String())
		}
		if sink.Len() == 0 {
			fmt.Printf("ok: %d declaration(s)\n", len(tree.Declarations))
		}
	}
}
