/*
File    : impyc/cmd/impyc/main.go
Package main is the entry point for the Impyc compiler. It provides four
modes of operation:
 1. File mode (default): compile a source file to target source text.
 2. REPL mode: interactive, line-at-a-time compilation.
 3. Server mode: one REPL session per TCP connection.
 4. --help / --version: informational.

Grounded on the teacher's main/main.go: same argument-dispatch shape,
banner/version/author/license identity strings, colorized stderr, and
net.Listen-based server loop, reworked from "parse and evaluate" to
"lex, parse, analyze, emit a file".
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/impyc/config"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/emitter"
	"github.com/akashmaji946/impyc/lexer"
	"github.com/akashmaji946/impyc/parser"
	"github.com/akashmaji946/impyc/repl"
	"github.com/akashmaji946/impyc/semantic"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "impyc"
	LICENSE = "MIT"
	PROMPT  = "impyc >>> "
	BANNER  = `
  _
 (_)_ __  _ __  _   _  ___
 | | '_ \| '_ \| | | |/ __|
 | | | | | |_) | |_| | (__
 |_|_| |_| .__/ \__, |\___|
         |_|    |___/
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

func main() {
	args := os.Args[1:]
	opts := config.Default()

	// --config <path> may appear anywhere before the positional arguments;
	// strip it out before dispatching on the remaining args.
	args, cfgPath := extractConfigFlag(args)
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] could not load %q: %v\n", cfgPath, err)
			os.Exit(diag.ExitBadArgs)
		}
		opts = loaded
	}

	if len(args) == 0 {
		repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, opts)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(diag.ExitOK)
	case "--version", "-v":
		showVersion()
		os.Exit(diag.ExitOK)
	case "repl":
		repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, opts)
		repler.Start(os.Stdin, os.Stdout)
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: impyc server <port>\n")
			os.Exit(diag.ExitBadArgs)
		}
		startServer(args[1], opts)
	default:
		out := opts.DefaultOutput
		if len(args) >= 2 {
			out = args[1]
		}
		runFile(args[0], out, opts)
	}
}

// extractConfigFlag removes the first "--config <path>" pair from args,
// returning the remaining args and the path (empty if absent).
func extractConfigFlag(args []string) ([]string, string) {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return rest, args[i+1]
		}
	}
	return args, ""
}

func showHelp() {
	cyanColor.Println("Impyc - a small imperative-to-scripting-language compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  impyc                        Start interactive REPL mode")
	yellowColor.Println("  impyc <file> [out]           Compile a source file (default out: ./out.py)")
	yellowColor.Println("  impyc repl                   Start interactive REPL mode")
	yellowColor.Println("  impyc server <port>          Start a REPL server on the given port")
	yellowColor.Println("  impyc --config <path> ...    Load a YAML config before any of the above")
	yellowColor.Println("  impyc --help                 Display this help message")
	yellowColor.Println("  impyc --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                        Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Impyc - a small imperative-to-scripting-language compiler")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile compiles src, writing the emitted program to out, and maps any
// diag.Error to the process exit code per spec.md §6.
func runFile(src, out string, opts config.Options) {
	source, err := os.ReadFile(src)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[IO_FAILURE] could not read %q: %v\n", src, err)
		os.Exit(diag.ExitIOFailure)
	}

	toks, lerr := lexer.Lex(string(source), opts.Readers)
	if lerr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", lerr.Error())
		os.Exit(lerr.Code())
	}

	prog, perr := parser.Parse(toks)
	if perr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", perr.Error())
		os.Exit(perr.Code())
	}

	if serr := semantic.Analyze(prog); serr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", serr.Error())
		os.Exit(serr.Code())
	}

	emitted := emitter.Emit(prog, opts.IndentStep)
	if err := os.WriteFile(out, []byte(emitted), 0644); err != nil {
		redColor.Fprintf(os.Stderr, "[IO_FAILURE] could not write %q: %v\n", out, err)
		os.Exit(diag.ExitIOFailure)
	}

	greenColor.Fprintf(os.Stdout, "compiled %s -> %s\n", src, out)
}

// startServer listens on port, handing each accepted connection its own
// REPL session (and so its own symbol table/context stack) on its own
// goroutine.
func startServer(port string, opts config.Options) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(diag.ExitIOFailure)
	}
	cyanColor.Printf("impyc REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, opts)
	}
}

func handleClient(conn net.Conn, opts config.Options) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, opts)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
