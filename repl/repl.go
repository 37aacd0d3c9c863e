/*
File    : impyc/repl/repl.go
Package repl implements an interactive, line-at-a-time compilation session:
read one statement, run it through the full lex/parse/analyze/emit
pipeline, echo the emitted fragment, and keep the symbol table alive
across lines so later statements see earlier ones' variables. Grounded on
the teacher's repl.Repl (repl/repl.go): same banner/prompt/history
structure and chzyer/readline + fatih/color usage, reworked from
"evaluate and print a runtime value" to "compile and print emitted text".
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/impyc/config"
	"github.com/akashmaji946/impyc/emitter"
	"github.com/akashmaji946/impyc/lexer"
	"github.com/akashmaji946/impyc/parser"
	"github.com/akashmaji946/impyc/semantic"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive compilation session. A fresh Repl keeps its own
// symtable.Table/ContextStack alive for its whole lifetime (via a single
// shared semantic.Analyzer), so `x = 1;` in one line and `writeOut x;` in
// the next see the same symbol.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Opts    config.Options
}

// New creates a Repl instance with the given identity strings and
// compiler options (indent step, default reader map).
func New(banner, version, author, line, license, prompt string, opts config.Options) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Opts: opts}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Impyc!")
	cyanColor.Fprintf(writer, "%s\n", "Type one statement per line, terminated by ';', and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-compile-emit loop against reader/writer (typically
// os.Stdin/os.Stdout for an interactive terminal, or a net.Conn for the
// server mode, where reader and writer are the same connection).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	analyzer := semantic.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.compileLine(writer, line, analyzer)
	}
}

// compileLine runs one statement through the pipeline, reusing analyzer's
// symbol table and context stack across calls. A trailing newline is
// re-appended since readline strips it, reconstituting the Endline
// token's `;\n` spelling.
func (r *Repl) compileLine(writer io.Writer, line string, analyzer *semantic.Analyzer) {
	toks, lerr := lexer.Lex(line+"\n", r.Opts.Readers)
	if lerr != nil {
		redColor.Fprintf(writer, "[%s] %s\n", lerr.Stage(), lerr.Error())
		return
	}

	prog, perr := parser.Parse(toks)
	if perr != nil {
		redColor.Fprintf(writer, "[%s] %s\n", perr.Stage(), perr.Error())
		return
	}

	analyzer.Reset()
	for _, stmt := range prog.Lines {
		stmt.Accept(analyzer)
	}
	if serr := analyzer.Err(); serr != nil {
		redColor.Fprintf(writer, "[%s] %s\n", serr.Stage(), serr.Error())
		return
	}

	out := emitter.Emit(prog, r.Opts.IndentStep)
	yellowColor.Fprint(writer, out)
}
