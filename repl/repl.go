/*
File    : chai/repl/repl.go
Package : repl
*/

// Package repl implements chai's interactive session. Unlike a full
// language REPL, chai's interactive mode only tokenizes each line and
// prints the resulting token stream — it never parses or evaluates.
// That scope mirrors the original interpreter's repl loop, which
// exists to let a user inspect how the lexer sees their input rather
// than to run code interactively.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/chailang/chai/lexer"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration shown at startup; none of it
// changes what the loop does, only how it introduces itself.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, license,
// separator line, and prompt string.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage notes to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to chai!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of source and press enter to see its tokens")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the tokenize-and-print loop until the user types `.exit`
// or sends EOF. reader is accepted for interface symmetry with file
// and server modes but isn't used directly: readline manages stdin on
// its own.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.printTokens(writer, line)
	}
}

// printTokens lexes line to completion and writes each token, one per
// line, in its String() form.
func (r *Repl) printTokens(writer io.Writer, line string) {
	toks := lexer.New(line).Tokens()
	for _, tok := range toks {
		yellowColor.Fprintf(writer, "%s\n", tok.String())
	}
}
