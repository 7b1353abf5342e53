/*
File    : chai/cmd/chai/main.go
Package : main
*/

// Command chai is the interpreter's entry point: with no arguments it
// runs ./main.ch if that file exists and otherwise starts the REPL;
// file mode given a source path, a tokenizing TCP server with
// `serve <port>`, and --help/--version.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/chailang/chai/eval"
	"github.com/chailang/chai/lexer"
	"github.com/chailang/chai/object"
	"github.com/chailang/chai/parser"
	"github.com/chailang/chai/repl"
)

const (
	version = "0.1.0"
	author  = "chailang"
	license = "MIT"
	prompt  = ">> "
	line    = "----------------------------------------"
	banner  = `
   ________    _____
  / ____/ /_  ____ _(_)
 / /   / __ \/ __ / / /
/ /___/ / / / /_/ / / /
\____/_/ /_/\__,_/_/_/
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "serve":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "[CLI ERROR] serve requires a port, e.g. chai serve 9000")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	if _, err := os.Stat("main.ch"); err == nil {
		runFile("main.ch")
		return
	}

	repler := repl.New(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("chai - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  chai                  Run ./main.ch if present, else start the token REPL")
	fmt.Println("  chai <path>           Run a chai source file")
	fmt.Println("  chai serve <port>     Start a tokenizing TCP server")
	fmt.Println("  chai --help           Show this message")
	fmt.Println("  chai --version        Show version information")
}

func showVersion() {
	fmt.Printf("chai %s\n", version)
}

// runFile reads path, parses it, and evaluates it to completion,
// printing the last statement's value unless it's Nil, and printing
// every parse error instead of evaluating at all if parsing failed.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	program := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.New()
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result != nil && result.Kind() == object.ErrorKind {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", result.Inspect())
		os.Exit(1)
	}
	if result != nil && result.Kind() != object.NullKind {
		fmt.Println(result.Inspect())
	}
}

// startServer listens on port and spawns one goroutine per accepted
// connection, each running its own tokenize-and-echo session isolated
// by its own lexer invocation per line.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on :%s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("chai token server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleConnection(conn)
	}
}

// handleConnection reads newline-delimited source lines from conn and
// writes back each line's token stream, one token per line, until the
// client disconnects. It does not use the repl package's readline-based
// loop since readline expects a real terminal, not a bare socket.
func handleConnection(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		toks := lexer.New(scanner.Text()).Tokens()
		for _, tok := range toks {
			fmt.Fprintln(conn, tok.String())
		}
	}
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
