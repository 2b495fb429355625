package main

import (
	"fmt"
	"io"
	"strings"
)

const helpText = `meta commands:
  \q | quit | exit       quit
  \dt                    list tables
  \history               print history
  \help                  show help

sql:
  end each statement with ';'
  multiline is supported (the prompt waits until ';')`

// statementComplete checks if we have a terminating ';' outside single quotes.
// String literals have no escapes.
func statementComplete(buf string) bool {
	inQuote := false
	for _, r := range buf {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ';' && !inQuote:
			return true
		}
	}
	return false
}

func isMetaCommand(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "\\") ||
		line == "quit" || line == "exit"
}

// repl holds everything the read loop touches apart from the terminal.
type repl struct {
	sess session
	hist *History
	out  io.Writer
	buf  strings.Builder
}

// meta runs a meta command and reports whether the REPL should quit.
func (r *repl) meta(line string) (quit bool) {
	switch strings.TrimSpace(line) {
	case "\\q", "quit", "exit":
		return true
	case "\\help":
		fmt.Fprintln(r.out, helpText)
	case "\\history":
		r.hist.Print(r.out, 50)
	case "\\dt":
		tables, err := r.sess.Tables()
		if err != nil {
			printError(r.out, err)
			break
		}
		printTables(r.out, tables)
	default:
		fmt.Fprintf(r.out, "unknown command: %s\n", line)
	}
	return false
}

// feed adds a line of input. It returns the complete statement text once a
// terminating ';' has been seen, or "" while more input is needed.
func (r *repl) feed(line string) string {
	if r.buf.Len() > 0 {
		r.buf.WriteByte('\n')
	}
	r.buf.WriteString(line)
	if !statementComplete(r.buf.String()) {
		return ""
	}
	stmt := strings.TrimSpace(r.buf.String())
	r.buf.Reset()
	return stmt
}

func (r *repl) pending() bool { return r.buf.Len() > 0 }

func (r *repl) reset() { r.buf.Reset() }

func (r *repl) run(stmt string) {
	_ = r.hist.Append(stmt)

	results, err := r.sess.Exec(stmt)
	for _, res := range results {
		printResult(r.out, res)
	}
	if err != nil {
		printError(r.out, err)
	}
}
