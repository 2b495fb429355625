package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

func printResult(w io.Writer, res *executor.ResultSet) {
	if res.Kind != executor.ResultSelect.String() {
		fmt.Fprintf(w, "OK: %s\n", res.Message)
		return
	}
	printTable(w, res.ColumnNames(), res.Rows)
	fmt.Fprintf(w, "(%d rows)\n", len(res.Rows))
}

func printTables(w io.Writer, tables []catalog.TableMeta) {
	rows := make([][]string, len(tables))
	for i, t := range tables {
		cols := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			cols[j] = c.Name + " " + c.Type.String()
		}
		rows[i] = []string{t.Name, strings.Join(cols, ", "), fmt.Sprint(t.RowCount)}
	}
	printTable(w, []string{"table", "columns", "rows"}, rows)
}

func printTable(w io.Writer, cols []string, rows [][]string) {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range rows {
		for i := range cols {
			if n := utf8.RuneCountInString(cell(row, i)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	printRow := func(values []string) {
		for i := range cols {
			if i > 0 {
				fmt.Fprint(w, " | ")
			}
			fmt.Fprint(w, padRight(cell(values, i), widths[i]))
		}
		fmt.Fprintln(w)
	}

	printRow(cols)
	for i := range cols {
		if i > 0 {
			fmt.Fprint(w, "-+-")
		}
		fmt.Fprint(w, strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		printRow(row)
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return executor.NullText
}

func padRight(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}

// printError renders parse failures with their source snippet.
func printError(w io.Writer, err error) {
	var d *parser.Diagnostic
	if errors.As(err, &d) {
		fmt.Fprint(w, d.Render())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
