package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatementComplete(t *testing.T) {
	require.False(t, statementComplete("select a from t"))
	require.True(t, statementComplete("select a from t;"))
	require.False(t, statementComplete("insert into t values ('a;"))
	require.True(t, statementComplete("insert into t values ('a;b');"))
}

func TestCompactOneLine(t *testing.T) {
	require.Equal(t, "select a from t;", compactOneLine("  select a\n\tfrom   t;  "))
	require.Equal(t, "insert into t values ('a  b');", compactOneLine("insert into t\nvalues ('a  b');"))
}

func TestHistory_AppendLoadPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist")
	h := NewHistory(path)
	require.NoError(t, h.Append("select a\nfrom t;"))
	require.NoError(t, h.Append("   "))
	require.NoError(t, h.Append("select b from t;"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "select a from t;\nselect b from t;\n", string(data))

	loaded := NewHistory(path)
	require.NoError(t, loaded.Load(1))
	require.Equal(t, []string{"select b from t;"}, loaded.Lines())

	var out bytes.Buffer
	h.Print(&out, 1)
	require.Equal(t, "    2  select b from t;\n", out.String())
}

func newTestRepl(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	sess, err := newLocalSession(4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	out := &bytes.Buffer{}
	return &repl{sess: sess, hist: NewHistory(""), out: out}, out
}

func TestRepl_MultilineStatement(t *testing.T) {
	r, out := newTestRepl(t)

	require.Equal(t, "", r.feed("create table t (a int,"))
	require.True(t, r.pending())
	stmt := r.feed("b string);")
	require.Equal(t, "create table t (a int,\nb string);", stmt)
	require.False(t, r.pending())

	r.run(stmt)
	r.run("insert into t values (1, 'x'); select b, a from t;")
	require.Equal(t, ""+
		"OK: Table t created\n"+
		"OK: 1 row inserted into t\n"+
		"b | a\n"+
		"--+--\n"+
		"x | 1\n"+
		"(1 rows)\n", out.String())
	require.Len(t, r.hist.Lines(), 2)
}

func TestRepl_ParseErrorIsRendered(t *testing.T) {
	r, out := newTestRepl(t)
	r.run("select fart;")
	require.Contains(t, out.String(), "Parse Error: expected \"from\"")
	require.Contains(t, out.String(), "1 | select fart;")
}

func TestRepl_ExecutionError(t *testing.T) {
	r, out := newTestRepl(t)
	r.run("select a from nope;")
	require.Equal(t, "error: Table nope was not found\n", out.String())
}

func TestRepl_MetaCommands(t *testing.T) {
	r, out := newTestRepl(t)
	r.run("create table users (id int, name string);")
	out.Reset()

	require.False(t, r.meta("\\dt"))
	require.Equal(t, ""+
		"table | columns             | rows\n"+
		"------+---------------------+-----\n"+
		"users | id Int, name String | 0   \n", out.String())

	out.Reset()
	require.False(t, r.meta("\\nope"))
	require.Equal(t, "unknown command: \\nope\n", out.String())

	require.True(t, r.meta("\\q"))
	require.True(t, r.meta("exit"))
	require.True(t, isMetaCommand("  \\help"))
	require.False(t, isMetaCommand("select a from t;"))
}
