package toysql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_ExecSQL(t *testing.T) {
	db, ex, err := Open(0)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	res, err := ex.ExecSQL("create table t (a int, b string); insert into t values (3, 'z'); select b from t;")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"z"}}, res[2].Collect().Rows)
}

func TestParse_Diagnostic(t *testing.T) {
	_, err := Parse("create table t ();")
	var d *Diagnostic
	require.True(t, errors.As(err, &d))
}
