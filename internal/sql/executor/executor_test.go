package executor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/engine"
	"github.com/tuannm99/toysql/internal/heap"
	"github.com/tuannm99/toysql/internal/record"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

// ---- fakes ----

type fakeDB struct {
	created []string
	inserts int
	err     error
}

func (f *fakeDB) CreateTable(name string, columns []record.Column) (*heap.Table, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, name)
	return heap.NewTable(name, columns), nil
}

func (f *fakeDB) Insert(table string, values []record.Value) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserts++
	return uint64(f.inserts - 1), nil
}

func (f *fakeDB) Select(table string, fields []string) (*heap.TableIter, error) {
	return nil, record.TableNotFound(table)
}

func (f *fakeDB) ListTables() ([]catalog.TableMeta, error) { return nil, nil }

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	ex, err := NewExecutor(engine.NewDatabase(nil), Options{CacheSize: 8})
	require.NoError(t, err)
	return ex
}

// ---- tests ----

func TestExecSQL_CreateInsertSelectRoundTrip(t *testing.T) {
	ex := newTestExecutor(t)

	_, err := ex.ExecSQL("create table t1 (id int, name string);")
	require.NoError(t, err)
	_, err = ex.ExecSQL("insert into t1 values (1, 'a');")
	require.NoError(t, err)
	_, err = ex.ExecSQL("insert into t1 values (2, 'b');")
	require.NoError(t, err)

	res, err := ex.ExecSQL("select name, id from t1;")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, ResultSelect, res[0].Kind)
	require.Equal(t, []string{"name", "id"}, res[0].Columns().Names())

	rs := res[0].Collect()
	require.Equal(t, [][]string{{"a", "1"}, {"b", "2"}}, rs.Rows)
	require.Equal(t, int64(2), rs.AffectedRows)
	require.Equal(t, []string{"name", "id"}, rs.ColumnNames())
}

func TestExecSQL_ColumnOrderFollowsSelect(t *testing.T) {
	ex := newTestExecutor(t)

	res, err := ex.ExecSQL(`
		create table foo (col1 int, col2 string);
		insert into foo values (1, 'Hello World!');
		select col2, col1 from foo;
	`)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, ResultCreate, res[0].Kind)
	require.Equal(t, ResultInsert, res[1].Kind)
	require.Equal(t, uint64(0), res[1].RowID)

	rs := res[2].Collect()
	require.Equal(t, [][]string{{"Hello World!", "1"}}, rs.Rows)
}

func TestExecSQL_InsertTypeMismatch(t *testing.T) {
	ex := newTestExecutor(t)
	_, err := ex.ExecSQL("create table t (a int);")
	require.NoError(t, err)

	_, err = ex.ExecSQL("insert into t values ('x');")
	require.Error(t, err)
	require.ErrorIs(t, err, record.ErrInsertTypeMismatch)
	require.Equal(t, "Value 'x' can not be inserted into a Int column", err.Error())
}

func TestExecSQL_SelectErrors(t *testing.T) {
	ex := newTestExecutor(t)

	_, err := ex.ExecSQL("select a from missing;")
	require.ErrorIs(t, err, record.ErrTableNotFound)
	require.Equal(t, "Table missing was not found", err.Error())

	_, err = ex.ExecSQL("create table t (a int);")
	require.NoError(t, err)
	_, err = ex.ExecSQL("select b from t;")
	require.ErrorIs(t, err, record.ErrColumnDoesNotExist)
	require.Equal(t, "Column b does not exist", err.Error())
}

func TestExecSQL_StopsAtFirstFailure(t *testing.T) {
	ex := newTestExecutor(t)

	res, err := ex.ExecSQL(`
		create table t (a int);
		create table t (a int);
		insert into t values (1);
	`)
	require.ErrorIs(t, err, record.ErrTableAlreadyExists)
	require.Len(t, res, 1)
	require.Equal(t, ResultCreate, res[0].Kind)

	res, err = ex.ExecSQL("select a from t;")
	require.NoError(t, err)
	assert.Empty(t, res[0].Collect().Rows)
}

func TestExecSQL_ParseErrorIsDiagnostic(t *testing.T) {
	ex := newTestExecutor(t)

	_, err := ex.ExecSQL("select fart;")
	require.Error(t, err)

	d := parser.FormatError("select fart;", err)
	require.NotNil(t, d)
	require.Equal(t, 11, d.Offset)
}

func TestExecutor_ParseCache(t *testing.T) {
	ex := newTestExecutor(t)

	a, err := ex.Parse("select a from t;")
	require.NoError(t, err)
	b, err := ex.Parse("select a from t;")
	require.NoError(t, err)
	require.Same(t, a[0], b[0])
	require.Equal(t, 1, ex.cache.Len())

	_, err = ex.Parse("select;")
	require.Error(t, err)
	require.Equal(t, 1, ex.cache.Len())
}

func TestExecutor_NoCache(t *testing.T) {
	ex, err := NewExecutor(engine.NewDatabase(nil), Options{})
	require.NoError(t, err)
	require.Nil(t, ex.cache)

	res, err := ex.ExecSQL("create table t (a int);")
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestExecutor_FakeDBErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeDB{err: boom}
	ex, err := NewExecutorForTest(db, Options{})
	require.NoError(t, err)

	_, err = ex.ExecSQL("create table t (a int);")
	require.ErrorIs(t, err, boom)

	db.err = nil
	res, err := ex.ExecSQL("create table t (a int); insert into t values (1); insert into t values (2);")
	require.NoError(t, err)
	require.Equal(t, []string{"t"}, db.created)
	require.Equal(t, uint64(1), res[2].RowID)
	require.Equal(t, "1 row inserted into t", res[2].String())
	require.Equal(t, int64(1), res[2].Collect().AffectedRows)
}

func TestResult_AcknowledgementHasNoColumns(t *testing.T) {
	r := &Result{Kind: ResultCreate, Table: "t"}
	require.Equal(t, 0, r.Columns().NumCols())

	rs := r.Collect()
	require.Equal(t, "create", rs.Kind)
	require.Equal(t, "Table t created", rs.Message)
	require.Empty(t, rs.Rows)
}
