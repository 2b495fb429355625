package main

import (
	"context"
	"time"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/engine"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/sqlclient"
)

// session is where the REPL sends statements: an embedded engine or a server.
type session interface {
	Exec(sql string) ([]*executor.ResultSet, error)
	Tables() ([]catalog.TableMeta, error)
	Close() error
}

type localSession struct {
	db *engine.Database
	ex *executor.Executor
}

func newLocalSession(cacheSize int) (*localSession, error) {
	db := engine.NewDatabase(nil)
	ex, err := executor.NewExecutor(db, executor.Options{CacheSize: cacheSize})
	if err != nil {
		return nil, err
	}
	return &localSession{db: db, ex: ex}, nil
}

func (s *localSession) Exec(sql string) ([]*executor.ResultSet, error) {
	results, err := s.ex.ExecSQL(sql)
	return executor.CollectAll(results), err
}

func (s *localSession) Tables() ([]catalog.TableMeta, error) { return s.ex.ListTables() }

func (s *localSession) Close() error { return s.db.Close() }

type remoteSession struct {
	cli *sqlclient.Client
}

func dialSession(addr, token string, timeout time.Duration) (*remoteSession, error) {
	cli, err := sqlclient.Dial(addr, timeout)
	if err != nil {
		return nil, err
	}
	cli.SetRWTimeout(30 * time.Second)
	if token != "" {
		cli.SetToken(token)
	}
	return &remoteSession{cli: cli}, nil
}

func (s *remoteSession) Exec(sql string) ([]*executor.ResultSet, error) { return s.cli.Exec(sql) }

func (s *remoteSession) Tables() ([]catalog.TableMeta, error) {
	return s.cli.Tables(context.Background())
}

func (s *remoteSession) Close() error { return s.cli.Close() }
