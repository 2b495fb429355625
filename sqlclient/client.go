package sqlclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/server/toysqlwire"
)

// Client is a simple synchronous client.
// It locks send/recv so you can call Exec concurrently but they'll serialize.
type Client struct {
	conn net.Conn
	mu   sync.Mutex
	id   atomic.Uint64

	// Optional per-request timeout (0 = no timeout).
	rwTimeout time.Duration

	// token is sent with every request until the server accepts one.
	token string
	authd bool
}

// ExecError is returned when the server rejects a batch. Results holds the
// statements that ran before the failing one.
type ExecError struct {
	Message string
	Results []*executor.ResultSet
}

func (e *ExecError) Error() string { return e.Message }

func Dial(addr string, timeout time.Duration) (*Client, error) {
	return DialContext(context.Background(), addr, timeout)
}

func DialContext(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	d := net.Dialer{Timeout: timeout}
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c}, nil
}

// SetRWTimeout sets a per-Exec read/write deadline.
// Useful to avoid hanging forever if server dies.
func (c *Client) SetRWTimeout(d time.Duration) {
	if c == nil {
		return
	}
	c.rwTimeout = d
}

// SetToken sets the JWT presented to a server with authentication enabled.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.authd = false
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Exec(sql string) ([]*executor.ResultSet, error) {
	return c.ExecContext(context.Background(), sql)
}

// ExecContext runs a batch of statements. A parse failure is returned as
// *parser.Diagnostic; an execution failure as *ExecError.
func (c *Client) ExecContext(ctx context.Context, sql string) ([]*executor.ResultSet, error) {
	resp, err := c.do(ctx, toysqlwire.ExecuteRequest{SQL: sql})
	if err != nil {
		return nil, err
	}
	if resp.Diagnostic != nil {
		return resp.Results, resp.Diagnostic
	}
	if resp.Error != "" {
		return resp.Results, &ExecError{Message: resp.Error, Results: resp.Results}
	}
	return resp.Results, nil
}

// Tables lists the server's tables.
func (c *Client) Tables(ctx context.Context) ([]catalog.TableMeta, error) {
	resp, err := c.do(ctx, toysqlwire.ExecuteRequest{Meta: toysqlwire.MetaTables})
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	return resp.Tables, nil
}

func (c *Client) do(ctx context.Context, req toysqlwire.ExecuteRequest) (*toysqlwire.ExecuteResponse, error) {
	if c == nil || c.conn == nil {
		return nil, fmt.Errorf("sqlclient: nil client")
	}

	req.ID = c.id.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Apply deadline if configured or context has deadline.
	if err := c.applyDeadline(ctx); err != nil {
		return nil, err
	}
	defer func() {
		// Clear deadline after request so idle connection doesn't expire.
		_ = c.conn.SetDeadline(time.Time{})
	}()

	if !c.authd {
		req.Token = c.token
	}
	if err := toysqlwire.WriteFrame(c.conn, req); err != nil {
		return nil, err
	}

	var resp toysqlwire.ExecuteResponse
	if err := toysqlwire.ReadFrame(c.conn, &resp); err != nil {
		return nil, err
	}

	if resp.ID != req.ID {
		return nil, fmt.Errorf("sqlclient: response id mismatch: got=%d want=%d", resp.ID, req.ID)
	}
	if req.Token != "" && !isAuthError(resp.Error) {
		c.authd = true
	}
	return &resp, nil
}

func isAuthError(msg string) bool {
	return strings.HasPrefix(msg, toysqlwire.ErrUnauthenticated.Error())
}

func (c *Client) applyDeadline(ctx context.Context) error {
	// Prefer context deadline if present; otherwise use rwTimeout.
	if dl, ok := ctx.Deadline(); ok {
		return c.conn.SetDeadline(dl)
	}
	if c.rwTimeout > 0 {
		return c.conn.SetDeadline(time.Now().Add(c.rwTimeout))
	}
	return nil
}
