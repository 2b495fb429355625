package toysqlwire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

const (
	// MaxFrameSize limits memory usage on malformed/hostile input.
	MaxFrameSize = 8 << 20 // 8 MiB
)

// ReadFrame reads a single length-prefixed JSON frame.
func ReadFrame(r io.Reader, v any) error {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n == 0 {
		return fmt.Errorf("toysqlwire: empty frame")
	}
	if n > MaxFrameSize {
		return fmt.Errorf("toysqlwire: frame too large: %d > %d", n, MaxFrameSize)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("toysqlwire: bad json: %w", err)
	}
	return nil
}

// WriteFrame writes v as a length-prefixed JSON frame in a single Write.
func WriteFrame(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("toysqlwire: marshal: %w", err)
	}
	if len(b) > MaxFrameSize {
		return fmt.Errorf("toysqlwire: json too large: %d > %d", len(b), MaxFrameSize)
	}

	out := make([]byte, 4+len(b))
	binary.BigEndian.PutUint32(out[:4], uint32(len(b)))
	copy(out[4:], b)

	_, err = w.Write(out)
	return err
}
