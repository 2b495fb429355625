package toysqlwire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame_WriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, ExecuteRequest{ID: 7, SQL: "select a from t;"}))

	var got ExecuteRequest
	require.NoError(t, ReadFrame(&buf, &got))
	require.Equal(t, uint64(7), got.ID)
	require.Equal(t, "select a from t;", got.SQL)
	require.Zero(t, buf.Len())
}

func TestFrame_RejectsEmptyAndOversized(t *testing.T) {
	var hdr [4]byte
	var v ExecuteRequest

	require.ErrorContains(t, ReadFrame(bytes.NewReader(hdr[:]), &v), "empty frame")

	binary.BigEndian.PutUint32(hdr[:], MaxFrameSize+1)
	require.ErrorContains(t, ReadFrame(bytes.NewReader(hdr[:]), &v), "frame too large")
}

func TestFrame_BadJSON(t *testing.T) {
	body := []byte("{nope")
	var buf bytes.Buffer
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(body)))
	buf.Write(hdr[:])
	buf.Write(body)

	var v ExecuteRequest
	require.ErrorContains(t, ReadFrame(&buf, &v), "bad json")
}
