package csv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closableBuffer is an in-memory sink that counts Close calls.
type closableBuffer struct {
	bytes.Buffer
	closes int
}

func (b *closableBuffer) Close() error {
	b.closes++
	return nil
}

// brokenWriter fails every write.
type brokenWriter struct {
	err    error
	closes int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func (w *brokenWriter) Close() error {
	w.closes++
	return nil
}

func TestWriter_WritesRowsInOrder(t *testing.T) {
	var out closableBuffer
	dst := NewWriter(&out)

	require.NoError(t, dst.Write([]string{"name", "age"}))
	require.NoError(t, dst.Write([]string{"Alice", "30"}))
	require.NoError(t, dst.Write([]string{"a,b", `c"d`}))
	require.NoError(t, dst.Close())

	want := "name,age\r\nAlice,30\r\n\"a,b\",\"c\"\"d\"\r\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, out.closes)
}

func TestWriter_CloseIsIdempotent(t *testing.T) {
	var out closableBuffer
	dst := NewWriter(&out)

	require.NoError(t, dst.Write([]string{"a"}))
	require.NoError(t, dst.Close())
	require.NoError(t, dst.Close())
	assert.Equal(t, 1, out.closes)

	err := dst.Write([]string{"b"})
	assert.ErrorIs(t, err, ErrWriterClosed)
	assert.Equal(t, "a\r\n", out.String())
}

func TestWriter_FlushWithoutClose(t *testing.T) {
	var out bytes.Buffer
	dst := NewWriter(&out)

	require.NoError(t, dst.Write([]string{"a", "b"}))
	require.NoError(t, dst.Flush())
	assert.Equal(t, "a,b\r\n", out.String())

	// The writer stays usable after Flush.
	require.NoError(t, dst.Write([]string{"c"}))
	require.NoError(t, dst.Flush())
	assert.Equal(t, "a,b\r\nc\r\n", out.String())
}

func TestWriter_WriteFailureIsSticky(t *testing.T) {
	cause := errors.New("pipe burst")
	out := &brokenWriter{err: cause}
	dst := NewWriter(out)

	require.NoError(t, dst.Write([]string{"buffered"}))
	err := dst.Flush()
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.ErrorIs(t, err, cause)

	// The resource was released on failure and no further rows flow.
	assert.Equal(t, 1, out.closes)
	assert.Equal(t, err, dst.Write([]string{"rejected"}))
	assert.Equal(t, err, dst.Err())

	// Close after failure releases nothing further.
	require.NoError(t, dst.Close())
	assert.Equal(t, 1, out.closes)
}

func TestWriter_LargeRowHitsUnderlyingWriter(t *testing.T) {
	cause := errors.New("no space left")
	out := &brokenWriter{err: cause}
	dst := NewWriter(out)

	// A row larger than the internal buffer forces a write-through, so the
	// failure surfaces from Write itself.
	big := make([]byte, 64*1024)
	for i := range big {
		big[i] = 'x'
	}
	err := dst.Write([]string{string(big)})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, out.closes)
}

func TestWriter_EmptyRow(t *testing.T) {
	var out bytes.Buffer
	dst := NewWriter(&out)

	require.NoError(t, dst.Write([]string{""}))
	require.NoError(t, dst.Write([]string{"", "", "", ""}))
	require.NoError(t, dst.Flush())
	assert.Equal(t, "\r\n,,,\r\n", out.String())
}
