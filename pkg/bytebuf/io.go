package bytebuf

import (
	"fmt"
	"io"
)

// TryReader is the minimal read capability for environments that cannot
// afford the io surface: a bounded, immediate copy that reports a plain
// count. A result of 0 means "no data now".
type TryReader interface {
	TryRead(p []byte) int
}

// TryWriter is the minimal write capability counterpart to TryReader.
// A result of 0 means "no space now".
type TryWriter interface {
	TryWrite(p []byte) int
}

// Flusher is implemented by types that can flush buffered output to an
// underlying sink.
type Flusher interface {
	Flush() error
}

var (
	_ io.ReadWriter = (*Buffer[Slice])(nil)
	_ io.ByteReader = (*Buffer[Slice])(nil)
	_ io.ByteWriter = (*Buffer[Slice])(nil)
	_ TryReader     = (*Buffer[Slice])(nil)
	_ TryWriter     = (*Buffer[Slice])(nil)
	_ Flusher       = (*Buffer[Slice])(nil)
)

// TryRead copies up to len(p) unread bytes into p and returns the count.
// It moves exactly the bytes Read would move, without the error value the
// io surface carries.
func (b *Buffer[S]) TryRead(p []byte) int {
	n := copy(p, b.Bytes())
	b.rpos += n
	return n
}

// TryWrite copies as much of p as fits and returns the count, 0 when the
// buffer is full.
func (b *Buffer[S]) TryWrite(p []byte) int {
	n := copy(b.storage.Bytes()[b.wpos:], p)
	b.wpos += n
	return n
}

// Flush implements Flusher. The buffer has no sink behind it, so Flush
// always succeeds without side effects.
func (b *Buffer[S]) Flush() error {
	return nil
}

// ReadByte implements io.ByteReader. It fails with ErrNoData when no unread
// bytes remain.
func (b *Buffer[S]) ReadByte() (byte, error) {
	if b.Len() == 0 {
		return 0, fmt.Errorf("bytebuf: read byte: %w", ErrNoData)
	}
	c := b.storage.Bytes()[b.rpos]
	b.rpos++
	return c, nil
}

// WriteByte implements io.ByteWriter. It fails with ErrNoCapacity when the
// buffer is full.
func (b *Buffer[S]) WriteByte(c byte) error {
	if b.Free() == 0 {
		return fmt.Errorf("bytebuf: write byte: %w", ErrNoCapacity)
	}
	b.storage.Bytes()[b.wpos] = c
	b.wpos++
	return nil
}
