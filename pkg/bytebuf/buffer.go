// Package bytebuf implements a fixed-capacity FIFO byte buffer over
// caller-supplied storage. The buffer never allocates, never blocks and never
// grows: writes fill the unused tail of the storage, reads drain previously
// written bytes, and both report short transfers as success with a smaller
// count. It is intended for environments without a runtime allocator (static
// buffers, preallocated arenas) as much as for hosted tooling, so the same
// type exposes both the conventional io.Reader/io.Writer surface and a
// minimal count-only surface that cannot fail.
//
// The buffer is a plain synchronous value with no internal locking. Callers
// sharing one Buffer across goroutines must serialize access themselves.
package bytebuf

import (
	"errors"
	"fmt"
)

// ErrNoCapacity is returned when an all-or-nothing operation cannot fit its
// payload into the remaining free space.
var ErrNoCapacity = errors.New("no remaining capacity")

// ErrNoData is returned when an operation asks for more readable bytes than
// the buffer holds.
var ErrNoData = errors.New("no remaining data")

// Buffer is a fixed-capacity FIFO byte buffer backed by caller-supplied
// storage. Two cursors partition the storage: bytes before rpos have been
// read, bytes in [rpos, wpos) are written but unread, and bytes from wpos to
// the capacity are free. Both cursors only move forward; freed space is
// reclaimed solely by the explicit Reset and Compact operations, so once wpos
// reaches the capacity every further Write reports zero bytes accepted until
// the caller compacts or resets.
//
// The zero cursors of a new Buffer mean an empty buffer with full capacity.
// Reads and writes are bounded copies that return immediately with however
// many bytes could be moved, down to zero; nothing waits and nothing is
// retried internally.
type Buffer[S Storage] struct {
	storage S
	rpos    int
	wpos    int
}

// New creates a Buffer over the provided storage. The buffer capacity is the
// length of the storage's byte view and never changes. The storage value is
// owned by the buffer from this point on; callers must not write through
// another handle to the same memory while the buffer is in use.
func New[S Storage](storage S) *Buffer[S] {
	return &Buffer[S]{storage: storage}
}

// NewSlice creates a Buffer over an existing byte slice. Existing contents of
// the slice are treated as free space, not as written data.
func NewSlice(b []byte) *Buffer[Slice] {
	return New(Slice(b))
}

// NewSize creates a Buffer over a freshly allocated slice of n bytes. It is
// the hosted-environment convenience constructor; code that must not allocate
// wraps its own storage with New or NewSlice instead.
func NewSize(n int) *Buffer[Slice] {
	return New(Slice(make([]byte, n)))
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer[S]) Cap() int {
	return len(b.storage.Bytes())
}

// Len returns the number of written but not yet read bytes.
func (b *Buffer[S]) Len() int {
	return b.wpos - b.rpos
}

// Free returns the number of bytes that can still be written.
func (b *Buffer[S]) Free() int {
	return b.Cap() - b.wpos
}

// Bytes returns the readable window of the buffer without copying or
// consuming it. The returned slice aliases the buffer storage and is
// invalidated by any subsequent write, Compact or Reset.
func (b *Buffer[S]) Bytes() []byte {
	return b.storage.Bytes()[b.rpos:b.wpos]
}

// Peek returns up to n bytes of the readable window without consuming them.
// Like Bytes, the result aliases the buffer storage.
func (b *Buffer[S]) Peek(n int) []byte {
	data := b.Bytes()
	if n < 0 {
		n = 0
	}
	if n > len(data) {
		n = len(data)
	}
	return data[:n]
}

// String summarizes the cursor state for diagnostics.
func (b *Buffer[S]) String() string {
	return fmt.Sprintf("Buffer(len=%d, cap=%d, free=%d)", b.Len(), b.Cap(), b.Free())
}

// Write copies as much of p as fits into the free space and advances the
// write cursor by the amount copied. It implements io.Writer, with one
// deliberate deviation from its strictest reading: a short or zero count is
// an ordinary success, not an error, so a full buffer reports (0, nil) for a
// non-empty p. Callers that need all-or-nothing semantics use WriteAll or
// Push.
func (b *Buffer[S]) Write(p []byte) (int, error) {
	n := copy(b.storage.Bytes()[b.wpos:], p)
	b.wpos += n
	return n, nil
}

// Read copies up to len(p) unread bytes into p and advances the read cursor
// by the amount copied. It implements io.Reader but never returns io.EOF: an
// empty buffer reports (0, nil), whether nothing has been written yet or
// everything written has already been read. Exhaustion and emptiness are
// deliberately the same observable outcome; distinguishing them is the
// caller's bookkeeping.
func (b *Buffer[S]) Read(p []byte) (int, error) {
	n := copy(p, b.Bytes())
	b.rpos += n
	return n, nil
}

// WriteAll writes the whole of p or fails. It applies Write repeatedly until
// p is exhausted, and reports ErrNoCapacity as soon as a write accepts zero
// bytes while data remains. Bytes accepted before the failure stay in the
// buffer; nothing is rolled back.
func (b *Buffer[S]) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := b.Write(p)
		if err != nil {
			return fmt.Errorf("bytebuf: write all: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("bytebuf: write all: %w", ErrNoCapacity)
		}
		p = p[n:]
	}
	return nil
}

// Push appends the whole of p in one step. Unlike WriteAll it leaves the
// buffer untouched when p does not fit: either every byte of p is written or
// none is.
func (b *Buffer[S]) Push(p []byte) error {
	if len(p) > b.Free() {
		return fmt.Errorf("bytebuf: push %d bytes into %d free: %w", len(p), b.Free(), ErrNoCapacity)
	}
	b.wpos += copy(b.storage.Bytes()[b.wpos:], p)
	return nil
}

// Discard consumes n readable bytes without copying them anywhere. It fails
// with ErrNoData, consuming nothing, if fewer than n bytes are readable.
func (b *Buffer[S]) Discard(n int) error {
	if n < 0 || n > b.Len() {
		return fmt.Errorf("bytebuf: discard %d of %d readable: %w", n, b.Len(), ErrNoData)
	}
	b.rpos += n
	return nil
}

// Reset returns the buffer to its initial empty state. Storage contents are
// left as they are; only the cursors move.
func (b *Buffer[S]) Reset() {
	b.rpos = 0
	b.wpos = 0
}

// Compact slides the unread window to the front of the storage, turning the
// space occupied by already-read bytes back into free capacity. It is the
// only way, besides Reset, to regain capacity; Write never compacts on its
// own.
func (b *Buffer[S]) Compact() {
	if b.rpos == 0 {
		return
	}
	buf := b.storage.Bytes()
	b.wpos = copy(buf, buf[b.rpos:b.wpos])
	b.rpos = 0
}

// Writable returns the free region of the storage for callers that want to
// fill it in place, avoiding the copy a Write would make. After writing into
// the returned slice the caller must Commit the number of bytes produced.
// The slice aliases the buffer storage and is invalidated by any other
// mutating operation.
func (b *Buffer[S]) Writable() []byte {
	return b.storage.Bytes()[b.wpos:]
}

// Commit marks n bytes of the Writable region as written, advancing the
// write cursor. It fails with ErrNoCapacity, committing nothing, if n
// exceeds the free space.
func (b *Buffer[S]) Commit(n int) error {
	if n < 0 || n > b.Free() {
		return fmt.Errorf("bytebuf: commit %d bytes into %d free: %w", n, b.Free(), ErrNoCapacity)
	}
	b.wpos += n
	return nil
}
