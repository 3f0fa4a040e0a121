package bytebuf

// Storage is a fixed-length byte region supplied by the caller. The slice
// returned by Bytes must keep the same length and backing memory for the
// lifetime of the Buffer wrapping it; its length is the buffer capacity.
//
// A Buffer takes exclusive ownership of its Storage value. Whether the value
// itself owns the memory (a heap slice) or merely refers to it (a slice of a
// caller's array) is invisible to the buffer.
type Storage interface {
	Bytes() []byte
}

// Slice adapts a plain byte slice to the Storage interface.
type Slice []byte

// Bytes returns the slice itself.
func (s Slice) Bytes() []byte { return s }
