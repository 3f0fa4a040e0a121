package bytebuf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeJSON marshals v as JSON and appends the encoding to the buffer in one
// step, returning the number of bytes written. When the encoding does not fit
// in the free space it fails with ErrNoCapacity and writes nothing.
func (b *Buffer[S]) EncodeJSON(v any) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("bytebuf: encode json: %w", err)
	}
	if err := b.Push(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// DecodeJSON decodes one JSON value from the readable window into v and
// consumes exactly the bytes the decoder read, leaving any following data
// (for example a second queued message) readable. It fails with ErrNoData on
// an empty window and consumes nothing when decoding fails.
func (b *Buffer[S]) DecodeJSON(v any) error {
	if b.Len() == 0 {
		return fmt.Errorf("bytebuf: decode json: %w", ErrNoData)
	}
	dec := json.NewDecoder(bytes.NewReader(b.Bytes()))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("bytebuf: decode json: %w", err)
	}
	return b.Discard(int(dec.InputOffset()))
}

// EncodeMsgpack marshals v as msgpack and appends the encoding to the buffer
// in one step, returning the number of bytes written. When the encoding does
// not fit it fails with ErrNoCapacity and writes nothing.
func (b *Buffer[S]) EncodeMsgpack(v any) (int, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("bytebuf: encode msgpack: %w", err)
	}
	if err := b.Push(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// DecodeMsgpack decodes the readable window into v as a single msgpack
// message and consumes the whole window. Unlike DecodeJSON it does not
// support several queued messages; encode-decode pairs must alternate. It
// fails with ErrNoData on an empty window and consumes nothing when decoding
// fails.
func (b *Buffer[S]) DecodeMsgpack(v any) error {
	if b.Len() == 0 {
		return fmt.Errorf("bytebuf: decode msgpack: %w", ErrNoData)
	}
	if err := msgpack.Unmarshal(b.Bytes(), v); err != nil {
		return fmt.Errorf("bytebuf: decode msgpack: %w", err)
	}
	return b.Discard(b.Len())
}
