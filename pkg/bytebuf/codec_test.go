package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	A int    `json:"a" msgpack:"a"`
	S string `json:"s,omitempty" msgpack:"s,omitempty"`
}

func TestBuffer_JSONRoundTrip(t *testing.T) {
	buf := NewSize(64)

	n, err := buf.EncodeJSON(payload{A: 4})
	require.NoError(t, err)
	require.Equal(t, `{"a":4}`, string(buf.Bytes()))
	require.Equal(t, 7, n)

	var got payload
	require.NoError(t, buf.DecodeJSON(&got))
	require.Equal(t, 4, got.A)
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_JSONQueuedMessages(t *testing.T) {
	buf := NewSize(64)

	_, err := buf.EncodeJSON(payload{A: 9})
	require.NoError(t, err)
	_, err = buf.EncodeJSON(payload{A: 234})
	require.NoError(t, err)

	// Decoding consumes exactly one message, leaving the second readable.
	var got payload
	require.NoError(t, buf.DecodeJSON(&got))
	require.Equal(t, 9, got.A)
	require.Equal(t, `{"a":234}`, string(buf.Bytes()))

	require.NoError(t, buf.DecodeJSON(&got))
	require.Equal(t, 234, got.A)
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_JSONEncodeNoCapacity(t *testing.T) {
	buf := NewSize(4)

	_, err := buf.EncodeJSON(payload{A: 4})
	require.ErrorIs(t, err, ErrNoCapacity)
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_JSONDecodeEmpty(t *testing.T) {
	buf := NewSize(8)

	var got payload
	require.ErrorIs(t, buf.DecodeJSON(&got), ErrNoData)
}

func TestBuffer_JSONDecodeMalformed(t *testing.T) {
	buf := NewSize(16)
	require.NoError(t, buf.Push([]byte(`{"a":`)))

	var got payload
	require.Error(t, buf.DecodeJSON(&got))
	// Nothing was consumed by the failed decode.
	require.Equal(t, 5, buf.Len())
}

func TestBuffer_MsgpackRoundTrip(t *testing.T) {
	buf := NewSize(64)

	n, err := buf.EncodeMsgpack(payload{A: 7, S: "hi"})
	require.NoError(t, err)
	require.Equal(t, n, buf.Len())

	var got payload
	require.NoError(t, buf.DecodeMsgpack(&got))
	require.Equal(t, payload{A: 7, S: "hi"}, got)
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_MsgpackEncodeNoCapacity(t *testing.T) {
	buf := NewSize(2)

	_, err := buf.EncodeMsgpack(payload{A: 7, S: "too large"})
	require.ErrorIs(t, err, ErrNoCapacity)
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_MsgpackDecodeEmpty(t *testing.T) {
	buf := NewSize(8)

	var got payload
	require.ErrorIs(t, buf.DecodeMsgpack(&got), ErrNoData)
}
