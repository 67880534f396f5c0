// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package redisconn

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConn returns a Conn whose peer writes the given reply bytes.
func newTestConn(t *testing.T, reply string) *Conn {
	t.Helper()

	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	go func() {
		if reply != "" {
			server.Write([]byte(reply)) //nolint:errcheck // best-effort test peer
		}
	}()

	return NewConn(client)
}

func TestSendCommandWireFormat(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	conn := NewConn(client)

	want := "*4\r\n" +
		"$8\r\nJSON.SET\r\n" +
		"$6\r\nuser:1\r\n" +
		"$1\r\n.\r\n" +
		"$7\r\n{\"a\":1}\r\n"

	got := make(chan string, 1)
	go func() {
		buf := make([]byte, len(want))
		if _, err := io.ReadFull(server, buf); err != nil {
			got <- "read error: " + err.Error()
			return
		}
		got <- string(buf)
	}()

	err := conn.SendCommand("JSON.SET", [][]byte{
		[]byte("user:1"),
		[]byte("."),
		[]byte(`{"a":1}`),
	})
	require.NoError(t, err)
	assert.Equal(t, want, <-got)
}

func TestSendCommandNoArgs(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	conn := NewConn(client)

	want := "*1\r\n$9\r\nJSON.MGET\r\n"

	got := make(chan string, 1)
	go func() {
		buf := make([]byte, len(want))
		if _, err := io.ReadFull(server, buf); err != nil {
			got <- "read error: " + err.Error()
			return
		}
		got <- string(buf)
	}()

	require.NoError(t, conn.SendCommand("JSON.MGET", nil))
	assert.Equal(t, want, <-got)
}

func TestReadStatusReply(t *testing.T) {
	conn := newTestConn(t, "+OK\r\n")

	status, err := conn.ReadStatusReply()
	require.NoError(t, err)
	assert.Equal(t, "OK", status)
}

func TestReadStatusReplyErrorLine(t *testing.T) {
	// Server error lines surface as reply text, marker included, so the
	// codec layer can detect them.
	conn := newTestConn(t, "-ERR unknown command\r\n")

	status, err := conn.ReadStatusReply()
	require.NoError(t, err)
	assert.Equal(t, "-ERR unknown command", status)
}

func TestReadBulkReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  *string
	}{
		{
			name:  "plain bulk",
			reply: "$5\r\nhello\r\n",
			want:  ptr("hello"),
		},
		{
			name:  "empty bulk",
			reply: "$0\r\n\r\n",
			want:  ptr(""),
		},
		{
			name:  "null bulk",
			reply: "$-1\r\n",
			want:  nil,
		},
		{
			name:  "error line as bulk text",
			reply: "-ERR no such key\r\n",
			want:  ptr("-ERR no such key"),
		},
		{
			name:  "bulk containing binary-safe payload",
			reply: "$7\r\na\r\nb\r\nc\r\n",
			want:  ptr("a\r\nb\r\nc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newTestConn(t, tt.reply)

			got, err := conn.ReadBulkReply()
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestReadIntegerReply(t *testing.T) {
	conn := newTestConn(t, ":42\r\n")

	n, err := conn.ReadIntegerReply()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestReadIntegerReplyErrorLine(t *testing.T) {
	// An integer cannot carry the error marker, so the line becomes a
	// transport-level Error.
	conn := newTestConn(t, "-ERR wrong number of arguments\r\n")

	_, err := conn.ReadIntegerReply()
	var connErr Error
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "ERR wrong number of arguments", connErr.Error())
}

func TestReadMultiBulkReply(t *testing.T) {
	conn := newTestConn(t, "*3\r\n$3\r\nfoo\r\n$-1\r\n$3\r\nbar\r\n")

	rep, err := conn.ReadMultiBulkReply()
	require.NoError(t, err)

	require.Len(t, rep, 3)
	require.NotNil(t, rep[0])
	assert.Equal(t, "foo", *rep[0])
	assert.Nil(t, rep[1])
	require.NotNil(t, rep[2])
	assert.Equal(t, "bar", *rep[2])
}

func TestReadMultiBulkReplyNull(t *testing.T) {
	conn := newTestConn(t, "*-1\r\n")

	rep, err := conn.ReadMultiBulkReply()
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestReadMultiBulkReplyErrorLine(t *testing.T) {
	// A server error manifests as a single-element reply.
	conn := newTestConn(t, "-ERR no such key\r\n")

	rep, err := conn.ReadMultiBulkReply()
	require.NoError(t, err)

	require.Len(t, rep, 1)
	require.NotNil(t, rep[0])
	assert.Equal(t, "-ERR no such key", *rep[0])
}

func TestUnexpectedReplyShapes(t *testing.T) {
	t.Run("integer where status expected", func(t *testing.T) {
		conn := newTestConn(t, ":1\r\n")
		_, err := conn.ReadStatusReply()
		require.Error(t, err)
	})

	t.Run("status where integer expected", func(t *testing.T) {
		conn := newTestConn(t, "+OK\r\n")
		_, err := conn.ReadIntegerReply()
		require.Error(t, err)
	})

	t.Run("status where bulk expected", func(t *testing.T) {
		conn := newTestConn(t, "+OK\r\n")
		_, err := conn.ReadBulkReply()
		require.Error(t, err)
	})
}

func TestMalformedProtocolLine(t *testing.T) {
	conn := newTestConn(t, "$5\nhello\r\n")

	_, err := conn.ReadBulkReply()
	require.Error(t, err)
}

func ptr(s string) *string { return &s }
