// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package redisconn provides a minimal RESP (Redis Serialization Protocol)
// connection implementing the rejson.Conn contract.
//
// The connection is deliberately small: one socket, bufio framing, one
// in-flight command at a time. Pooling, retries, pipelining and cluster
// awareness are out of scope; wrap or replace this package if you need
// them.
//
// Server error lines ("-ERR ...") read where a status, bulk or multi-bulk
// reply is expected are surfaced as the reply text itself, so the codec
// layer above can detect the error marker and produce a typed failure.
// Where an integer reply is expected an error line becomes an Error value,
// since there is no string reply to embed it in.
package redisconn

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// Error is a server error line read where the protocol cannot carry it as
// reply text (integer replies). The value is the line without the leading
// type marker, e.g. "ERR wrong number of arguments".
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Conn is a single RESP connection. It is not safe for concurrent use;
// the caller owns synchronization.
type Conn struct {
	conn net.Conn
	br   *bufio.Reader
	bw   *bufio.Writer

	dialTimeout  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// DialTimeout sets the timeout for establishing the TCP connection
func DialTimeout(d time.Duration) func(*Conn) {
	return func(c *Conn) {
		c.dialTimeout = d
	}
}

// ReadTimeout sets the deadline applied before each reply read
func ReadTimeout(d time.Duration) func(*Conn) {
	return func(c *Conn) {
		c.readTimeout = d
	}
}

// WriteTimeout sets the deadline applied before each command write
func WriteTimeout(d time.Duration) func(*Conn) {
	return func(c *Conn) {
		c.writeTimeout = d
	}
}

// Dial connects to a Redis server at the given address.
//
// Example:
//
//	conn, err := redisconn.Dial("localhost:6379",
//	    redisconn.DialTimeout(5*time.Second),
//	    redisconn.ReadTimeout(10*time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
func Dial(addr string, opts ...func(*Conn)) (*Conn, error) {
	c := &Conn{}
	for _, opt := range opts {
		opt(c)
	}

	nc, err := net.DialTimeout("tcp", addr, c.dialTimeout)
	if err != nil {
		return nil, err
	}
	c.attach(nc)
	return c, nil
}

// NewConn wraps an established network connection, which is useful for
// tests (net.Pipe) and for callers managing their own sockets.
func NewConn(nc net.Conn, opts ...func(*Conn)) *Conn {
	c := &Conn{}
	for _, opt := range opts {
		opt(c)
	}
	c.attach(nc)
	return c
}

func (c *Conn) attach(nc net.Conn) {
	c.conn = nc
	c.br = bufio.NewReader(nc)
	c.bw = bufio.NewWriter(nc)
}

// Close closes the underlying network connection
func (c *Conn) Close() error {
	return c.conn.Close()
}

// SendCommand writes one command as a RESP array of bulk strings and
// flushes it.
func (c *Conn) SendCommand(name string, args [][]byte) error {
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}

	if err := c.writeHeader('*', int64(1+len(args))); err != nil {
		return err
	}
	if err := c.writeBulk([]byte(name)); err != nil {
		return err
	}
	for _, arg := range args {
		if err := c.writeBulk(arg); err != nil {
			return err
		}
	}
	return c.bw.Flush()
}

// ReadStatusReply reads a status line. A server error line is returned as
// the status text, marker included, for the layer above to validate.
func (c *Conn) ReadStatusReply() (string, error) {
	line, err := c.readLine()
	if err != nil {
		return "", err
	}

	switch line[0] {
	case '+':
		return string(line[1:]), nil
	case '-':
		return string(line), nil
	default:
		return "", fmt.Errorf("redisconn: unexpected reply type %q for status reply", line[0])
	}
}

// ReadBulkReply reads a bulk string reply. A nil result means the server
// sent a null bulk. A server error line is returned as the bulk text,
// marker included.
func (c *Conn) ReadBulkReply() (*string, error) {
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}

	switch line[0] {
	case '$':
		return c.readBulkBody(line)
	case '-':
		s := string(line)
		return &s, nil
	default:
		return nil, fmt.Errorf("redisconn: unexpected reply type %q for bulk reply", line[0])
	}
}

// ReadIntegerReply reads an integer reply. A server error line becomes an
// Error value, since an integer cannot carry the marker.
func (c *Conn) ReadIntegerReply() (int64, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	switch line[0] {
	case ':':
		n, err := strconv.ParseInt(string(line[1:]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("redisconn: malformed integer reply %q: %w", line, err)
		}
		return n, nil
	case '-':
		return 0, Error(line[1:])
	default:
		return 0, fmt.Errorf("redisconn: unexpected reply type %q for integer reply", line[0])
	}
}

// ReadMultiBulkReply reads an array of bulk strings; nil elements are null
// bulks. A nil slice means the server sent a null array. A server error
// line becomes a single-element reply holding the error text, marker
// included.
func (c *Conn) ReadMultiBulkReply() ([]*string, error) {
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}

	switch line[0] {
	case '*':
		n, err := strconv.ParseInt(string(line[1:]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redisconn: malformed multi-bulk header %q: %w", line, err)
		}
		if n < 0 {
			return nil, nil
		}

		rep := make([]*string, 0, n)
		for i := int64(0); i < n; i++ {
			el, err := c.ReadBulkReply()
			if err != nil {
				return nil, err
			}
			rep = append(rep, el)
		}
		return rep, nil
	case '-':
		s := string(line)
		return []*string{&s}, nil
	default:
		return nil, fmt.Errorf("redisconn: unexpected reply type %q for multi-bulk reply", line[0])
	}
}

// readBulkBody reads the payload of a bulk reply whose "$<len>" header
// line has already been consumed.
func (c *Conn) readBulkBody(header []byte) (*string, error) {
	n, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("redisconn: malformed bulk header %q: %w", header, err)
	}
	if n < 0 {
		return nil, nil
	}

	buf := make([]byte, n+2)
	if _, err := io.ReadFull(c.br, buf); err != nil {
		return nil, err
	}
	if buf[n] != '\r' || buf[n+1] != '\n' {
		return nil, fmt.Errorf("redisconn: bulk reply missing terminator")
	}

	s := string(buf[:n])
	return &s, nil
}

// readLine reads one CRLF-terminated protocol line, applying the read
// deadline if one is configured.
func (c *Conn) readLine() ([]byte, error) {
	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return nil, err
		}
	}

	line, err := c.br.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	if len(line) < 3 || line[len(line)-2] != '\r' {
		return nil, fmt.Errorf("redisconn: malformed protocol line %q", line)
	}
	return line[:len(line)-2], nil
}

// writeHeader writes a "<marker><n>\r\n" protocol header.
func (c *Conn) writeHeader(marker byte, n int64) error {
	if err := c.bw.WriteByte(marker); err != nil {
		return err
	}
	if _, err := c.bw.WriteString(strconv.FormatInt(n, 10)); err != nil {
		return err
	}
	_, err := c.bw.WriteString("\r\n")
	return err
}

// writeBulk writes one argument as a bulk string.
func (c *Conn) writeBulk(data []byte) error {
	if err := c.writeHeader('$', int64(len(data))); err != nil {
		return err
	}
	if _, err := c.bw.Write(data); err != nil {
		return err
	}
	_, err := c.bw.WriteString("\r\n")
	return err
}
