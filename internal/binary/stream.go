package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Stream is a forward-only reader with position tracking.
//
// The atom engine never seeks backward, so Stream only offers reads and
// skips. When the total size is known, Remaining reports how many bytes are
// left and callers can reject oversized atoms before touching them.
type Stream struct {
	r    io.Reader
	path string
	pos  int64
	size int64 // -1 when unknown
}

// NewStream creates a Stream over r.
//
// size is the number of bytes r will yield, or -1 if unknown. When size is
// unknown and r is an io.Seeker, the size is derived from the seek end.
func NewStream(r io.Reader, size int64, path string) *Stream {
	if size < 0 {
		if sk, ok := r.(io.Seeker); ok {
			size = seekSize(sk)
		}
	}
	return &Stream{
		r:    r,
		path: path,
		size: size,
	}
}

// seekSize returns the bytes between the current position and the end, or -1.
func seekSize(sk io.Seeker) int64 {
	cur, err := sk.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := sk.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := sk.Seek(cur, io.SeekStart); err != nil {
		return -1
	}
	return end - cur
}

// Path returns the file path associated with this stream.
func (s *Stream) Path() string {
	return s.path
}

// Offset returns the number of bytes consumed so far.
func (s *Stream) Offset() int64 {
	return s.pos
}

// Remaining returns the number of unread bytes, or -1 if unknown.
func (s *Stream) Remaining() int64 {
	if s.size < 0 {
		return -1
	}
	return s.size - s.pos
}

// ReadFull fills b.
//
// It returns io.EOF if the stream was already exhausted and
// io.ErrUnexpectedEOF if it ended part way through b.
func (s *Stream) ReadFull(b []byte) error {
	n, err := io.ReadFull(s.r, b)
	s.pos += int64(n)
	return err
}

// ReadN reads exactly n bytes.
//
// With an unknown size the buffer grows as data arrives, so a corrupt length
// cannot force a single huge allocation.
func (s *Stream) ReadN(n int64) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if rem := s.Remaining(); rem >= 0 {
		if n > rem {
			return nil, io.ErrUnexpectedEOF
		}
		buf := make([]byte, n)
		if err := s.ReadFull(buf); err != nil {
			return nil, shortRead(err)
		}
		return buf, nil
	}

	var buf bytes.Buffer
	copied, err := io.CopyN(&buf, s.r, n)
	s.pos += copied
	if err != nil {
		return nil, shortRead(err)
	}
	return buf.Bytes(), nil
}

// Skip discards exactly n bytes without buffering them.
func (s *Stream) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	if rem := s.Remaining(); rem >= 0 && n > rem {
		return io.ErrUnexpectedEOF
	}

	if sk, ok := s.r.(io.Seeker); ok && s.size >= 0 {
		if _, err := sk.Seek(n, io.SeekCurrent); err != nil {
			return err
		}
		s.pos += n
		return nil
	}

	copied, err := io.CopyN(io.Discard, s.r, n)
	s.pos += copied
	if err != nil {
		return shortRead(err)
	}
	return nil
}

// shortRead turns a clean EOF in the middle of a sized read into
// io.ErrUnexpectedEOF.
func shortRead(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Next reads a big-endian value of type T and advances the stream.
func Next[T uint8 | uint16 | uint32 | uint64](s *Stream) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := s.ReadFull(buf); err != nil {
		return zero, err
	}
	return decode[T](buf), nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// decode converts a big-endian buffer of the right width to T.
func decode[T uint8 | uint16 | uint32 | uint64](buf []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(binary.BigEndian.Uint16(buf))
	case uint32:
		return T(binary.BigEndian.Uint32(buf))
	default:
		return T(binary.BigEndian.Uint64(buf))
	}
}
