package export

import "iter"

// Stream pulls tokens from a sequence one at a time and can look at the next
// token without consuming it. At most one token is buffered.
type Stream struct {
	next func() (string, bool)
	stop func()

	peeked    string
	hasPeeked bool
}

// NewStream starts pulling from seq. Close must be called to release the
// sequence when the stream is not drained.
func NewStream(seq iter.Seq[string]) *Stream {
	next, stop := iter.Pull(seq)
	return &Stream{next: next, stop: stop}
}

// Next consumes and returns the next token.
func (s *Stream) Next() (string, bool) {
	if s.hasPeeked {
		s.hasPeeked = false
		return s.peeked, true
	}
	return s.next()
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (string, bool) {
	if !s.hasPeeked {
		tok, ok := s.next()
		if !ok {
			return "", false
		}
		s.peeked, s.hasPeeked = tok, true
	}
	return s.peeked, true
}

// Close stops the underlying sequence.
func (s *Stream) Close() {
	s.hasPeeked = false
	s.stop()
}
