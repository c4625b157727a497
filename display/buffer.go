package display

// Buffer is a fixed capacity, zero terminated text buffer shared with the host UI. A buffer
// of capacity n holds at most n-1 bytes of text.
type Buffer struct {
	b []byte
}

// NewBuffer returns a zeroed buffer of the given capacity. Negative capacities are treated
// as zero.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{b: make([]byte, max(capacity, 0))}
}

// Cap returns the buffer capacity including the terminating zero.
func (b *Buffer) Cap() int { return len(b.b) }

// Available returns the maximum text length the buffer can hold.
func (b *Buffer) Available() int { return max(len(b.b)-1, 0) }

// Reset zeroes the whole buffer.
func (b *Buffer) Reset() {
	clear(b.b)
}

// SetString clears the buffer and copies as much of s as fits. It reports whether s was
// truncated.
func (b *Buffer) SetString(s string) bool {
	b.Reset()
	n := copy(b.b[:b.Available()], s)

	return n < len(s)
}

// String returns the text up to the first zero byte.
func (b *Buffer) String() string {
	for i, c := range b.b {
		if c == 0 {
			return string(b.b[:i])
		}
	}

	return string(b.b)
}

// Bytes returns the raw buffer contents, including padding zeros.
func (b *Buffer) Bytes() []byte { return b.b }
