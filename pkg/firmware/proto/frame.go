package proto

import (
	"strconv"
	"strings"
)

// Delimiter bounds each frame on the wire.
const Delimiter = ';'

// Command is one decoded frame.
type Command struct {
	// Seq is the advisory sequence number from the frame. It is
	// reported back nowhere and never used for ordering.
	Seq byte
	// Op is the opcode token, trimmed and upper-cased.
	Op string
	// Arg1 is a hex-decoded byte, usually a packed wheel-speed pair.
	Arg1 byte
	// Arg2 and Arg3 are decimal integers (duration, color or tone
	// components). Malformed fields decode to 0.
	Arg2 int
	Arg3 int
}

// HexByte decodes at most the first two characters of s as a
// case-insensitive hex byte. The first valid character is the high
// nibble. Decoding stops at the first invalid character keeping the
// prefix, so HexByte("1G") == 0x10. It never fails: empty or fully
// invalid input decodes to 0.
func HexByte(s string) byte {
	hi, ok := hexNibble(s, 0)
	if !ok {
		return 0
	}
	lo, _ := hexNibble(s, 1)
	return hi<<4 | lo
}

func hexNibble(s string, i int) (byte, bool) {
	if i >= len(s) {
		return 0, false
	}
	switch c := s[i]; {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Sanitize strips control characters and stray delimiters from a raw
// frame and trims surrounding whitespace.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= 0x20 && c != Delimiter {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

// decimal decodes a decimal integer field, degrading to 0 on any
// malformed input.
func decimal(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseFrame decodes the content of one frame into a Command. It
// returns ErrParseFail if the frame has no usable structure; it never
// returns a partially populated Command.
func ParseFrame(raw string) (*Command, error) {
	s := Sanitize(raw)
	if len(s) < 2 {
		return nil, ErrParseFail
	}
	if s[0] == Delimiter {
		s = s[1:]
	}
	fields := strings.Split(s, ",")
	if len(fields) < 2 {
		return nil, ErrParseFail
	}
	cmd := &Command{
		Seq: HexByte(strings.TrimSpace(fields[0])),
		Op:  strings.ToUpper(strings.TrimSpace(fields[1])),
	}
	if cmd.Op == "" {
		return nil, ErrParseFail
	}
	if len(fields) > 2 {
		cmd.Arg1 = HexByte(strings.TrimSpace(fields[2]))
	}
	if len(fields) > 3 {
		cmd.Arg2 = decimal(fields[3])
	}
	if len(fields) > 4 {
		cmd.Arg3 = decimal(fields[4])
	}
	return cmd, nil
}
