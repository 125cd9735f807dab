package proto

import "strconv"

// ErrorToken maps a protocol error to its wire token. Error values stay
// typed inside the firmware; tokens exist only at this boundary.
func ErrorToken(err error) string {
	switch e := err.(type) {
	case *UnknownOpcodeError:
		return "UNKNOWN_OP_" + e.Op
	case *InvalidArgsError:
		return e.Op + "_INVALID_ARGS"
	}
	return "PARSE_FAIL"
}

// EncodeError encodes an error response line.
func EncodeError(err error) string {
	return "#ERROR," + ErrorToken(err) + "\n"
}

// EncodeTracking encodes a tracking telemetry line for a 2-bit
// tracking state.
func EncodeTracking(state int) string {
	return "#TRK," + strconv.Itoa(state) + "\n"
}
