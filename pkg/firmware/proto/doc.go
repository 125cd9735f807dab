// Package proto implements the wire protocol of the rover control link.
package proto

// The control link carries delimited ASCII frames from a controller to
// the firmware and compact response lines back:
//
//	;SEQ,OP,ARG1,ARG2[,ARG3];
//
// SEQ is 0-2 hex digits, OP is a short opcode token, ARG1 is 0-2 hex
// digits (one byte, usually a packed two-wheel speed), ARG2 and ARG3
// are decimal integers. Responses are "#TRK,<n>\n" for tracking
// telemetry and "#ERROR,<token>\n" for protocol errors.
//
// All numeric decoding is total: malformed hex or decimal fields
// degrade to 0 instead of failing the frame. Only structural problems
// (empty frame, too few fields, empty opcode) reject a frame.
//
// Producer: controller (console, bridge)
// Consumer: rover firmware
