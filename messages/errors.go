package messages

import "fmt"

// UnimplementedTypeError is returned by Dispatch when the message-type code
// peeked off the bitstream has no registered decoder - spec §4.6: reserved
// values and types not enumerated in §4.5 (22, 25, 26, and anything else)
// produce UnimplementedType(raw) rather than an error that looks like a
// malformed message.
type UnimplementedTypeError struct {
	Type uint8
}

func (e *UnimplementedTypeError) Error() string {
	return fmt.Sprintf("messages: unimplemented message type %d", e.Type)
}
