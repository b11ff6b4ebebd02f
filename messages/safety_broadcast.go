package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// SafetyRelatedBroadcastMessage is message type 14: spare(2), then 6-bit
// ASCII text over the remainder (spec §4.5).
type SafetyRelatedBroadcastMessage struct {
	Common

	Text string
}

func (m SafetyRelatedBroadcastMessage) MessageType() Type { return Type(m.Common.Type) }

func decodeSafetyRelatedBroadcastMessage(r *bitstream.Reader, common Common) (SafetyRelatedBroadcastMessage, error) {
	m := SafetyRelatedBroadcastMessage{Common: common}
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	textBits := (r.Remaining() / 6) * 6
	if textBits > 0 {
		text, err := bitstream.ReadSixBitText(r, textBits)
		if err != nil {
			return m, err
		}
		m.Text = text
	}
	return m, nil
}
