package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// AddressedSafetyRelatedMessage is message type 12: seq(2), dest-mmsi(30),
// retransmit(1), spare(1), then 6-bit ASCII text over the remainder rounded
// down to a whole 6-bit group (spec §4.5).
type AddressedSafetyRelatedMessage struct {
	Common

	SequenceNumber  uint8
	DestinationMMSI uint32
	Retransmit      bool
	Text            string
}

func (m AddressedSafetyRelatedMessage) MessageType() Type { return Type(m.Common.Type) }

func decodeAddressedSafetyRelatedMessage(r *bitstream.Reader, common Common) (AddressedSafetyRelatedMessage, error) {
	m := AddressedSafetyRelatedMessage{Common: common}

	seq, err := r.TakeU(2)
	if err != nil {
		return m, err
	}
	m.SequenceNumber = uint8(seq)

	destMMSI, err := r.TakeU(30)
	if err != nil {
		return m, err
	}
	m.DestinationMMSI = uint32(destMMSI)

	if m.Retransmit, err = readBool(r); err != nil {
		return m, err
	}
	if err := r.Skip(1); err != nil { // spare
		return m, err
	}

	textBits := (r.Remaining() / 6) * 6
	if textBits > 0 {
		if m.Text, err = bitstream.ReadSixBitText(r, textBits); err != nil {
			return m, err
		}
	}
	return m, nil
}
