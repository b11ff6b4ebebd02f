package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// BinaryAddressedMessage is message type 6 (spec §4.5).
type BinaryAddressedMessage struct {
	Common

	SequenceNumber  uint8
	DestinationMMSI uint32
	Retransmit      bool
	DAC             uint16
	FID             uint8
	ApplicationData []byte
}

func (m BinaryAddressedMessage) MessageType() Type { return Type(m.Common.Type) }

func decodeBinaryAddressedMessage(r *bitstream.Reader, common Common) (BinaryAddressedMessage, error) {
	m := BinaryAddressedMessage{Common: common}

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

	dac, err := r.TakeU(10)
	if err != nil {
		return m, err
	}
	m.DAC = uint16(dac)

	fid, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.FID = uint8(fid)

	m.ApplicationData = append([]byte(nil), r.Bytes()...)
	return m, nil
}
