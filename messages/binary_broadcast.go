package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// BinaryBroadcastMessage is message type 8: spare(2), dac(10), fid(6),
// application-data over the remainder (spec §4.5).
type BinaryBroadcastMessage struct {
	Common

	DAC             uint16
	FID             uint8
	ApplicationData []byte
}

func (m BinaryBroadcastMessage) MessageType() Type { return Type(m.Common.Type) }

func decodeBinaryBroadcastMessage(r *bitstream.Reader, common Common) (BinaryBroadcastMessage, error) {
	m := BinaryBroadcastMessage{Common: common}
	if err := r.Skip(2); err != nil { // spare
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
