package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// Acknowledgement is one {mmsi, sequence-number} pair carried by a binary or
// safety-related acknowledge message.
type Acknowledgement struct {
	MMSI           uint32
	SequenceNumber uint8
}

// BinaryAcknowledge is message type 7: spare(2), then 1..=4 repetitions of
// {mmsi(30), seq(2)} until the bitstream is exhausted (spec §4.5).
type BinaryAcknowledge struct {
	Common

	Acknowledgements []Acknowledgement
}

func (m BinaryAcknowledge) MessageType() Type { return Type(m.Common.Type) }

func decodeBinaryAcknowledge(r *bitstream.Reader, common Common) (BinaryAcknowledge, error) {
	m := BinaryAcknowledge{Common: common}
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	acks, err := readAcknowledgements(r)
	if err != nil {
		return m, err
	}
	m.Acknowledgements = acks
	return m, nil
}

// readAcknowledgements reads up to 4 {mmsi(30), seq(2)} pairs, stopping as
// soon as fewer than 32 bits remain, shared by types 7 and 13 (spec §4.5).
func readAcknowledgements(r *bitstream.Reader) ([]Acknowledgement, error) {
	var acks []Acknowledgement
	for i := 0; i < 4 && r.Remaining() >= 32; i++ {
		mmsi, err := r.TakeU(30)
		if err != nil {
			return nil, err
		}
		seq, err := r.TakeU(2)
		if err != nil {
			return nil, err
		}
		acks = append(acks, Acknowledgement{MMSI: uint32(mmsi), SequenceNumber: uint8(seq)})
	}
	return acks, nil
}
