package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// DGNSSBroadcastBinary is message type 17 (spec §4.5).
type DGNSSBroadcastBinary struct {
	Common

	Longitude float64
	Latitude  float64

	CorrectionType uint8 // the DGNSS correction payload's own "type" subfield
	StationID      uint16
	ZCount         uint16
	SequenceNo     uint8
	N              uint8
	Health         uint8
	Data           []byte
}

func (m DGNSSBroadcastBinary) MessageType() Type { return Type(m.Common.Type) }

func decodeDGNSSBroadcastBinary(r *bitstream.Reader, common Common) (DGNSSBroadcastBinary, error) {
	m := DGNSSBroadcastBinary{Common: common}

	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	lon, err := r.TakeI(18)
	if err != nil {
		return m, err
	}
	m.Longitude = float64(lon) / 600.0

	lat, err := r.TakeI(17)
	if err != nil {
		return m, err
	}
	m.Latitude = float64(lat) / 600.0

	if err := r.Skip(5); err != nil { // spare
		return m, err
	}

	msgType, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.CorrectionType = uint8(msgType)

	station, err := r.TakeU(10)
	if err != nil {
		return m, err
	}
	m.StationID = uint16(station)

	zCount, err := r.TakeU(13)
	if err != nil {
		return m, err
	}
	m.ZCount = uint16(zCount)

	seq, err := r.TakeU(3)
	if err != nil {
		return m, err
	}
	m.SequenceNo = uint8(seq)

	n, err := r.TakeU(5)
	if err != nil {
		return m, err
	}
	m.N = uint8(n)

	health, err := r.TakeU(3)
	if err != nil {
		return m, err
	}
	m.Health = uint8(health)

	m.Data = append([]byte(nil), r.Bytes()...)
	return m, nil
}
