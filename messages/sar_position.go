package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// Altitude is the SAR aircraft altitude field: nil when unavailable (raw
// 4095), with AtOrAboveMax set when the raw value is the "4094 or higher"
// sentinel (spec §4.5 type 9).
type Altitude struct {
	Meters       uint16
	AtOrAboveMax bool
}

func readSARAltitude(r *bitstream.Reader) (*Altitude, error) {
	raw, err := r.TakeU(12)
	if err != nil {
		return nil, err
	}
	if raw == 4095 {
		return nil, nil
	}
	a := &Altitude{Meters: uint16(raw)}
	if raw == 4094 {
		a.AtOrAboveMax = true
	}
	return a, nil
}

// SARSpeed is the SAR aircraft speed-over-ground field: nil when
// unavailable (raw 1023), with AtOrAboveMax set when the raw value is the
// "1022 knots or higher" sentinel (spec §4.5 type 9).
type SARSpeed struct {
	Knots        uint16
	AtOrAboveMax bool
}

func readSARSOG(r *bitstream.Reader) (*SARSpeed, error) {
	raw, err := r.TakeU(10)
	if err != nil {
		return nil, err
	}
	if raw == 1023 {
		return nil, nil
	}
	s := &SARSpeed{Knots: uint16(raw)}
	if raw == 1022 {
		s.AtOrAboveMax = true
	}
	return s, nil
}

// SARAircraftPosition is message type 9 (spec §4.5).
type SARAircraftPosition struct {
	Common

	Altitude     *Altitude
	SOG          *SARSpeed
	Accuracy     PositionAccuracy
	Longitude    *float64
	Latitude     *float64
	COG          *float64
	Timestamp    uint8
	RegionalData uint8
	DTE          bool
	AssignedMode bool
	RAIM         bool
	RadioStatus  RadioStatus
}

func (m SARAircraftPosition) MessageType() Type { return Type(m.Common.Type) }

func decodeSARAircraftPosition(r *bitstream.Reader, common Common) (SARAircraftPosition, error) {
	m := SARAircraftPosition{Common: common}
	var err error

	if m.Altitude, err = readSARAltitude(r); err != nil {
		return m, err
	}
	if m.SOG, err = readSARSOG(r); err != nil {
		return m, err
	}
	if m.Accuracy, err = readAccuracy(r); err != nil {
		return m, err
	}
	if m.Longitude, err = readLongitude(r); err != nil {
		return m, err
	}
	if m.Latitude, err = readLatitude(r); err != nil {
		return m, err
	}
	if m.COG, err = readCOG(r); err != nil {
		return m, err
	}
	ts, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.Timestamp = uint8(ts)

	regional, err := r.TakeU(8)
	if err != nil {
		return m, err
	}
	m.RegionalData = uint8(regional)

	if m.DTE, err = readBool(r); err != nil {
		return m, err
	}
	if err := r.Skip(3); err != nil { // spare
		return m, err
	}
	if m.AssignedMode, err = readBool(r); err != nil {
		return m, err
	}
	if m.RAIM, err = readBool(r); err != nil {
		return m, err
	}
	if m.RadioStatus, err = readSOTDMA(r); err != nil {
		return m, err
	}
	return m, nil
}
