package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// StandardClassBPosition is message type 18 (spec §4.5).
type StandardClassBPosition struct {
	Common

	RegionalReserved1 uint8
	SOG               *float64
	Accuracy          PositionAccuracy
	Longitude         *float64
	Latitude          *float64
	COG               *float64
	Heading           *int
	Timestamp         uint8
	RegionalReserved2 uint8
	CSUnit            bool
	Display           bool
	DSC               bool
	Band              bool
	Msg22             bool
	Assigned          bool
	RAIM              bool
	CSSelector        uint8
	RadioStatus       RadioStatus
}

func (m StandardClassBPosition) MessageType() Type { return Type(m.Common.Type) }

func decodeStandardClassBPosition(r *bitstream.Reader, common Common) (StandardClassBPosition, error) {
	m := StandardClassBPosition{Common: common}
	var err error

	regional1, err := r.TakeU(8)
	if err != nil {
		return m, err
	}
	m.RegionalReserved1 = uint8(regional1)

	if m.SOG, err = readSOG(r); err != nil {
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
	if m.Heading, err = readHeading(r); err != nil {
		return m, err
	}

	ts, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.Timestamp = uint8(ts)

	regional2, err := r.TakeU(2)
	if err != nil {
		return m, err
	}
	m.RegionalReserved2 = uint8(regional2)

	if m.CSUnit, err = readBool(r); err != nil {
		return m, err
	}
	if m.Display, err = readBool(r); err != nil {
		return m, err
	}
	if m.DSC, err = readBool(r); err != nil {
		return m, err
	}
	if m.Band, err = readBool(r); err != nil {
		return m, err
	}
	if m.Msg22, err = readBool(r); err != nil {
		return m, err
	}
	if m.Assigned, err = readBool(r); err != nil {
		return m, err
	}
	if m.RAIM, err = readBool(r); err != nil {
		return m, err
	}

	selector, err := r.TakeU(1)
	if err != nil {
		return m, err
	}
	m.CSSelector = uint8(selector)

	if selector == 0 {
		m.RadioStatus, err = readSOTDMA(r)
	} else {
		m.RadioStatus, err = readITDMA(r)
	}
	if err != nil {
		return m, err
	}
	return m, nil
}
