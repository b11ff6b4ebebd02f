package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// PositionReport is the Class A position report produced by message types
// 1, 2 and 3 (spec §4.5). The three types share every field; they differ
// only in which radio-status variant follows (SOTDMA for 1/2, ITDMA for 3)
// and in what event produced the report (scheduled, assigned schedule, or
// in response to an interrogation).
type PositionReport struct {
	Common

	NavigationStatus *NavigationStatus
	RateOfTurn       *RateOfTurn
	SOG              *float64
	Accuracy         PositionAccuracy
	Longitude        *float64
	Latitude         *float64
	COG              *float64
	Heading          *int
	Timestamp        uint8
	Maneuver         ManeuverIndicator
	RAIM             bool
	RadioStatus      RadioStatus
}

func (m PositionReport) MessageType() Type { return Type(m.Common.Type) }

func decodePositionReport(r *bitstream.Reader, common Common) (PositionReport, error) {
	m := PositionReport{Common: common}
	var err error

	if m.NavigationStatus, err = readNavigationStatus(r); err != nil {
		return m, err
	}
	if m.RateOfTurn, err = readRateOfTurn(r); err != nil {
		return m, err
	}
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
	timestamp, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.Timestamp = uint8(timestamp)

	maneuver, err := r.TakeU(2)
	if err != nil {
		return m, err
	}
	m.Maneuver = ManeuverIndicator(maneuver)

	if err := r.Skip(3); err != nil { // spare
		return m, err
	}
	raim, err := readBool(r)
	if err != nil {
		return m, err
	}
	m.RAIM = raim

	if common.Type == 3 {
		m.RadioStatus, err = readITDMA(r)
	} else {
		m.RadioStatus, err = readSOTDMA(r)
	}
	if err != nil {
		return m, err
	}

	return m, nil
}
