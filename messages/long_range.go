package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// LongRangePositionReport is message type 27: the reduced-precision report
// used over long-range (satellite) links (spec §4.5). It carries a subset of
// the class A position report fields (accuracy, RAIM, navigation status,
// position, SOG, COG, GNSS status) and has no rate of turn, heading,
// timestamp, maneuver or radio status. Its values are coarser, so it has
// its own coarse coordinate/speed/course readers rather than reusing C4's
// full-precision ones.
type LongRangePositionReport struct {
	Common

	Accuracy         PositionAccuracy
	RAIM             bool
	NavigationStatus *NavigationStatus
	Longitude          *float64
	Latitude           *float64
	SOG                *int
	COG                *int
	GNSSPositionStatus bool
}

func (m LongRangePositionReport) MessageType() Type { return Type(m.Common.Type) }

func decodeLongRangePositionReport(r *bitstream.Reader, common Common) (LongRangePositionReport, error) {
	m := LongRangePositionReport{Common: common}
	var err error

	if m.Accuracy, err = readAccuracy(r); err != nil {
		return m, err
	}
	if m.RAIM, err = readBool(r); err != nil {
		return m, err
	}
	if m.NavigationStatus, err = readNavigationStatus(r); err != nil {
		return m, err
	}
	if m.Longitude, err = readLongitudeCoarse(r); err != nil {
		return m, err
	}
	if m.Latitude, err = readLatitudeCoarse(r); err != nil {
		return m, err
	}
	if m.SOG, err = readLongRangeSOG(r); err != nil {
		return m, err
	}
	if m.COG, err = readLongRangeCOG(r); err != nil {
		return m, err
	}

	status, err := r.TakeU(1)
	if err != nil {
		return m, err
	}
	m.GNSSPositionStatus = status == 1

	if r.Remaining() >= 1 {
		if err := r.Skip(1); err != nil { // spare
			return m, err
		}
	}
	return m, nil
}
