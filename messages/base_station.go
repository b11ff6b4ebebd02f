package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// BaseStationReport is produced by message type 4 (base station report) and
// type 11 (UTC/date response), which share an identical wire layout (spec
// §4.5).
type BaseStationReport struct {
	Common

	DateTimeParts
	Accuracy    PositionAccuracy
	Longitude   *float64
	Latitude    *float64
	EPFD        *EPFDType
	RAIM        bool
	RadioStatus RadioStatus
}

func (m BaseStationReport) MessageType() Type { return Type(m.Common.Type) }

func decodeBaseStationReport(r *bitstream.Reader, common Common) (BaseStationReport, error) {
	m := BaseStationReport{Common: common}
	var err error

	if m.DateTimeParts, err = readBaseStationTimestamp(r); err != nil {
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
	if m.EPFD, err = readEPFD(r); err != nil {
		return m, err
	}
	if err := r.Skip(10); err != nil { // spare
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
