package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// GroupAssignmentCommand is message type 23 (spec §4.5). The quiet-time
// field's bit width is historically inconsistent across senders (spec §9
// design note i); this decoder reads the nominal fixed layout strictly and
// lets a short read surface as ErrUnexpectedEnd rather than guessing a
// default, per that note's instruction to flag rather than invent zeros.
type GroupAssignmentCommand struct {
	Common

	NELongitude    float64
	NELatitude     float64
	SWLongitude    float64
	SWLatitude     float64
	StationType    uint8
	ShipType       *ShipType
	TxRxMode       uint8
	ReportInterval uint8
	QuietTime      uint8
}

func (m GroupAssignmentCommand) MessageType() Type { return Type(m.Common.Type) }

func decodeGroupAssignmentCommand(r *bitstream.Reader, common Common) (GroupAssignmentCommand, error) {
	m := GroupAssignmentCommand{Common: common}
	var err error

	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	if m.NELongitude, err = readCoordCoarseDeg4(r, 18); err != nil {
		return m, err
	}
	if m.NELatitude, err = readCoordCoarseDeg4(r, 17); err != nil {
		return m, err
	}
	if m.SWLongitude, err = readCoordCoarseDeg4(r, 18); err != nil {
		return m, err
	}
	if m.SWLatitude, err = readCoordCoarseDeg4(r, 17); err != nil {
		return m, err
	}

	stationType, err := r.TakeU(4)
	if err != nil {
		return m, err
	}
	m.StationType = uint8(stationType)

	if m.ShipType, err = readShipType(r); err != nil {
		return m, err
	}
	if err := r.Skip(22); err != nil { // spare
		return m, err
	}

	txRxMode, err := r.TakeU(2)
	if err != nil {
		return m, err
	}
	m.TxRxMode = uint8(txRxMode)

	interval, err := r.TakeU(4)
	if err != nil {
		return m, err
	}
	m.ReportInterval = uint8(interval)

	quietTime, err := r.TakeU(4)
	if err != nil {
		return m, err
	}
	m.QuietTime = uint8(quietTime)

	if err := r.Skip(6); err != nil { // spare
		return m, err
	}
	return m, nil
}
