package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// ExtendedClassBPosition is message type 19 (spec §4.5).
type ExtendedClassBPosition struct {
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
	Name              string
	ShipType          *ShipType
	Dimensions        Dimensions
	EPFD              *EPFDType
	RAIM              bool
	DTE               bool
	Assigned          bool
}

func (m ExtendedClassBPosition) MessageType() Type { return Type(m.Common.Type) }

func decodeExtendedClassBPosition(r *bitstream.Reader, common Common) (ExtendedClassBPosition, error) {
	m := ExtendedClassBPosition{Common: common}
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

	regional2, err := r.TakeU(4)
	if err != nil {
		return m, err
	}
	m.RegionalReserved2 = uint8(regional2)

	if m.Name, err = bitstream.ReadSixBitText(r, 120); err != nil {
		return m, err
	}
	if m.ShipType, err = readShipType(r); err != nil {
		return m, err
	}
	if m.Dimensions, err = readDimensions(r); err != nil {
		return m, err
	}
	if m.EPFD, err = readEPFD(r); err != nil {
		return m, err
	}
	if m.RAIM, err = readBool(r); err != nil {
		return m, err
	}
	if m.DTE, err = readBool(r); err != nil {
		return m, err
	}
	if m.Assigned, err = readBool(r); err != nil {
		return m, err
	}
	if err := r.Skip(4); err != nil { // spare
		return m, err
	}
	return m, nil
}
