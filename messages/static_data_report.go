package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// StaticDataReportPart discriminates which half of a type-24 static data
// report a StaticDataReport holds.
type StaticDataReportPart uint8

const (
	StaticDataReportPartA StaticDataReportPart = 0
	StaticDataReportPartB StaticDataReportPart = 1
)

// StaticDataReport is message type 24. Only the fields matching Part are
// populated; an unrecognized part number (anything but 0 or 1) leaves
// UnknownPart set instead (spec §4.5: "Other part numbers ⇒ Unknown(n)").
type StaticDataReport struct {
	Common

	Part        StaticDataReportPart
	UnknownPart *uint8

	// Part A
	Name string

	// Part B
	ShipType         *ShipType
	VendorID         string
	UnitModelCode    uint8
	UnitSerialNumber uint32
	CallSign         string
	Dimensions       Dimensions
}

func (m StaticDataReport) MessageType() Type { return Type(m.Common.Type) }

func decodeStaticDataReport(r *bitstream.Reader, common Common) (StaticDataReport, error) {
	m := StaticDataReport{Common: common}

	partNumber, err := r.TakeU(2)
	if err != nil {
		return m, err
	}

	switch partNumber {
	case 0:
		m.Part = StaticDataReportPartA
		if m.Name, err = bitstream.ReadSixBitText(r, 120); err != nil {
			return m, err
		}
		if r.Remaining() >= 8 {
			if err := r.Skip(8); err != nil { // spare
				return m, err
			}
		}
	case 1:
		m.Part = StaticDataReportPartB
		if m.ShipType, err = readShipType(r); err != nil {
			return m, err
		}
		if m.VendorID, err = bitstream.ReadSixBitText(r, 18); err != nil {
			return m, err
		}
		modelCode, err := r.TakeU(4)
		if err != nil {
			return m, err
		}
		m.UnitModelCode = uint8(modelCode)

		serial, err := r.TakeU(20)
		if err != nil {
			return m, err
		}
		m.UnitSerialNumber = uint32(serial)

		if m.CallSign, err = bitstream.ReadSixBitText(r, 42); err != nil {
			return m, err
		}
		if m.Dimensions, err = readDimensions(r); err != nil {
			return m, err
		}
		if r.Remaining() >= 6 {
			if err := r.Skip(6); err != nil { // spare
				return m, err
			}
		}
	default:
		n := uint8(partNumber)
		m.UnknownPart = &n
	}

	return m, nil
}
