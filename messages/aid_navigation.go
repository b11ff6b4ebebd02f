package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// AidToNavigationReport is message type 21 (spec §4.5).
type AidToNavigationReport struct {
	Common

	AidType       *NavAidType
	Name          string
	Accuracy      PositionAccuracy
	Longitude     *float64
	Latitude      *float64
	Dimensions    Dimensions
	EPFD          *EPFDType
	UTCSecond     uint8
	OffPosition   bool
	RegionalData  uint8
	RAIM          bool
	Virtual       bool
	Assigned      bool
	NameExtension string
}

func (m AidToNavigationReport) MessageType() Type { return Type(m.Common.Type) }

func decodeAidToNavigationReport(r *bitstream.Reader, common Common) (AidToNavigationReport, error) {
	m := AidToNavigationReport{Common: common}
	var err error

	if m.AidType, err = readNavAidType(r); err != nil {
		return m, err
	}
	if m.Name, err = bitstream.ReadSixBitText(r, 120); err != nil {
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
	if m.Dimensions, err = readDimensions(r); err != nil {
		return m, err
	}
	if m.EPFD, err = readEPFD(r); err != nil {
		return m, err
	}

	second, err := r.TakeU(6)
	if err != nil {
		return m, err
	}
	m.UTCSecond = uint8(second)

	if m.OffPosition, err = readBool(r); err != nil {
		return m, err
	}

	regional, err := r.TakeU(8)
	if err != nil {
		return m, err
	}
	m.RegionalData = uint8(regional)

	if m.RAIM, err = readBool(r); err != nil {
		return m, err
	}
	if m.Virtual, err = readBool(r); err != nil {
		return m, err
	}
	if m.Assigned, err = readBool(r); err != nil {
		return m, err
	}
	if err := r.Skip(1); err != nil { // spare
		return m, err
	}

	extBits := (r.Remaining() / 6) * 6
	if extBits > 0 {
		if m.NameExtension, err = bitstream.ReadSixBitText(r, extBits); err != nil {
			return m, err
		}
	}
	return m, nil
}
