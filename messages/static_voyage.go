package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// StaticAndVoyageData is message type 5. Real-world senders occasionally
// truncate the trailing destination/DTE region (spec §4.5, §4.9 design
// note); decodeStaticAndVoyageData tolerates that by reading whatever text
// bits remain and defaulting DTE to "not ready" when the bit is absent,
// rather than erroring.
type StaticAndVoyageData struct {
	Common

	AISVersion  uint8
	IMO         uint32
	CallSign    string
	Name        string
	ShipType    *ShipType
	Dimensions  Dimensions
	EPFD        *EPFDType
	ETAMonth    *int
	ETADay      *int
	ETAHour     *int
	ETAMinute   *int
	Draught     *float64
	Destination string
	DTE         bool // true == not ready, per spec's NotReady default
}

func (m StaticAndVoyageData) MessageType() Type { return Type(m.Common.Type) }

func decodeStaticAndVoyageData(r *bitstream.Reader, common Common) (StaticAndVoyageData, error) {
	m := StaticAndVoyageData{Common: common, DTE: true}
	var err error

	aisVersion, err := r.TakeU(2)
	if err != nil {
		return m, err
	}
	m.AISVersion = uint8(aisVersion)

	imo, err := r.TakeU(30)
	if err != nil {
		return m, err
	}
	m.IMO = uint32(imo)

	if m.CallSign, err = bitstream.ReadSixBitText(r, 42); err != nil {
		return m, err
	}
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
	if m.ETAMonth, err = readMonth(r); err != nil {
		return m, err
	}
	if m.ETADay, err = readDay(r); err != nil {
		return m, err
	}
	if m.ETAHour, err = readHour(r); err != nil {
		return m, err
	}
	if m.ETAMinute, err = readMinuteOrSecond(r); err != nil {
		return m, err
	}

	draughtRaw, err := r.TakeU(8)
	if err != nil {
		return m, err
	}
	draught := float64(draughtRaw) / 10.0
	m.Draught = &draught

	destBits := 120
	if avail := r.Remaining(); avail < destBits {
		destBits = (avail / 6) * 6
	}
	if destBits > 0 {
		if m.Destination, err = bitstream.ReadSixBitText(r, destBits); err != nil {
			return m, err
		}
	}

	if r.Remaining() >= 1 {
		dte, err := readBool(r)
		if err != nil {
			return m, err
		}
		m.DTE = dte
	}

	return m, nil
}
