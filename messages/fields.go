// Package messages implements the AIS message layer: the un-armored
// bitstream is peeked for a message type (C6, dispatch.go) and dispatched to
// one of the per-type decoders below (C5), each built on the sentinel-aware
// field parsers in this file (C4). This mirrors how the teacher's canboat
// package builds one decoder per PGN on top of fieldvalue.go's shared
// variable-width decode primitives - except here field widths come from the
// fixed ITU-R M.1371 schema in spec §4.5 rather than a runtime-loaded JSON
// PGN database.
package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// Common is the three-field prelude shared by every AIS message type (spec
// §4.5): message type, repeat indicator, source MMSI.
type Common struct {
	Type            uint8
	RepeatIndicator uint8
	MMSI            uint32
}

func readCommon(r *bitstream.Reader) (Common, error) {
	t, err := r.TakeU(6)
	if err != nil {
		return Common{}, err
	}
	repeat, err := r.TakeU(2)
	if err != nil {
		return Common{}, err
	}
	mmsi, err := r.TakeU(30)
	if err != nil {
		return Common{}, err
	}
	return Common{Type: uint8(t), RepeatIndicator: uint8(repeat), MMSI: uint32(mmsi)}, nil
}

// readLongitude decodes a 28-bit signed longitude in 1/600000 degree units.
// Sentinel 108600000 maps to nil (spec §4.4).
func readLongitude(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeI(28)
	if err != nil {
		return nil, err
	}
	if raw == 108600000 {
		return nil, nil
	}
	v := float64(raw) / 600000.0
	return &v, nil
}

// readLatitude decodes a 27-bit signed latitude in 1/600000 degree units.
// Sentinel 54600000 maps to nil (spec §4.4).
func readLatitude(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeI(27)
	if err != nil {
		return nil, err
	}
	if raw == 54600000 {
		return nil, nil
	}
	v := float64(raw) / 600000.0
	return &v, nil
}

// readLongitudeCoarse decodes an 18-bit signed longitude in 1/600 degree
// units, used by the coarser long-range broadcast (type 27, spec §4.4).
func readLongitudeCoarse(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeI(18)
	if err != nil {
		return nil, err
	}
	if raw == 181*600 { // not-available sentinel for the coarse encoding
		return nil, nil
	}
	v := float64(raw) / 600.0
	return &v, nil
}

// readLatitudeCoarse decodes a 17-bit signed latitude in 1/600 degree units.
func readLatitudeCoarse(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeI(17)
	if err != nil {
		return nil, err
	}
	if raw == 91*600 {
		return nil, nil
	}
	v := float64(raw) / 600.0
	return &v, nil
}

// readCoordCoarseDeg4 decodes an 18 or 17 bit signed coordinate scaled by
// 1/10000 degree, used by the group assignment command's NE/SW corners
// (spec §4.5 type 23).
func readCoordCoarseDeg4(r *bitstream.Reader, bits int) (float64, error) {
	raw, err := r.TakeI(bits)
	if err != nil {
		return 0, err
	}
	return float64(raw) / 10000.0, nil
}

// readSOG decodes a 10-bit speed over ground in 1/10 knot units. Sentinel
// 1023 maps to nil (spec §4.4).
func readSOG(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeU(10)
	if err != nil {
		return nil, err
	}
	if raw == 1023 {
		return nil, nil
	}
	v := float64(raw) / 10.0
	return &v, nil
}

// readCOG decodes a 12-bit course over ground in 1/10 degree units.
// Sentinel 3600 maps to nil (spec §4.4).
func readCOG(r *bitstream.Reader) (*float64, error) {
	raw, err := r.TakeU(12)
	if err != nil {
		return nil, err
	}
	if raw == 3600 {
		return nil, nil
	}
	v := float64(raw) / 10.0
	return &v, nil
}

// readHeading decodes a 9-bit true heading in whole degrees. Sentinel 511
// maps to nil (spec §4.4).
func readHeading(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(9)
	if err != nil {
		return nil, err
	}
	if raw == 511 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

// RateOfTurn is the decoded rate-of-turn field. Direction is -1 (turning
// port), 0 (not turning) or 1 (turning starboard); RateUnknown distinguishes
// raw +-127 ("turning but rate unknown") from the absent case at raw 0x80,
// per spec §9 design note (iii).
type RateOfTurn struct {
	DegreesPerMinute float64
	Direction        int
	RateUnknown      bool
}

// readRateOfTurn decodes the 8-bit signed rate-of-turn field. Sentinel 0x80
// maps to nil; raw +-127 sets RateUnknown (spec §4.4, §9).
func readRateOfTurn(r *bitstream.Reader) (*RateOfTurn, error) {
	raw, err := r.TakeI(8)
	if err != nil {
		return nil, err
	}
	if raw == -128 { // 0x80 as int8
		return nil, nil
	}
	direction := 0
	switch {
	case raw > 0:
		direction = 1
	case raw < 0:
		direction = -1
	}
	if raw == 127 || raw == -127 {
		return &RateOfTurn{Direction: direction, RateUnknown: true}, nil
	}
	scaled := float64(raw) / 4.733
	degPerMin := scaled * scaled
	if raw < 0 {
		degPerMin = -degPerMin
	}
	return &RateOfTurn{DegreesPerMinute: degPerMin, Direction: direction}, nil
}

// DateTimeParts holds the optional year/month/day/hour/minute/second fields
// of the base-station / UTC-response timestamp block (spec §4.4). Static
// voyage ETAs are kept as separate fields and do not use this type.
type DateTimeParts struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	Second *int
}

func readYear(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(14)
	if err != nil {
		return nil, err
	}
	if raw == 0 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

func readMonth(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(4)
	if err != nil {
		return nil, err
	}
	if raw == 0 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

func readDay(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(5)
	if err != nil {
		return nil, err
	}
	if raw == 0 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

func readHour(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(5)
	if err != nil {
		return nil, err
	}
	if raw == 24 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

func readMinuteOrSecond(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(6)
	if err != nil {
		return nil, err
	}
	if raw == 60 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

// readBaseStationTimestamp reads the full year/month/day/hour/minute/second
// block shared by type 4 and type 11 (spec §4.5).
func readBaseStationTimestamp(r *bitstream.Reader) (DateTimeParts, error) {
	var d DateTimeParts
	var err error
	if d.Year, err = readYear(r); err != nil {
		return d, err
	}
	if d.Month, err = readMonth(r); err != nil {
		return d, err
	}
	if d.Day, err = readDay(r); err != nil {
		return d, err
	}
	if d.Hour, err = readHour(r); err != nil {
		return d, err
	}
	if d.Minute, err = readMinuteOrSecond(r); err != nil {
		return d, err
	}
	if d.Second, err = readMinuteOrSecond(r); err != nil {
		return d, err
	}
	return d, nil
}

func readEPFD(r *bitstream.Reader) (*EPFDType, error) {
	raw, err := r.TakeU(4)
	if err != nil {
		return nil, err
	}
	if raw == 0 || raw == 15 {
		return nil, nil
	}
	v := EPFDType(raw)
	return &v, nil
}

func readNavigationStatus(r *bitstream.Reader) (*NavigationStatus, error) {
	raw, err := r.TakeU(4)
	if err != nil {
		return nil, err
	}
	if raw == 15 {
		return nil, nil
	}
	v := NavigationStatus(raw)
	return &v, nil
}

func readNavAidType(r *bitstream.Reader) (*NavAidType, error) {
	raw, err := r.TakeU(5)
	if err != nil {
		return nil, err
	}
	if raw == 0 {
		return nil, nil
	}
	v := NavAidType(raw)
	return &v, nil
}

func readShipType(r *bitstream.Reader) (*ShipType, error) {
	raw, err := r.TakeU(8)
	if err != nil {
		return nil, err
	}
	if raw == 0 || raw >= 100 {
		return nil, nil
	}
	return &ShipType{Code: uint8(raw), Category: decodeShipTypeCategory(uint8(raw))}, nil
}

func readAccuracy(r *bitstream.Reader) (PositionAccuracy, error) {
	raw, err := r.TakeU(1)
	if err != nil {
		return 0, err
	}
	return PositionAccuracy(raw), nil
}

func readBool(r *bitstream.Reader) (bool, error) {
	raw, err := r.TakeU(1)
	if err != nil {
		return false, err
	}
	return raw != 0, nil
}

// Dimensions is the shared bow/stern/port/starboard ship-dimension block
// (9+9+6+6 bits) carried by types 5, 19, 21 and 24 part B (spec §4.5).
type Dimensions struct {
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
}

func readDimensions(r *bitstream.Reader) (Dimensions, error) {
	bow, err := r.TakeU(9)
	if err != nil {
		return Dimensions{}, err
	}
	stern, err := r.TakeU(9)
	if err != nil {
		return Dimensions{}, err
	}
	port, err := r.TakeU(6)
	if err != nil {
		return Dimensions{}, err
	}
	starboard, err := r.TakeU(6)
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		ToBow:       uint16(bow),
		ToStern:     uint16(stern),
		ToPort:      uint8(port),
		ToStarboard: uint8(starboard),
	}, nil
}

// readLongRangeSOG decodes the coarser 6-bit speed field used by type 27.
// Sentinel 63 maps to nil (spec §4.5).
func readLongRangeSOG(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(6)
	if err != nil {
		return nil, err
	}
	if raw == 63 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}

// readLongRangeCOG decodes the coarser 9-bit course field used by type 27.
// Sentinel 511 maps to nil (spec §4.5).
func readLongRangeCOG(r *bitstream.Reader) (*int, error) {
	raw, err := r.TakeU(9)
	if err != nil {
		return nil, err
	}
	if raw == 511 {
		return nil, nil
	}
	v := int(raw)
	return &v, nil
}
