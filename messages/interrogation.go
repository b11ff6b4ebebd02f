package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// InterrogationRequest is one {type, slot-offset} submessage requested of an
// interrogated station. SlotOffset is nil when the raw value is 0 (spec
// §4.5 type 15).
type InterrogationRequest struct {
	RequestedType uint8
	SlotOffset    *uint16
}

func readInterrogationRequest(r *bitstream.Reader) (InterrogationRequest, error) {
	t, err := r.TakeU(6)
	if err != nil {
		return InterrogationRequest{}, err
	}
	offset, err := r.TakeU(12)
	if err != nil {
		return InterrogationRequest{}, err
	}
	req := InterrogationRequest{RequestedType: uint8(t)}
	if offset != 0 {
		v := uint16(offset)
		req.SlotOffset = &v
	}
	return req, nil
}

// InterrogationStation is one interrogated station's MMSI plus its
// requested message(s).
type InterrogationStation struct {
	MMSI     uint32
	Message1 InterrogationRequest
	Message2 *InterrogationRequest
}

// Interrogation is message type 15. Field ordering in the wild is
// inconsistent with the nominal 3-station form of the standard (spec §9
// design note ii); this decoder handles the first two stations and leaves
// any theoretical third station undecoded, gated on the remaining-bit
// thresholds spec §4.5 calls out (>=8 bits for a 2nd submessage on station
// 1, >=30 bits for a 2nd station).
type Interrogation struct {
	Common

	Station1 InterrogationStation
	Station2 *InterrogationStation
}

func (m Interrogation) MessageType() Type { return Type(m.Common.Type) }

func decodeInterrogation(r *bitstream.Reader, common Common) (Interrogation, error) {
	m := Interrogation{Common: common}

	if err := r.Skip(2); err != nil { // spare
		return m, err
	}

	mmsi1, err := r.TakeU(30)
	if err != nil {
		return m, err
	}
	msg1, err := readInterrogationRequest(r)
	if err != nil {
		return m, err
	}
	m.Station1 = InterrogationStation{MMSI: uint32(mmsi1), Message1: msg1}

	if r.Remaining() >= 8 {
		if err := r.Skip(2); err != nil { // spare
			return m, err
		}
		msg2, err := readInterrogationRequest(r)
		if err != nil {
			return m, err
		}
		m.Station1.Message2 = &msg2
	}

	if r.Remaining() >= 30 {
		mmsi2, err := r.TakeU(30)
		if err != nil {
			return m, err
		}
		msg, err := readInterrogationRequest(r)
		if err != nil {
			return m, err
		}
		station2 := InterrogationStation{MMSI: uint32(mmsi2), Message1: msg}
		if r.Remaining() >= 2 {
			if err := r.Skip(2); err != nil { // spare
				return m, err
			}
		}
		m.Station2 = &station2
	}

	return m, nil
}
