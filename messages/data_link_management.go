package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// SlotReservation is one {offset, slots, timeout, increment} reservation
// carried by a data link management message.
type SlotReservation struct {
	Offset    uint16
	Slots     uint8
	Timeout   uint8
	Increment uint16
}

func readSlotReservation(r *bitstream.Reader) (SlotReservation, error) {
	offset, err := r.TakeU(12)
	if err != nil {
		return SlotReservation{}, err
	}
	slots, err := r.TakeU(4)
	if err != nil {
		return SlotReservation{}, err
	}
	timeout, err := r.TakeU(3)
	if err != nil {
		return SlotReservation{}, err
	}
	increment, err := r.TakeU(11)
	if err != nil {
		return SlotReservation{}, err
	}
	return SlotReservation{
		Offset:    uint16(offset),
		Slots:     uint8(slots),
		Timeout:   uint8(timeout),
		Increment: uint16(increment),
	}, nil
}

// DataLinkManagement is message type 20: spare(2), then 1..=4 slot
// reservations (spec §4.5).
type DataLinkManagement struct {
	Common

	Reservations []SlotReservation
}

func (m DataLinkManagement) MessageType() Type { return Type(m.Common.Type) }

func decodeDataLinkManagement(r *bitstream.Reader, common Common) (DataLinkManagement, error) {
	m := DataLinkManagement{Common: common}
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	for i := 0; i < 4 && r.Remaining() >= 30; i++ {
		res, err := readSlotReservation(r)
		if err != nil {
			return m, err
		}
		m.Reservations = append(m.Reservations, res)
	}
	return m, nil
}
