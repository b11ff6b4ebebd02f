package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// AssignmentTarget is one {mmsi, slot-offset, increment} triple assigned a
// reporting schedule by an assignment mode command.
type AssignmentTarget struct {
	MMSI      uint32
	Offset    uint16
	Increment uint16
}

func readAssignmentTarget(r *bitstream.Reader) (AssignmentTarget, error) {
	mmsi, err := r.TakeU(30)
	if err != nil {
		return AssignmentTarget{}, err
	}
	offset, err := r.TakeU(12)
	if err != nil {
		return AssignmentTarget{}, err
	}
	increment, err := r.TakeU(10)
	if err != nil {
		return AssignmentTarget{}, err
	}
	return AssignmentTarget{MMSI: uint32(mmsi), Offset: uint16(offset), Increment: uint16(increment)}, nil
}

// AssignmentModeCommand is message type 16: spare(2), a mandatory first
// target, and a second target present only if >= 52 bits remain (spec
// §4.5).
type AssignmentModeCommand struct {
	Common

	Target1 AssignmentTarget
	Target2 *AssignmentTarget
}

func (m AssignmentModeCommand) MessageType() Type { return Type(m.Common.Type) }

func decodeAssignmentModeCommand(r *bitstream.Reader, common Common) (AssignmentModeCommand, error) {
	m := AssignmentModeCommand{Common: common}
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}

	t1, err := readAssignmentTarget(r)
	if err != nil {
		return m, err
	}
	m.Target1 = t1

	if r.Remaining() >= 52 {
		t2, err := readAssignmentTarget(r)
		if err != nil {
			return m, err
		}
		m.Target2 = &t2
	}
	return m, nil
}
