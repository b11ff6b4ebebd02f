package ais

import "fmt"

// reassembler implements C8: the multi-sentence fragment reassembly state
// machine. It mirrors the teacher's fastPacketSequence/FastPacketAssembler
// shape (a small accumulator struct advanced one frame at a time, reset on
// a fresh start-of-sequence frame) generalized from CAN fast-packet frames
// to AIS sentence fragments.
type reassembler struct {
	active       bool
	groupID      *int
	lastIndex    int
	fragmentCount int
	armored      []byte
	fillBits     int
}

// feed advances the state machine by one sentence. It returns (payload,
// fillBits, true, nil) when a group completes (or a standalone
// single-fragment sentence arrives), and (nil, 0, false, nil) when more
// fragments are still expected. Any sequencing violation returns
// ErrFragmentSequence; the accumulator is left as-is per spec §4.11 so the
// caller decides whether to discard it.
func (r *reassembler) feed(s Sentence) ([]byte, int, bool, error) {
	if !s.IsFragmented() {
		return s.ArmoredPayload, s.FillBits, true, nil
	}

	if s.FragmentIndex == 1 {
		if r.active {
			return nil, 0, false, fmt.Errorf("ais: new fragment index 1 received mid-sequence: %w", ErrFragmentSequence)
		}
		r.active = true
		r.groupID = s.GroupID
		r.lastIndex = 1
		r.fragmentCount = s.FragmentCount
		r.armored = append([]byte(nil), s.ArmoredPayload...)
		r.fillBits = s.FillBits
		return nil, 0, false, nil
	}

	if !r.active {
		return nil, 0, false, fmt.Errorf("ais: fragment index %d received with no sequence in progress: %w", s.FragmentIndex, ErrFragmentSequence)
	}
	if !sameGroupID(r.groupID, s.GroupID) {
		return nil, 0, false, fmt.Errorf("ais: group id mismatch mid-sequence: %w", ErrFragmentSequence)
	}
	if s.FragmentCount != r.fragmentCount {
		return nil, 0, false, fmt.Errorf("ais: fragment count changed mid-sequence: %w", ErrFragmentSequence)
	}
	if s.FragmentIndex != r.lastIndex+1 {
		return nil, 0, false, fmt.Errorf("ais: expected fragment index %d, got %d: %w", r.lastIndex+1, s.FragmentIndex, ErrFragmentSequence)
	}

	r.armored = append(r.armored, s.ArmoredPayload...)
	r.lastIndex = s.FragmentIndex
	r.fillBits = s.FillBits

	if s.FragmentIndex == s.FragmentCount {
		payload, fillBits := r.armored, r.fillBits
		r.reset()
		return payload, fillBits, true, nil
	}
	return nil, 0, false, nil
}

func (r *reassembler) reset() {
	*r = reassembler{}
}

func sameGroupID(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
