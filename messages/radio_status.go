package messages

import (
	"fmt"

	"github.com/aisgo/go-ais/internal/bitstream"
)

// SyncState is the 2-bit synchronization state shared by SOTDMA and ITDMA
// communication states (spec §3).
type SyncState uint8

const (
	SyncUTCDirect                SyncState = 0
	SyncUTCIndirect               SyncState = 1
	SyncBaseStation               SyncState = 2
	SyncNumberOfReceivedStations SyncState = 3
)

func (s SyncState) String() string {
	switch s {
	case SyncUTCDirect:
		return "UtcDirect"
	case SyncUTCIndirect:
		return "UtcIndirect"
	case SyncBaseStation:
		return "BaseStation"
	case SyncNumberOfReceivedStations:
		return "NumberOfReceivedStations"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// SOTDMASubmessageKind discriminates the dependent-typed submessage carried
// by a SOTDMA radio status, chosen by the preceding slot-timeout value (spec
// §3, §9: "do not model as parallel optional fields").
type SOTDMASubmessageKind uint8

const (
	SOTDMASlotOffset        SOTDMASubmessageKind = iota // slot_timeout == 0
	SOTDMAUTCHourAndMinute                              // slot_timeout == 1
	SOTDMASlotNumber                                     // slot_timeout in {2,4,6}
	SOTDMAReceivedStations                               // slot_timeout in {3,5,7}
)

// SOTDMASubmessage is the tagged-union payload of a SOTDMA radio status.
// Only the field matching Kind is populated.
type SOTDMASubmessage struct {
	Kind SOTDMASubmessageKind

	SlotOffset       int16 // Kind == SOTDMASlotOffset; i14
	UTCHour          uint8 // Kind == SOTDMAUTCHourAndMinute
	UTCMinute        uint8 // Kind == SOTDMAUTCHourAndMinute
	SlotNumber       uint16 // Kind == SOTDMASlotNumber; u14
	ReceivedStations uint16 // Kind == SOTDMAReceivedStations; u14
}

// SOTDMAStatus is the Self-Organized TDMA radio status variant.
type SOTDMAStatus struct {
	SyncState   SyncState
	SlotTimeout uint8 // 0..=7
	Submessage  SOTDMASubmessage
}

// ITDMAStatus is the Incremental TDMA radio status variant.
type ITDMAStatus struct {
	SyncState      SyncState
	SlotIncrement  int16 // i13
	NumberOfSlots  uint8 // 0..=7
	KeepFlag       bool
}

// RadioStatusKind discriminates which of the two radio-status variants a
// RadioStatus holds.
type RadioStatusKind uint8

const (
	RadioStatusSOTDMA RadioStatusKind = iota
	RadioStatusITDMA
)

// RadioStatus is the 19-bit communication-state substructure carried by
// position reports: a tagged union of SOTDMA and ITDMA (spec §3).
type RadioStatus struct {
	Kind   RadioStatusKind
	SOTDMA *SOTDMAStatus
	ITDMA  *ITDMAStatus
}

// readSOTDMA decodes a 19-bit SOTDMA radio status: sync-state(2),
// slot-timeout(3), then a submessage(14) whose meaning is dependent-typed
// on slot-timeout (spec §3).
func readSOTDMA(r *bitstream.Reader) (RadioStatus, error) {
	syncRaw, err := r.TakeU(2)
	if err != nil {
		return RadioStatus{}, err
	}
	slotTimeout, err := r.TakeU(3)
	if err != nil {
		return RadioStatus{}, err
	}

	sub := SOTDMASubmessage{}
	switch slotTimeout {
	case 0:
		v, err := r.TakeI(14)
		if err != nil {
			return RadioStatus{}, err
		}
		sub.Kind = SOTDMASlotOffset
		sub.SlotOffset = int16(v)
	case 1:
		hour, err := r.TakeU(5)
		if err != nil {
			return RadioStatus{}, err
		}
		minute, err := r.TakeU(7)
		if err != nil {
			return RadioStatus{}, err
		}
		if _, err := r.TakeU(2); err != nil { // spare
			return RadioStatus{}, err
		}
		sub.Kind = SOTDMAUTCHourAndMinute
		sub.UTCHour = uint8(hour)
		sub.UTCMinute = uint8(minute)
	case 2, 4, 6:
		v, err := r.TakeU(14)
		if err != nil {
			return RadioStatus{}, err
		}
		sub.Kind = SOTDMASlotNumber
		sub.SlotNumber = uint16(v)
	case 3, 5, 7:
		v, err := r.TakeU(14)
		if err != nil {
			return RadioStatus{}, err
		}
		sub.Kind = SOTDMAReceivedStations
		sub.ReceivedStations = uint16(v)
	default:
		if err := r.Skip(14); err != nil {
			return RadioStatus{}, err
		}
	}

	return RadioStatus{
		Kind: RadioStatusSOTDMA,
		SOTDMA: &SOTDMAStatus{
			SyncState:   SyncState(syncRaw),
			SlotTimeout: uint8(slotTimeout),
			Submessage:  sub,
		},
	}, nil
}

// readITDMA decodes a 19-bit ITDMA radio status: sync-state(2),
// slot-increment(13), number-of-slots(3), keep-flag(1) (spec §3).
func readITDMA(r *bitstream.Reader) (RadioStatus, error) {
	syncRaw, err := r.TakeU(2)
	if err != nil {
		return RadioStatus{}, err
	}
	slotIncrement, err := r.TakeI(13)
	if err != nil {
		return RadioStatus{}, err
	}
	numSlots, err := r.TakeU(3)
	if err != nil {
		return RadioStatus{}, err
	}
	keepFlag, err := r.TakeU(1)
	if err != nil {
		return RadioStatus{}, err
	}

	return RadioStatus{
		Kind: RadioStatusITDMA,
		ITDMA: &ITDMAStatus{
			SyncState:     SyncState(syncRaw),
			SlotIncrement: int16(slotIncrement),
			NumberOfSlots: uint8(numSlots),
			KeepFlag:      keepFlag != 0,
		},
	}, nil
}
