package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func writeSlotReservation(w *bitWriter, offset, slots, timeout, increment uint64) {
	w.writeU(offset, 12)
	w.writeU(slots, 4)
	w.writeU(timeout, 3)
	w.writeU(increment, 11)
}

func TestDecodeDataLinkManagement_SingleReservation(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 20, 2300123)
	w.writeU(0, 2) // spare
	writeSlotReservation(w, 100, 2, 7, 50)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeDataLinkManagement(r, common)
	require.NoError(t, err)

	require.Len(t, m.Reservations, 1)
	assert.EqualValues(t, 100, m.Reservations[0].Offset)
	assert.EqualValues(t, 2, m.Reservations[0].Slots)
	assert.EqualValues(t, 7, m.Reservations[0].Timeout)
	assert.EqualValues(t, 50, m.Reservations[0].Increment)
}

func TestDecodeDataLinkManagement_FourReservations(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 20, 2300123)
	w.writeU(0, 2)
	for i := uint64(0); i < 4; i++ {
		writeSlotReservation(w, 10*(i+1), uint64(i), 0, 1)
	}

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeDataLinkManagement(r, common)
	require.NoError(t, err)

	require.Len(t, m.Reservations, 4)
	assert.EqualValues(t, 10, m.Reservations[0].Offset)
	assert.EqualValues(t, 40, m.Reservations[3].Offset)
}

func TestDecodeDataLinkManagement_NoReservationsWhenBodyIsShort(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 20, 2300123)
	w.writeU(0, 2)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeDataLinkManagement(r, common)
	require.NoError(t, err)

	assert.Empty(t, m.Reservations)
}
