package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func writeStaticVoyageFixedPart(w *bitWriter, mmsi uint32) {
	commonPrelude(w, 5, mmsi)
	w.writeU(0, 2)            // ais version
	w.writeU(9074729, 30)     // imo
	w.writeText("PF8793", 42) // callsign
	w.writeText("TESTVESSEL", 120)
	w.writeU(37, 8) // ship type: pleasure craft
	w.writeU(10, 9) // dim to bow
	w.writeU(10, 9) // dim to stern
	w.writeU(3, 6)  // dim to port
	w.writeU(3, 6)  // dim to starboard
	w.writeU(1, 4)  // epfd: GPS
	w.writeU(6, 4)  // eta month
	w.writeU(15, 5) // eta day
	w.writeU(12, 5) // eta hour
	w.writeU(0, 6)  // eta minute
	w.writeU(21, 8) // draught = 2.1m
}

func TestDecodeStaticAndVoyageData_FullLength(t *testing.T) {
	w := &bitWriter{}
	writeStaticVoyageFixedPart(w, 244250440)
	w.writeText("NL LMMR", 120)
	w.writeU(0, 1) // dte: ready
	w.writeU(0, 1) // spare

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticAndVoyageData(r, common)
	require.NoError(t, err)

	assert.EqualValues(t, 244250440, m.MMSI)
	assert.Equal(t, "PF8793", m.CallSign)
	assert.Equal(t, "NL LMMR", m.Destination)
	require.NotNil(t, m.ShipType)
	assert.Equal(t, "PleasureCraft", m.ShipType.Category)
	require.NotNil(t, m.Draught)
	assert.InDelta(t, 2.1, *m.Draught, 0.0001)
	assert.False(t, m.DTE)
}

func TestDecodeStaticAndVoyageData_ZeroDraughtIsPopulated(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 5, 244250440)
	w.writeU(0, 2)
	w.writeU(9074729, 30)
	w.writeText("PF8793", 42)
	w.writeText("TESTVESSEL", 120)
	w.writeU(37, 8)
	w.writeU(10, 9)
	w.writeU(10, 9)
	w.writeU(3, 6)
	w.writeU(3, 6)
	w.writeU(1, 4)
	w.writeU(6, 4)
	w.writeU(15, 5)
	w.writeU(12, 5)
	w.writeU(0, 6)
	w.writeU(0, 8) // draught = 0.0m, legitimately reported, not absent
	w.writeText("NL LMMR", 120)
	w.writeU(1, 1)
	w.writeU(0, 1)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticAndVoyageData(r, common)
	require.NoError(t, err)

	require.NotNil(t, m.Draught)
	assert.InDelta(t, 0.0, *m.Draught, 0.0001)
}

func TestDecodeStaticAndVoyageData_TruncatedDestinationAndMissingDTE(t *testing.T) {
	w := &bitWriter{}
	writeStaticVoyageFixedPart(w, 244250440)
	w.writeText("NL", 18) // only 3 chars / 18 bits of destination, no DTE bit at all

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticAndVoyageData(r, common)
	require.NoError(t, err)

	assert.Equal(t, "NL", m.Destination)
	assert.True(t, m.DTE) // defaults to NotReady when absent
}
