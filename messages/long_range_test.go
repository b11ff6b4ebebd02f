package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func TestDecodeLongRangePositionReport_AllFieldsPresent(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 27, 440123456)
	w.writeU(1, 1)    // accuracy: DGPS
	w.writeU(1, 1)    // raim
	w.writeU(0, 4)    // nav status: under way using engine
	w.writeI(66600, 18) // longitude = 111.0 deg
	w.writeI(21000, 17) // latitude = 35.0 deg
	w.writeU(12, 6)    // sog = 12 knots
	w.writeU(90, 9)    // cog = 90 deg
	w.writeU(1, 1)     // gnss position status: reporting
	w.writeU(0, 1)     // spare

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeLongRangePositionReport(r, common)
	require.NoError(t, err)

	assert.Equal(t, AccuracyDGPS, m.Accuracy)
	assert.True(t, m.RAIM)
	require.NotNil(t, m.NavigationStatus)
	assert.Equal(t, NavStatusUnderWayUsingEngine, *m.NavigationStatus)
	require.NotNil(t, m.Longitude)
	assert.InDelta(t, 111.0, *m.Longitude, 0.0001)
	require.NotNil(t, m.Latitude)
	assert.InDelta(t, 35.0, *m.Latitude, 0.0001)
	require.NotNil(t, m.SOG)
	assert.Equal(t, 12, *m.SOG)
	require.NotNil(t, m.COG)
	assert.Equal(t, 90, *m.COG)
	assert.True(t, m.GNSSPositionStatus)
}

func TestDecodeLongRangePositionReport_SentinelsYieldNilAndMissingSpareIsTolerated(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 27, 440123456)
	w.writeU(0, 1)      // accuracy: unaugmented
	w.writeU(0, 1)      // raim
	w.writeU(15, 4)     // nav status: not defined sentinel
	w.writeI(181*600, 18) // longitude: not available sentinel
	w.writeI(91*600, 17)  // latitude: not available sentinel
	w.writeU(63, 6)     // sog: not available sentinel
	w.writeU(511, 9)    // cog: not available sentinel
	w.writeU(0, 1)      // gnss position status: current gnss
	// no trailing spare bit at all

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeLongRangePositionReport(r, common)
	require.NoError(t, err)

	assert.Nil(t, m.NavigationStatus)
	assert.Nil(t, m.Longitude)
	assert.Nil(t, m.Latitude)
	assert.Nil(t, m.SOG)
	assert.Nil(t, m.COG)
	assert.False(t, m.GNSSPositionStatus)
}
