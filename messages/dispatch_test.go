package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commonPrelude(w *bitWriter, msgType uint8, mmsi uint32) {
	w.writeU(uint64(msgType), 6)
	w.writeU(0, 2) // repeat indicator
	w.writeU(uint64(mmsi), 30)
}

func TestDispatch_PositionReportType1(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 1, 367380120)
	w.writeU(0, 4)                       // nav status: under way using engine
	w.writeI(-128, 8)                    // rate of turn: absent sentinel
	w.writeU(1, 10)                      // sog = 0.1 knots
	w.writeU(1, 1)                       // accuracy: DGPS
	w.writeI(-73424601, 28)              // longitude raw
	w.writeI(22684168, 27)               // latitude raw
	w.writeU(2452, 12)                   // cog = 245.2
	w.writeU(511, 9)                     // heading: absent
	w.writeU(59, 6)                      // timestamp
	w.writeU(0, 2)                       // maneuver
	w.writeU(0, 3)                       // spare
	w.writeU(1, 1)                       // raim
	w.writeU(0, 2)                       // sync state
	w.writeU(0, 3)                       // slot timeout 0 -> slot offset
	w.writeI(100, 14)                    // slot offset

	msg, err := Dispatch(w.bytes())
	require.NoError(t, err)
	pr, ok := msg.(PositionReport)
	require.True(t, ok)
	assert.EqualValues(t, 367380120, pr.MMSI)
	require.NotNil(t, pr.NavigationStatus)
	assert.Equal(t, NavStatusUnderWayUsingEngine, *pr.NavigationStatus)
	assert.Nil(t, pr.RateOfTurn)
	require.NotNil(t, pr.SOG)
	assert.InDelta(t, 0.1, *pr.SOG, 0.0001)
	assert.Equal(t, AccuracyDGPS, pr.Accuracy)
	assert.Nil(t, pr.Heading)
	assert.True(t, pr.RAIM)
	require.Equal(t, RadioStatusSOTDMA, pr.RadioStatus.Kind)
	require.NotNil(t, pr.RadioStatus.SOTDMA)
	assert.Equal(t, SOTDMASlotOffset, pr.RadioStatus.SOTDMA.Submessage.Kind)
	assert.EqualValues(t, 100, pr.RadioStatus.SOTDMA.Submessage.SlotOffset)
}

func TestDispatch_SharesBaseStationDecoderBetweenType4And11(t *testing.T) {
	for _, msgType := range []uint8{4, 11} {
		w := &bitWriter{}
		commonPrelude(w, msgType, 3669145)
		w.writeU(2017, 14)
		w.writeU(12, 4)
		w.writeU(27, 5)
		w.writeU(17, 5)
		w.writeU(15, 6)
		w.writeU(11, 6)
		w.writeU(1, 1) // accuracy DGPS
		w.writeI(108600000, 28)
		w.writeI(54600000, 27)
		w.writeU(1, 4) // epfd = GPS
		w.writeU(0, 10)
		w.writeU(1, 1) // raim
		w.writeU(0, 2) // sync
		w.writeU(0, 3) // slot timeout
		w.writeI(2250, 14)

		msg, err := Dispatch(w.bytes())
		require.NoError(t, err)
		bs, ok := msg.(BaseStationReport)
		require.True(t, ok)
		assert.EqualValues(t, 3669145, bs.MMSI)
		require.NotNil(t, bs.Year)
		assert.Equal(t, 2017, *bs.Year)
		require.NotNil(t, bs.Month)
		assert.Equal(t, 12, *bs.Month)
		require.NotNil(t, bs.Hour)
		assert.Equal(t, 17, *bs.Hour)
		assert.Equal(t, AccuracyDGPS, bs.Accuracy)
		require.Equal(t, RadioStatusSOTDMA, bs.RadioStatus.Kind)
		assert.Equal(t, SyncUTCDirect, bs.RadioStatus.SOTDMA.SyncState)
		assert.Equal(t, SOTDMASlotOffset, bs.RadioStatus.SOTDMA.Submessage.Kind)
		assert.EqualValues(t, 2250, bs.RadioStatus.SOTDMA.Submessage.SlotOffset)
	}
}

func TestDispatch_UnimplementedType(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 22, 123456789)
	w.writeU(0, 130)

	_, err := Dispatch(w.bytes())
	var unimpl *UnimplementedTypeError
	require.ErrorAs(t, err, &unimpl)
	assert.EqualValues(t, 22, unimpl.Type)
}

func TestDispatch_SharesBinaryAckDecoderBetweenType7And13(t *testing.T) {
	for _, msgType := range []uint8{7, 13} {
		w := &bitWriter{}
		commonPrelude(w, msgType, 111222333)
		w.writeU(0, 2) // spare
		w.writeU(444555666, 30)
		w.writeU(1, 2)

		msg, err := Dispatch(w.bytes())
		require.NoError(t, err)
		ack, ok := msg.(BinaryAcknowledge)
		require.True(t, ok)
		require.Len(t, ack.Acknowledgements, 1)
		assert.EqualValues(t, 444555666, ack.Acknowledgements[0].MMSI)
		assert.EqualValues(t, 1, ack.Acknowledgements[0].SequenceNumber)
	}
}
