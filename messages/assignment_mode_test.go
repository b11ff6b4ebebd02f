package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func writeAssignmentTarget(w *bitWriter, mmsi, offset, increment uint64) {
	w.writeU(mmsi, 30)
	w.writeU(offset, 12)
	w.writeU(increment, 10)
}

func TestDecodeAssignmentModeCommand_SingleTarget(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 16, 2300123)
	w.writeU(0, 2)
	writeAssignmentTarget(w, 366654321, 200, 5)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeAssignmentModeCommand(r, common)
	require.NoError(t, err)

	assert.EqualValues(t, 366654321, m.Target1.MMSI)
	assert.EqualValues(t, 200, m.Target1.Offset)
	assert.EqualValues(t, 5, m.Target1.Increment)
	assert.Nil(t, m.Target2)
}

func TestDecodeAssignmentModeCommand_TwoTargets(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 16, 2300123)
	w.writeU(0, 2)
	writeAssignmentTarget(w, 366654321, 200, 5)
	writeAssignmentTarget(w, 366777888, 300, 7)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeAssignmentModeCommand(r, common)
	require.NoError(t, err)

	require.NotNil(t, m.Target2)
	assert.EqualValues(t, 366777888, m.Target2.MMSI)
	assert.EqualValues(t, 300, m.Target2.Offset)
	assert.EqualValues(t, 7, m.Target2.Increment)
}
