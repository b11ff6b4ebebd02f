package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func TestDecodeBinaryBroadcastMessage(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 8, 2300123)
	w.writeU(0, 2)   // spare
	w.writeU(200, 10) // dac
	w.writeU(31, 6)   // fid
	for _, b := range []byte{0xAA, 0xBB} {
		w.writeU(uint64(b), 8)
	}

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeBinaryBroadcastMessage(r, common)
	require.NoError(t, err)

	assert.EqualValues(t, 200, m.DAC)
	assert.EqualValues(t, 31, m.FID)
	assert.Equal(t, []byte{0xAA, 0xBB}, m.ApplicationData)
}
