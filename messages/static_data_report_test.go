package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisgo/go-ais/internal/bitstream"
)

func TestDecodeStaticDataReport_PartA(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 24, 366999712)
	w.writeU(0, 2) // part number A
	w.writeText("NOBLESSE", 120)
	w.writeU(0, 8) // spare

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticDataReport(r, common)
	require.NoError(t, err)

	assert.Equal(t, StaticDataReportPartA, m.Part)
	assert.Nil(t, m.UnknownPart)
	assert.Equal(t, "NOBLESSE", m.Name)
}

func TestDecodeStaticDataReport_PartB(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 24, 366999712)
	w.writeU(1, 2) // part number B
	w.writeU(37, 8) // ship type: pleasure craft
	w.writeText("123", 18)
	w.writeU(5, 4)    // unit model code
	w.writeU(98765, 20) // unit serial number
	w.writeText("WDH1234", 42)
	w.writeU(5, 9) // dim to bow
	w.writeU(3, 9) // dim to stern
	w.writeU(2, 6) // dim to port
	w.writeU(2, 6) // dim to starboard
	w.writeU(0, 6) // spare

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticDataReport(r, common)
	require.NoError(t, err)

	assert.Equal(t, StaticDataReportPartB, m.Part)
	assert.Nil(t, m.UnknownPart)
	require.NotNil(t, m.ShipType)
	assert.Equal(t, "PleasureCraft", m.ShipType.Category)
	assert.Equal(t, "123", m.VendorID)
	assert.EqualValues(t, 5, m.UnitModelCode)
	assert.EqualValues(t, 98765, m.UnitSerialNumber)
	assert.Equal(t, "WDH1234", m.CallSign)
	assert.EqualValues(t, 5, m.Dimensions.ToBow)
	assert.EqualValues(t, 3, m.Dimensions.ToStern)
}

func TestDecodeStaticDataReport_UnknownPartNumber(t *testing.T) {
	w := &bitWriter{}
	commonPrelude(w, 24, 366999712)
	w.writeU(2, 2) // part number 2: unrecognized
	w.writeU(0, 40)

	r := bitstream.NewReader(w.bytes())
	common, err := readCommon(r)
	require.NoError(t, err)
	m, err := decodeStaticDataReport(r, common)
	require.NoError(t, err)

	require.NotNil(t, m.UnknownPart)
	assert.EqualValues(t, 2, *m.UnknownPart)
}
