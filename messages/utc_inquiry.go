package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// UTCDateInquiry is message type 10: spare(2), dest-mmsi(30), spare(2)
// (spec §4.5).
type UTCDateInquiry struct {
	Common

	DestinationMMSI uint32
}

func (m UTCDateInquiry) MessageType() Type { return Type(m.Common.Type) }

func decodeUTCDateInquiry(r *bitstream.Reader, common Common) (UTCDateInquiry, error) {
	m := UTCDateInquiry{Common: common}
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	mmsi, err := r.TakeU(30)
	if err != nil {
		return m, err
	}
	m.DestinationMMSI = uint32(mmsi)
	if err := r.Skip(2); err != nil { // spare
		return m, err
	}
	return m, nil
}
