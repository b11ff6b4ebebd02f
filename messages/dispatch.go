package messages

import "github.com/aisgo/go-ais/internal/bitstream"

// Dispatch reads the shared Common prelude off data, then routes to the
// decoder matching the message type (spec §4.6, C6). Type 4/11 share a
// single decoder (base station report and its response-to-inquiry variant
// have an identical wire layout) and so do 7/13 (binary/safety-related
// acknowledge), matching how the teacher's canboat decoder maps multiple
// PGNs onto one Go decoding function when their layouts coincide.
//
// An unmapped type - 22, 25, 26, or any reserved/unassigned code - returns
// an *UnimplementedTypeError rather than a generic error, so callers can
// distinguish "not yet decoded" from a malformed payload.
func Dispatch(data []byte) (Message, error) {
	r := bitstream.NewReader(data)

	common, err := readCommon(r)
	if err != nil {
		return nil, err
	}

	switch Type(common.Type) {
	case TypePositionReportClassA, TypePositionReportClassAAssignedSchedule, TypePositionReportClassAResponseToInterrogation:
		return decodePositionReport(r, common)
	case TypeBaseStationReport, TypeUTCDateResponse:
		return decodeBaseStationReport(r, common)
	case TypeStaticAndVoyageData:
		return decodeStaticAndVoyageData(r, common)
	case TypeBinaryAddressedMessage:
		return decodeBinaryAddressedMessage(r, common)
	case TypeBinaryAcknowledge, TypeSafetyRelatedAcknowledge:
		return decodeBinaryAcknowledge(r, common)
	case TypeBinaryBroadcastMessage:
		return decodeBinaryBroadcastMessage(r, common)
	case TypeSARAircraftPosition:
		return decodeSARAircraftPosition(r, common)
	case TypeUTCDateInquiry:
		return decodeUTCDateInquiry(r, common)
	case TypeAddressedSafetyRelated:
		return decodeAddressedSafetyRelatedMessage(r, common)
	case TypeSafetyRelatedBroadcast:
		return decodeSafetyRelatedBroadcastMessage(r, common)
	case TypeInterrogation:
		return decodeInterrogation(r, common)
	case TypeAssignmentModeCommand:
		return decodeAssignmentModeCommand(r, common)
	case TypeDGNSSBroadcastBinary:
		return decodeDGNSSBroadcastBinary(r, common)
	case TypeStandardClassBPosition:
		return decodeStandardClassBPosition(r, common)
	case TypeExtendedClassBPosition:
		return decodeExtendedClassBPosition(r, common)
	case TypeDataLinkManagement:
		return decodeDataLinkManagement(r, common)
	case TypeAidToNavigation:
		return decodeAidToNavigationReport(r, common)
	case TypeGroupAssignmentCommand:
		return decodeGroupAssignmentCommand(r, common)
	case TypeStaticDataReport:
		return decodeStaticDataReport(r, common)
	case TypeLongRangeBroadcast:
		return decodeLongRangePositionReport(r, common)
	default:
		return nil, &UnimplementedTypeError{Type: common.Type}
	}
}
