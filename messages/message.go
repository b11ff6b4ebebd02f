package messages

// Type enumerates the ITU-R M.1371 message type codes this package knows
// how to decode (spec §4.5/§4.6). Values not listed here - including 22,
// 25, 26 and any reserved code - dispatch to UnimplementedTypeError.
type Type uint8

const (
	TypePositionReportClassA                Type = 1
	TypePositionReportClassAAssignedSchedule Type = 2
	TypePositionReportClassAResponseToInterrogation Type = 3
	TypeBaseStationReport                   Type = 4
	TypeStaticAndVoyageData                 Type = 5
	TypeBinaryAddressedMessage              Type = 6
	TypeBinaryAcknowledge                   Type = 7
	TypeBinaryBroadcastMessage              Type = 8
	TypeSARAircraftPosition                 Type = 9
	TypeUTCDateInquiry                      Type = 10
	TypeUTCDateResponse                     Type = 11
	TypeAddressedSafetyRelated              Type = 12
	TypeSafetyRelatedAcknowledge            Type = 13
	TypeSafetyRelatedBroadcast              Type = 14
	TypeInterrogation                       Type = 15
	TypeAssignmentModeCommand               Type = 16
	TypeDGNSSBroadcastBinary                Type = 17
	TypeStandardClassBPosition              Type = 18
	TypeExtendedClassBPosition              Type = 19
	TypeDataLinkManagement                  Type = 20
	TypeAidToNavigation                     Type = 21
	TypeGroupAssignmentCommand              Type = 23
	TypeStaticDataReport                    Type = 24
	TypeLongRangeBroadcast                  Type = 27
)

// Message is implemented by every decoded message record; MessageType returns the
// wire message-type code that produced it.
type Message interface {
	MessageType() Type
}
