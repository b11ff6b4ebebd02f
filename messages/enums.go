package messages

import "fmt"

// PositionAccuracy is the single-bit accuracy flag carried by most position
// reports (spec §4.4: "accuracy: 0 => Unaugmented, 1 => DGPS").
type PositionAccuracy uint8

const (
	AccuracyUnaugmented PositionAccuracy = 0
	AccuracyDGPS        PositionAccuracy = 1
)

func (a PositionAccuracy) String() string {
	if a == AccuracyDGPS {
		return "DGPS"
	}
	return "Unaugmented"
}

// ManeuverIndicator is the 2-bit maneuver indicator carried by class A
// position reports, modeled as a closed enum per the original_source
// (messages/position_report.rs) rather than a bare integer.
type ManeuverIndicator uint8

const (
	ManeuverNotAvailable      ManeuverIndicator = 0
	ManeuverNoSpecialManeuver ManeuverIndicator = 1
	ManeuverSpecialManeuver   ManeuverIndicator = 2
)

// NavigationStatus is the closed set of AIS navigational status codes (spec
// §4.4: 4-bit field, 15 => none, 0..=14 => named variant).
type NavigationStatus uint8

const (
	NavStatusUnderWayUsingEngine             NavigationStatus = 0
	NavStatusAtAnchor                        NavigationStatus = 1
	NavStatusNotUnderCommand                 NavigationStatus = 2
	NavStatusRestrictedManeuverability        NavigationStatus = 3
	NavStatusConstrainedByDraught            NavigationStatus = 4
	NavStatusMoored                          NavigationStatus = 5
	NavStatusAground                         NavigationStatus = 6
	NavStatusEngagedInFishing                NavigationStatus = 7
	NavStatusUnderWaySailing                 NavigationStatus = 8
	NavStatusReservedForHighSpeedCraft       NavigationStatus = 9
	NavStatusReservedForWingInGroundCraft    NavigationStatus = 10
	NavStatusPowerDrivenVesselTowingAstern   NavigationStatus = 11
	NavStatusPowerDrivenVesselPushingAhead   NavigationStatus = 12
	NavStatusReservedFutureUse               NavigationStatus = 13
	NavStatusAISSARTActive                   NavigationStatus = 14
)

func (n NavigationStatus) String() string {
	switch n {
	case NavStatusUnderWayUsingEngine:
		return "UnderWayUsingEngine"
	case NavStatusAtAnchor:
		return "AtAnchor"
	case NavStatusNotUnderCommand:
		return "NotUnderCommand"
	case NavStatusRestrictedManeuverability:
		return "RestrictedManeuverability"
	case NavStatusConstrainedByDraught:
		return "ConstrainedByDraught"
	case NavStatusMoored:
		return "Moored"
	case NavStatusAground:
		return "Aground"
	case NavStatusEngagedInFishing:
		return "EngagedInFishing"
	case NavStatusUnderWaySailing:
		return "UnderWaySailing"
	case NavStatusReservedForHighSpeedCraft:
		return "ReservedForHighSpeedCraft"
	case NavStatusReservedForWingInGroundCraft:
		return "ReservedForWingInGroundCraft"
	case NavStatusPowerDrivenVesselTowingAstern:
		return "PowerDrivenVesselTowingAstern"
	case NavStatusPowerDrivenVesselPushingAhead:
		return "PowerDrivenVesselPushingAheadOrTowingAlongside"
	case NavStatusReservedFutureUse:
		return "ReservedForFutureUse"
	case NavStatusAISSARTActive:
		return "AISSARTActive"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(n))
	}
}

// EPFDType is the electronic position fixing device category (spec §4.4:
// 4-bit field, 0 or 15 => none, 1..=8 => named, else Unknown(raw)).
type EPFDType uint8

const (
	EPFDGPS                      EPFDType = 1
	EPFDGLONASS                  EPFDType = 2
	EPFDCombinedGPSGLONASS       EPFDType = 3
	EPFDLoranC                   EPFDType = 4
	EPFDChayka                   EPFDType = 5
	EPFDIntegratedNavigationSystem EPFDType = 6
	EPFDSurveyed                 EPFDType = 7
	EPFDGalileo                  EPFDType = 8
)

func (e EPFDType) String() string {
	switch e {
	case EPFDGPS:
		return "GPS"
	case EPFDGLONASS:
		return "GLONASS"
	case EPFDCombinedGPSGLONASS:
		return "CombinedGPSGLONASS"
	case EPFDLoranC:
		return "LoranC"
	case EPFDChayka:
		return "Chayka"
	case EPFDIntegratedNavigationSystem:
		return "IntegratedNavigationSystem"
	case EPFDSurveyed:
		return "Surveyed"
	case EPFDGalileo:
		return "Galileo"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}

// NavAidType is the aid-to-navigation type used by message 21 (spec §4.4:
// 5-bit field, 0 => none, 1..=31 => named variant).
type NavAidType uint8

const (
	NavAidReferencePoint                NavAidType = 1
	NavAidRACON                         NavAidType = 2
	NavAidFixedStructure                NavAidType = 3
	NavAidLightWithoutSectors           NavAidType = 5
	NavAidLightWithSectors              NavAidType = 6
	NavAidLeadingLightFront             NavAidType = 7
	NavAidLeadingLightRear              NavAidType = 8
	NavAidBeaconCardinalN               NavAidType = 9
	NavAidBeaconCardinalE               NavAidType = 10
	NavAidBeaconCardinalS               NavAidType = 11
	NavAidBeaconCardinalW               NavAidType = 12
	NavAidBeaconPortHand                NavAidType = 13
	NavAidBeaconStarboardHand           NavAidType = 14
	NavAidBeaconPreferredChannelPort    NavAidType = 15
	NavAidBeaconPreferredChannelStarboard NavAidType = 16
	NavAidBeaconIsolatedDanger          NavAidType = 17
	NavAidBeaconSafeWater               NavAidType = 18
	NavAidBeaconSpecialMark             NavAidType = 19
	NavAidCardinalMarkN                 NavAidType = 20
	NavAidCardinalMarkE                 NavAidType = 21
	NavAidCardinalMarkS                 NavAidType = 22
	NavAidCardinalMarkW                 NavAidType = 23
	NavAidPortHandMark                  NavAidType = 24
	NavAidStarboardHandMark             NavAidType = 25
	NavAidPreferredChannelPortHand      NavAidType = 26
	NavAidPreferredChannelStarboardHand NavAidType = 27
	NavAidIsolatedDanger                NavAidType = 28
	NavAidSafeWater                     NavAidType = 29
	NavAidSpecialMark                   NavAidType = 30
	NavAidLightVesselOrLANBY            NavAidType = 31
)

func (n NavAidType) String() string {
	switch n {
	case NavAidReferencePoint:
		return "ReferencePoint"
	case NavAidRACON:
		return "RACON"
	case NavAidFixedStructure:
		return "FixedStructure"
	case NavAidLightWithoutSectors:
		return "LightWithoutSectors"
	case NavAidLightWithSectors:
		return "LightWithSectors"
	case NavAidLeadingLightFront:
		return "LeadingLightFront"
	case NavAidLeadingLightRear:
		return "LeadingLightRear"
	case NavAidBeaconPortHand:
		return "BeaconPortHand"
	case NavAidBeaconStarboardHand:
		return "BeaconStarboardHand"
	case NavAidBeaconIsolatedDanger:
		return "BeaconIsolatedDanger"
	case NavAidBeaconSafeWater:
		return "BeaconSafeWater"
	case NavAidBeaconSpecialMark:
		return "BeaconSpecialMark"
	case NavAidLightVesselOrLANBY:
		return "LightVesselOrLANBY"
	default:
		return fmt.Sprintf("NavAid(%d)", uint8(n))
	}
}

// ShipType is the 8-bit ship and cargo type field (spec §4.4: 0 => none,
// 1..=99 => named or Reserved(raw), >=100 => none).
type ShipType struct {
	Code     uint8
	Category string
}

// decodeHazardCategory maps the shared 0/1/2/3/4/5..8/9 sub-range pattern
// that WingInGround, HighSpeedCraft, Passenger, Cargo, Tanker and Other all
// repeat: the base code is the plain category, +1..+4 are hazardous cargo
// categories A-D, and the rest of the decade is Reserved - except
// WingInGround's decade has no NoAdditionalInformation terminal code, unlike
// the other five (ground truth: original_source/src/messages/types.rs
// ShipType::parse, whose 25..=29 is WingInGroundReserved throughout, versus
// e.g. 45..=48 Reserved / 49 NoAdditionalInformation for HighSpeedCraft).
func decodeHazardCategory(base string, offset uint8, hasNoAdditionalInfo bool) string {
	switch offset {
	case 0:
		return base
	case 1:
		return base + "HazardousCategoryA"
	case 2:
		return base + "HazardousCategoryB"
	case 3:
		return base + "HazardousCategoryC"
	case 4:
		return base + "HazardousCategoryD"
	case 9:
		if hasNoAdditionalInfo {
			return base + "NoAdditionalInformation"
		}
		return base + "Reserved"
	default:
		return base + "Reserved"
	}
}

func decodeShipTypeCategory(code uint8) string {
	switch {
	case code >= 1 && code <= 19:
		return "Reserved"
	case code >= 20 && code <= 29:
		return decodeHazardCategory("WingInGround", code-20, false)
	case code == 30:
		return "Fishing"
	case code == 31:
		return "Towing"
	case code == 32:
		return "TowingLarge"
	case code == 33:
		return "DredgingOrUnderwaterOps"
	case code == 34:
		return "DivingOps"
	case code == 35:
		return "MilitaryOps"
	case code == 36:
		return "Sailing"
	case code == 37:
		return "PleasureCraft"
	case code >= 38 && code <= 39:
		return "Reserved"
	case code >= 40 && code <= 49:
		return decodeHazardCategory("HighSpeedCraft", code-40, true)
	case code == 50:
		return "PilotVessel"
	case code == 51:
		return "SearchAndRescueVessel"
	case code == 52:
		return "Tug"
	case code == 53:
		return "PortTender"
	case code == 54:
		return "AntiPollutionEquipment"
	case code == 55:
		return "LawEnforcement"
	case code >= 56 && code <= 57:
		return "SpareLocalVessel"
	case code == 58:
		return "MedicalTransport"
	case code == 59:
		return "NonCombatant"
	case code >= 60 && code <= 69:
		return decodeHazardCategory("Passenger", code-60, true)
	case code >= 70 && code <= 79:
		return decodeHazardCategory("Cargo", code-70, true)
	case code >= 80 && code <= 89:
		return decodeHazardCategory("Tanker", code-80, true)
	case code >= 90 && code <= 99:
		return decodeHazardCategory("Other", code-90, true)
	default:
		return fmt.Sprintf("Reserved(%d)", code)
	}
}
