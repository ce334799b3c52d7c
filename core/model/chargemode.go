package model

// ChargeMode identifies which charger speed, if any, an Activity offers.
type ChargeMode int

const (
	ChargeNone ChargeMode = iota
	ChargeSlow
	ChargeFast
	ChargeRapid
)

// String returns a human-readable representation of the charge mode.
func (m ChargeMode) String() string {
	switch m {
	case ChargeNone:
		return "none"
	case ChargeSlow:
		return "slow"
	case ChargeFast:
		return "fast"
	case ChargeRapid:
		return "rapid"
	default:
		return "unknown"
	}
}

// ParseChargeMode parses the charge mode from its CSV/config spelling.
func ParseChargeMode(s string) ChargeMode {
	switch s {
	case "slow":
		return ChargeSlow
	case "fast":
		return ChargeFast
	case "rapid":
		return ChargeRapid
	default:
		return ChargeNone
	}
}
