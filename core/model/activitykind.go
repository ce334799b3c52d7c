package model

// ActivityKind names an activity's category for readable logs and CSV
// output. It mirrors the numeric Group tag a CSV row carries without fixing
// what any particular group number means to the solver — the DP only ever
// reads Group.
type ActivityKind int

const (
	KindOther ActivityKind = iota
	KindHome
	KindWork
	KindShop
	KindLeisure
)

// String returns a human-readable representation of the activity kind.
func (k ActivityKind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindWork:
		return "work"
	case KindShop:
		return "shop"
	case KindLeisure:
		return "leisure"
	default:
		return "other"
	}
}

// ParseActivityKind parses the activity kind from its CSV/config spelling.
func ParseActivityKind(s string) ActivityKind {
	switch s {
	case "home":
		return KindHome
	case "work":
		return KindWork
	case "shop":
		return KindShop
	case "leisure":
		return KindLeisure
	default:
		return KindOther
	}
}
