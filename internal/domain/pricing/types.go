package pricing

// CalcKind is how a rule, discount, fee or option turns its configured value
// into an amount.
type CalcKind string

const (
	CalcFixed      CalcKind = "fixed"
	CalcPercentage CalcKind = "percentage"
	CalcPerUnit    CalcKind = "per_unit" // fee rules only
)

func (k CalcKind) IsValid() bool {
	switch k {
	case CalcFixed, CalcPercentage, CalcPerUnit:
		return true
	default:
		return false
	}
}

// AgeGroup keys the participant breakdown of a tour request. Groups are
// configuration-defined except for the infant override, which is fixed
// business policy.
type AgeGroup string

const (
	AgeGroupAdult  AgeGroup = "adult"
	AgeGroupChild  AgeGroup = "child"
	AgeGroupInfant AgeGroup = "infant"
)

type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}
