package hold

type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusPromoted Status = "promoted"
	StatusReleased Status = "released"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusPromoted, StatusReleased:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the hold's lifecycle. Terminal
// holds are never resurrected; callers create a new hold instead.
func (s Status) IsTerminal() bool {
	return s == StatusExpired || s == StatusPromoted || s == StatusReleased
}
