// Package product defines the closed set of sellable product types. Adding a
// fourth type is a compile-time-visible change: every switch over Type is
// exhaustive over these three constants.
package product

type Type string

const (
	TypeTour     Type = "tour"
	TypeEvent    Type = "event"
	TypeTransfer Type = "transfer"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTour, TypeEvent, TypeTransfer:
		return true
	default:
		return false
	}
}

// All returns the known product types, mainly for validation messages.
func All() []Type {
	return []Type{TypeTour, TypeEvent, TypeTransfer}
}
