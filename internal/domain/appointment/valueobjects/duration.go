package valueobjects

// Duration is the appointment length in minutes.
type Duration int

const (
	DurationQuarter    Duration = 15
	DurationHalf       Duration = 30
	DurationThreeQuart Duration = 45
	DurationFull       Duration = 60
)

// DefaultDuration is applied when a booking omits the duration.
const DefaultDuration = DurationHalf

func (d Duration) IsValid() bool {
	switch d {
	case DurationQuarter, DurationHalf, DurationThreeQuart, DurationFull:
		return true
	}
	return false
}

func (d Duration) Minutes() int {
	return int(d)
}
