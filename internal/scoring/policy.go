package scoring

import "math"

// RiskBand is the discrete category a default probability falls into.
type RiskBand string

const (
	RiskLow    RiskBand = "Low"
	RiskMedium RiskBand = "Medium"
	RiskHigh   RiskBand = "High"
)

// Action is the collection step recommended for a risk band.
type Action string

const (
	ActionStandardReminder   Action = "Standard Reminder"
	ActionPersonalizedCall   Action = "Personalized Call"
	ActionPriorityCollection Action = "Priority Collection"
)

// Band boundaries. A probability equal to a boundary belongs to the higher band.
const (
	MediumThreshold = 0.3
	HighThreshold   = 0.6
)

// Classify maps a default probability to its risk band and action.
func Classify(p float64) (RiskBand, Action) {
	switch {
	case p < MediumThreshold:
		return RiskLow, ActionStandardReminder
	case p < HighThreshold:
		return RiskMedium, ActionPersonalizedCall
	default:
		return RiskHigh, ActionPriorityCollection
	}
}

// Round4 rounds p to 4 decimal places, halves away from zero.
func Round4(p float64) float64 {
	return math.Round(p*10000) / 10000
}
