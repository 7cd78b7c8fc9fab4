package services

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"time-tracker/backend/models"
)

// round2 rounds to two decimal places, matching how derived hours, amounts
// and productivity percentages are presented everywhere.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DerivedMinutes computes whole minutes between start and end. An end before
// start yields 0, never a negative duration.
func DerivedMinutes(start, end time.Time) int64 {
	mins := int64(end.Sub(start) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}

// SumMinutes totals TotalMin across a set of time logs.
func SumMinutes(logs []models.TimeLog) int64 {
	var total int64
	for _, l := range logs {
		total += l.TotalMin
	}
	return total
}

// MinutesToHours converts logged minutes to hours, two decimals.
func MinutesToHours(totalMin int64) float64 {
	return round2(float64(totalMin) / 60)
}

// Productivity is the estimate-vs-actual ratio as a percentage: above 100
// means the work took fewer minutes than estimated. Zero when either side
// is missing.
func Productivity(estimatedMin, actualMin int64) float64 {
	if estimatedMin <= 0 || actualMin <= 0 {
		return 0
	}
	return round2(float64(estimatedMin) / float64(actualMin) * 100)
}

// projectLog is a time log flattened through its task -> module -> project
// reference chain. ProjectID stays zero when any link in the chain is
// unresolved, so such logs never match a billing row.
type projectLog struct {
	UserID    primitive.ObjectID
	ProjectID primitive.ObjectID
	TotalMin  int64
}

// billingTotals folds the logs matching a billing's (user, project) pair into
// live totals. Unresolved billing references simply match nothing.
func billingTotals(b models.Billing, logs []projectLog) (totalHour, totalAmount float64) {
	var totalMin int64
	for _, l := range logs {
		if l.ProjectID.IsZero() {
			continue
		}
		if l.UserID == b.UserID && l.ProjectID == b.ProjectID {
			totalMin += l.TotalMin
		}
	}
	totalHour = MinutesToHours(totalMin)
	totalAmount = round2(totalHour * b.HourlyPrice)
	return totalHour, totalAmount
}
