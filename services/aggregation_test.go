package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"time-tracker/backend/models"
)

func TestDerivedMinutes(t *testing.T) {
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(90), DerivedMinutes(start, start.Add(90*time.Minute)))
	assert.Equal(t, int64(0), DerivedMinutes(start, start))

	// end before start never produces a negative duration
	assert.Equal(t, int64(0), DerivedMinutes(start, start.Add(-30*time.Minute)))

	// partial minutes are truncated
	assert.Equal(t, int64(1), DerivedMinutes(start, start.Add(119*time.Second)))
}

func TestSumMinutes(t *testing.T) {
	logs := []models.TimeLog{
		{TotalMin: 90},
		{TotalMin: 30},
	}

	assert.Equal(t, int64(120), SumMinutes(logs))
	assert.Equal(t, int64(0), SumMinutes(nil))
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, 2.0, MinutesToHours(120))
	assert.Equal(t, 1.5, MinutesToHours(90))

	// 100 minutes is 1.666... hours, presented as 1.67
	assert.Equal(t, 1.67, MinutesToHours(100))
	assert.Equal(t, 0.0, MinutesToHours(0))
}

func TestProductivity(t *testing.T) {
	// finished in half the estimate
	assert.Equal(t, 200.0, Productivity(120, 60))

	// took twice the estimate
	assert.Equal(t, 50.0, Productivity(60, 120))

	assert.Equal(t, 100.0, Productivity(90, 90))
	assert.Equal(t, 33.33, Productivity(30, 90))

	// missing estimate or missing work yields zero, not a division error
	assert.Equal(t, 0.0, Productivity(0, 60))
	assert.Equal(t, 0.0, Productivity(60, 0))
	assert.Equal(t, 0.0, Productivity(-10, 60))
}

func TestBillingTotals(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	otherUser := primitive.NewObjectID()
	otherProject := primitive.NewObjectID()

	billing := models.Billing{
		UserID:      userID,
		ProjectID:   projectID,
		HourlyPrice: 100,
	}

	logs := []projectLog{
		{UserID: userID, ProjectID: projectID, TotalMin: 90},
		{UserID: userID, ProjectID: projectID, TotalMin: 30},
		{UserID: otherUser, ProjectID: projectID, TotalMin: 60},
		{UserID: userID, ProjectID: otherProject, TotalMin: 60},
	}

	hours, amount := billingTotals(billing, logs)
	assert.Equal(t, 2.0, hours)
	assert.Equal(t, 200.0, amount)
}

func TestBillingTotalsSkipsUnresolvedLogs(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	billing := models.Billing{
		UserID:      userID,
		ProjectID:   projectID,
		HourlyPrice: 50,
	}

	// a log whose task chain did not resolve carries a zero ProjectID and
	// must never be counted, even when the user matches
	logs := []projectLog{
		{UserID: userID, ProjectID: primitive.NilObjectID, TotalMin: 600},
		{UserID: userID, ProjectID: projectID, TotalMin: 60},
	}

	hours, amount := billingTotals(billing, logs)
	assert.Equal(t, 1.0, hours)
	assert.Equal(t, 50.0, amount)
}

func TestBillingTotalsNoMatchingLogs(t *testing.T) {
	billing := models.Billing{
		UserID:      primitive.NewObjectID(),
		ProjectID:   primitive.NewObjectID(),
		HourlyPrice: 80,
	}

	hours, amount := billingTotals(billing, nil)
	assert.Equal(t, 0.0, hours)
	assert.Equal(t, 0.0, amount)
}

func TestBillingTotalsRoundsAmountFromRoundedHours(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	billing := models.Billing{
		UserID:      userID,
		ProjectID:   projectID,
		HourlyPrice: 99.99,
	}

	// 100 minutes rounds to 1.67 hours; the amount is computed from the
	// rounded hour figure
	logs := []projectLog{
		{UserID: userID, ProjectID: projectID, TotalMin: 100},
	}

	hours, amount := billingTotals(billing, logs)
	assert.Equal(t, 1.67, hours)
	assert.Equal(t, 166.98, amount)
}
