package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Billing stores the hourly rate for a (user, project) pair. Total hours and
// amount are never persisted; they are recomputed from time logs on every read.
type Billing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	ProjectID   primitive.ObjectID `json:"projectId" bson:"projectId"`
	HourlyPrice float64            `json:"hourlyPrice" bson:"hourlyPrice"`
	Payment     PaymentStatus      `json:"payment" bson:"payment"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BillingView is the live read model: the stored record plus resolved
// references and the totals derived from current time-log data.
type BillingView struct {
	Billing     `bson:",inline"`
	User        *User    `json:"user,omitempty"`
	Project     *Project `json:"project,omitempty"`
	TotalHour   float64  `json:"totalHour"`
	TotalAmount float64  `json:"totalAmount"`
}
