package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Purchase status values
const (
	PurchaseStatusPending   = "PENDING"
	PurchaseStatusCompleted = "COMPLETED"
)

// Purchase records a user's purchase of a course. The composite unique
// index on (user_id, course_id) is what prevents concurrent duplicate
// purchase initiations from both succeeding.
type Purchase struct {
	gorm.Model
	UserID             uint           `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID           uint           `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Status             string         `json:"status" gorm:"default:'PENDING'"` // PENDING, COMPLETED
	Amount             int64          `json:"amount"`                          // charge amount in minor units
	Currency           string         `json:"currency" gorm:"default:'usd'"`
	PaymentIntentID    string         `json:"payment_intent_id"`
	PaymentResponseRaw datatypes.JSON `json:"-"` // raw payment provider response

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
