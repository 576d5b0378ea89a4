package model

import "time"

// Dealer is a partner that fulfills routed orders. Referenced by Routing
// rows and by dealer user accounts; never owned by either.
type Dealer struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Code         string    `json:"code" gorm:"type:varchar(32);uniqueIndex;not null"`
	City         string    `json:"city" gorm:"type:varchar(100)"`
	Region       string    `json:"region" gorm:"type:varchar(100)"`
	ContactEmail string    `json:"contact_email" gorm:"type:varchar(255)"`
	ContactPhone string    `json:"contact_phone" gorm:"type:varchar(30)"`
	CreatedAt    time.Time `json:"created_at"`
}
