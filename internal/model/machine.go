package model

import "time"

// Machine is a crane model that parts can be looked up against.
type Machine struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	ModelNumber  string    `json:"model_number" gorm:"type:varchar(100);uniqueIndex;not null"`
	Series       string    `json:"series" gorm:"type:varchar(100)"`
	CapacityTons float64   `json:"capacity_tons"`
	CreatedAt    time.Time `json:"created_at"`
}

// MachineCompatibility links a machine to a compatible part.
type MachineCompatibility struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	MachineID string `json:"machine_id" gorm:"type:varchar(36);not null;index"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);not null;index"`
	Note      string `json:"note" gorm:"type:varchar(255)"`
}
