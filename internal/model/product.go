package model

import "time"

// Product is a catalog entry for a crane part. The catalog endpoint only
// ever serves active products; IsActive is managed by the catalog tooling.
type Product struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	PartNumber    string    `json:"part_number" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Category      string    `json:"category" gorm:"type:varchar(100);index"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Pagination is the paging metadata block of the product listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ProductListResponse is the product listing response.
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
