package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The ID is the public catalog id, assigned
// sequentially at insert time rather than by the database.
type Product struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Image     string          `json:"image" gorm:"size:512;not null"`
	Category  string          `json:"category" gorm:"size:100;not null;index"`
	NewPrice  decimal.Decimal `json:"new_price" gorm:"type:decimal(10,2);not null"`
	OldPrice  decimal.Decimal `json:"old_price" gorm:"type:decimal(10,2);not null"`
	Date      time.Time       `json:"date" gorm:"autoCreateTime"`
	Available bool            `json:"available" gorm:"default:true"`
}
