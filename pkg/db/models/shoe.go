package models

import "time"

// Shoe is a global catalog entry. Catalog rows are immutable after creation;
// there is no update or delete path.
type Shoe struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Brand       string    `gorm:"column:brand;not null" json:"brand"`
	Model       string    `gorm:"column:model;not null" json:"model"`
	Colorway    string    `gorm:"column:colorway;not null" json:"colorway"`
	RetailPrice int       `gorm:"column:retail_price;not null" json:"retailPrice"`
	MarketPrice *int      `gorm:"column:market_price" json:"marketPrice"`
	ImageURL    string    `gorm:"column:image_url;not null" json:"imageUrl"`
	Description string    `gorm:"column:description;not null" json:"description"`
	IsTrending  bool      `gorm:"column:is_trending;not null;default:false" json:"isTrending"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Shoe) TableName() string { return "shoes" }
