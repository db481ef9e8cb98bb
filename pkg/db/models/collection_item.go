package models

import "time"

// CollectionItem is one owned unit of a Shoe in a user's inventory. user_id
// references the external identity provider; it is never generated here.
type CollectionItem struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"column:user_id;not null;index:collection_items_user_id_idx" json:"userId"`
	ShoeID        int64     `gorm:"column:shoe_id;not null" json:"shoeId"`
	Size          string    `gorm:"column:size;not null" json:"size"`
	PurchasePrice *int      `gorm:"column:purchase_price" json:"purchasePrice"`
	PurchaseDate  *string   `gorm:"column:purchase_date" json:"purchaseDate"`
	Condition     string    `gorm:"column:condition;not null;default:new" json:"condition"`
	Notes         *string   `gorm:"column:notes" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Shoe *Shoe `gorm:"foreignKey:ShoeID" json:"-"`
}

func (CollectionItem) TableName() string { return "collection_items" }

// CollectionItemWithShoe is the read-time join returned by list endpoints.
type CollectionItemWithShoe struct {
	CollectionItem
	Shoe Shoe `json:"shoe"`
}
