package models

import "time"

// WishlistItem links a user to a shoe they want. Add and delete only; there is
// no update path.
type WishlistItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;not null;index:wishlist_items_user_id_idx" json:"userId"`
	ShoeID    int64     `gorm:"column:shoe_id;not null" json:"shoeId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Shoe *Shoe `gorm:"foreignKey:ShoeID" json:"-"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }

// WishlistItemWithShoe is the read-time join returned by the list endpoint.
type WishlistItemWithShoe struct {
	WishlistItem
	Shoe Shoe `json:"shoe"`
}
