package favorite

import (
	"time"

	"gorm.io/gorm"
)

type ItemType string

const (
	ItemOffer  ItemType = "offer"
	ItemPlayer ItemType = "player"
	ItemClub   ItemType = "club"
)

func (t ItemType) Valid() bool {
	return t == ItemOffer || t == ItemPlayer || t == ItemClub
}

// Favorite bookmarks an offer, player or club for one user. The composite
// unique index makes saving the same item twice a no-op.
type Favorite struct {
	gorm.Model
	UserID   uint     `gorm:"uniqueIndex:idx_user_item;not null" json:"user_id"`
	ItemType ItemType `gorm:"uniqueIndex:idx_user_item;not null" json:"item_type"`
	ItemID   uint     `gorm:"uniqueIndex:idx_user_item;not null" json:"item_id"`
}

type AddFavoriteRequest struct {
	ItemType ItemType `json:"item_type" binding:"required"`
	ItemID   uint     `json:"item_id" binding:"required"`
}

// FavoriteResponse carries the bookmark plus the hydrated item when it still
// exists. Item is null for favorites whose target was deleted.
type FavoriteResponse struct {
	ID        uint        `json:"id"`
	ItemType  ItemType    `json:"item_type"`
	ItemID    uint        `json:"item_id"`
	Item      interface{} `json:"item,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
