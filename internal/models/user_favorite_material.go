package models

import "time"

// UserFavoriteMaterial is the source of truth behind
// StudyMaterial.FavoritesCount. The (user, material) unique index is
// the serialization point for racing favorite toggles.
type UserFavoriteMaterial struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_material;index:idx_favorites_user_created" json:"user_id"`
	MaterialID int64     `gorm:"not null;uniqueIndex:idx_favorite_user_material;index" json:"material_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_favorites_user_created,sort:desc" json:"created_at"`

	// Associations
	User     *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Material *StudyMaterial `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}

func (UserFavoriteMaterial) TableName() string {
	return "user_favorite_materials"
}
