package models

import "time"

// RecentlyViewedMaterial holds the most recent view per (user, material).
// Repeat views overwrite LastViewedAt; no view history is kept.
type RecentlyViewedMaterial struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_recent_user_material;index:idx_recent_user_viewed" json:"user_id"`
	MaterialID   int64     `gorm:"not null;uniqueIndex:idx_recent_user_material;index" json:"material_id"`
	LastViewedAt time.Time `gorm:"autoUpdateTime;index:idx_recent_user_viewed,sort:desc" json:"last_viewed_at"`

	// Associations
	User     *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Material *StudyMaterial `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}

func (RecentlyViewedMaterial) TableName() string {
	return "recently_viewed_materials"
}
