package models

import "time"

// SearchQueryLog is write-once telemetry for filtered listing queries.
// UserID is nil for anonymous callers.
type SearchQueryLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Query     string    `gorm:"size:255;not null" json:"query"`
	UserID    *string   `gorm:"type:uuid;index:idx_search_logs_user_ts" json:"user_id,omitempty"`
	Timestamp time.Time `gorm:"autoCreateTime;index:,sort:desc;index:idx_search_logs_user_ts" json:"timestamp"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (SearchQueryLog) TableName() string {
	return "search_query_logs"
}
