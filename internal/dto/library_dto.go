package dto

import "time"

// ToggleFavoriteResponse: state after a favorite toggle
type ToggleFavoriteResponse struct {
	MaterialID int64 `json:"material_id"`
	Favorited  bool  `json:"favorited"`
	NewCount   int64 `json:"new_count"`
}

// LibraryEntryResponse: one favorite or recently-viewed entry
type LibraryEntryResponse struct {
	MaterialID int64            `json:"material_id"`
	Material   MaterialResponse `json:"material"`
	At         time.Time        `json:"at"` // favorited at / last viewed at
}

// LibraryResponse: the personal library view
type LibraryResponse struct {
	Favorites      []LibraryEntryResponse `json:"favorites"`
	RecentlyViewed []LibraryEntryResponse `json:"recently_viewed"`
}
