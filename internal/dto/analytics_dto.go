package dto

import "time"

// TopMaterialResponse: one ranked entry of the top-materials projection.
// Score = downloads + views + 2*favorites.
type TopMaterialResponse struct {
	Rank     int              `json:"rank"`
	Score    int64            `json:"score"`
	Material MaterialResponse `json:"material"`
}

// SearchTermResponse: one aggregated search term group
type SearchTermResponse struct {
	Query        string    `json:"query"`
	Count        int64     `json:"count"`
	LastSearched time.Time `json:"last_searched"`
}
