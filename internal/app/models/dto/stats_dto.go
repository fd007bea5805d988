package dto

// DashboardStatsResponse carries four independent row counts. The counts are
// a best-effort snapshot: each equals the store's count at the time it was
// read, but they are not taken in a single transaction.
type DashboardStatsResponse struct {
	Programs  int64 `json:"programs"`
	Resources int64 `json:"resources"`
	Downloads int64 `json:"downloads"`
	Messages  int64 `json:"messages"`
}
