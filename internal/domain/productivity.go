package domain

// ProductivityRow is the canonical per-technician count row.
type ProductivityRow struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Assigned   int    `json:"assigned"`
	InProgress int    `json:"inProgress"`
	InReview   int    `json:"inReview"`
	Finished   int    `json:"finished"`
	Pending    int    `json:"pending"`
}

// GlobalMetrics sums a set of rows.
type GlobalMetrics struct {
	Assigned               int     `json:"assigned"`
	InProgress             int     `json:"inProgress"`
	InReview               int     `json:"inReview"`
	Finished               int     `json:"finished"`
	Pending                int     `json:"pending"`
	Active                 int     `json:"active"`
	TechnicianCount        int     `json:"technicianCount"`
	AveragePerTech         float64 `json:"averagePerTech"`
	AverageFinishedPerTech float64 `json:"averageFinishedPerTech"`
}

// RankedRow is a ProductivityRow with its 1-based ranking position.
type RankedRow struct {
	ProductivityRow
	Position int `json:"position"`
}
