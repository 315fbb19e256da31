package models

import "time"

type BookingSummary struct {
	TotalBookings int     `json:"totalBookings"`
	TotalMembers  int     `json:"totalMembers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// EventStats is one row of the cross-event overview.
type EventStats struct {
	Kind      EventKind `json:"type"`
	EventID   string    `json:"eventId"`
	EventName string    `json:"eventName"`
	IsActive  bool      `json:"isActive"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	BookingSummary
}

type Page struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage keeps (page-1)*limit far from int overflow.
	MaxPage          = 1_000_000
)

// NewPage normalizes page/limit and computes the page count for total items.
func NewPage(page, limit, total int) Page {
	page, limit = NormalizePage(page, limit)

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Page{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
