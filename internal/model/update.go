package model

import "time"

// Update is a short notice such as "Admit Card" or "Results".
type Update struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateInput is the create payload for an update notice.
type UpdateInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}

// Update builds a new notice stamped with now.
func (in UpdateInput) Update(now time.Time) *Update {
	u := &Update{
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.Category == "" {
		u.Category = DefaultUpdateCategory
	}
	return u
}

// UpdatePatch is a sparse update of a notice.
type UpdatePatch struct {
	Title    *string `json:"title" validate:"omitnil,min=1"`
	Content  *string `json:"content" validate:"omitnil,min=1"`
	Category *string `json:"category"`
}

// IsEmpty reports whether no field was supplied.
func (p UpdatePatch) IsEmpty() bool {
	return p == UpdatePatch{}
}

// UpdateQuery filters and pages the update list.
type UpdateQuery struct {
	Category string
	Limit    int
	Skip     int
}
