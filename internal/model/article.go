package model

import "time"

// Article is a news item. CreatedAt is set once by the server; UpdatedAt changes on every mutation.
type Article struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	Category        string    `json:"category"`
	Language        string    `json:"language"`
	CoverImageURL   *string   `json:"cover_image_url"`
	Status          string    `json:"status"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ArticleInput is the create payload. Identifiers and timestamps are not accepted from clients.
type ArticleInput struct {
	Title           string  `json:"title" validate:"required"`
	Slug            string  `json:"slug" validate:"required"`
	Content         string  `json:"content" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Language        string  `json:"language"`
	CoverImageURL   *string `json:"cover_image_url"`
	Status          string  `json:"status"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
}

// Article builds a new article stamped with now, filling in defaults.
func (in ArticleInput) Article(now time.Time) *Article {
	a := &Article{
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		Category:        in.Category,
		Language:        in.Language,
		CoverImageURL:   in.CoverImageURL,
		Status:          in.Status,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if a.Language == "" {
		a.Language = DefaultLanguage
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}
	return a
}

// ArticlePatch is a sparse update: nil means "not supplied", a pointer to "" means "set to empty".
// It has no created_at field, so a supplied created_at is dropped while decoding.
type ArticlePatch struct {
	Title           *string `json:"title" validate:"omitnil,min=1"`
	Slug            *string `json:"slug" validate:"omitnil,min=1"`
	Content         *string `json:"content" validate:"omitnil,min=1"`
	Category        *string `json:"category" validate:"omitnil,min=1"`
	Language        *string `json:"language"`
	CoverImageURL   *string `json:"cover_image_url"`
	Status          *string `json:"status"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
}

// IsEmpty reports whether no field was supplied.
func (p ArticlePatch) IsEmpty() bool {
	return p == ArticlePatch{}
}

// NewsQuery filters and pages the article list.
type NewsQuery struct {
	Status   string
	Category string
	Limit    int
	Skip     int
}
