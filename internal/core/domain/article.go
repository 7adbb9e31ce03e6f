package domain

import "time"

// Article is a link to external study material published by a user.
type Article struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	SourceURL   string    `json:"source_url" bson:"source_url"`
	UserID      string    `json:"user_id" bson:"user_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ArticleUpdate carries a partial article update. Nil fields are left untouched.
type ArticleUpdate struct {
	Title       *string
	Description *string
	SourceURL   *string
	UserID      *string
}
