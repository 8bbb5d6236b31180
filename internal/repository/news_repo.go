package repository

import "technomaster/internal/model"

// NewsRepository serves the static news feed
type NewsRepository struct{}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository() *NewsRepository {
	return &NewsRepository{}
}

// List returns a copy of the built-in news posts
func (r *NewsRepository) List() []model.NewsPost {
	posts := make([]model.NewsPost, len(newsPosts))
	copy(posts, newsPosts)
	return posts
}
