// Package seed provides helpers to create demo data for the blog file.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"time"

	"inkwell/models"
	"inkwell/store"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds posts and persists them through the store.
type Factory struct {
	posts store.PostStore
}

// NewFactory creates a new Factory bound to the provided post store.
func NewFactory(posts store.PostStore) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{posts: posts}
}

// BuildPost constructs a fake post without persisting it. Useful when a
// caller wants to batch a whole collection into one Save.
func (f *Factory) BuildPost() models.Post {
	return models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		Author:  gofakeit.Name(),
	}
}

// CreatePosts creates n fake posts through the store and returns them.
func (f *Factory) CreatePosts(ctx context.Context, n int) ([]models.Post, error) {
	created := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		draft := f.BuildPost()
		post, err := f.posts.Create(ctx, draft.Title, draft.Content, draft.Author)
		if err != nil {
			return created, err
		}
		created = append(created, *post)
	}
	return created, nil
}
