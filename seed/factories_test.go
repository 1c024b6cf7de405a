package seed

import (
	"context"
	"testing"

	"inkwell/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreatePosts(t *testing.T) {
	posts := store.NewFileStore(afero.NewMemMapFs(), "blog_posts.json")
	factory := NewFactory(posts)

	created, err := factory.CreatePosts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, created, 5)

	for i, p := range created {
		assert.Equal(t, uint(i+1), p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Content)
		assert.NotEmpty(t, p.Author)
		assert.Equal(t, 0, p.Likes)
	}

	loaded, err := posts.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded, 5)
}
