// Package store implements persistence for the blog post collection.
//
// The collection lives in a single JSON file: an array of post records.
// Every operation reads the file fresh and writes it back in full; there
// is no in-memory copy held across calls and no locking, so concurrent
// writers are last-write-wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"inkwell/models"
	"inkwell/observability"

	"github.com/spf13/afero"
)

// PostStore defines the interface for post data operations
type PostStore interface {
	Load(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, posts []models.Post) error
	FetchByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, title, content, author string) (*models.Post, error)
	Update(ctx context.Context, id uint, title, content, author *string) (*models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, id uint) (*models.Post, error)
}

// fileStore implements PostStore over a single JSON file.
type fileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a post store persisting to path on the given
// filesystem. Tests pass afero.NewMemMapFs() to stay off the real disk.
func NewFileStore(fs afero.Fs, path string) PostStore {
	return &fileStore{fs: fs, path: path}
}

// Load reads the persisted collection. A missing file is an empty
// collection, not an error. Records from older files are normalized
// (absent author defaults to Anonymous, absent likes to 0).
func (s *fileStore) Load(ctx context.Context) ([]models.Post, error) {
	posts, err := s.load()
	observability.ObserveStore("load", err)
	if err != nil {
		return nil, err
	}
	observability.StoreCollectionSize.Set(float64(len(posts)))
	return posts, nil
}

func (s *fileStore) load() ([]models.Post, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Post{}, nil
	}
	if err != nil {
		return nil, models.NewStorageError("read", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, models.NewParseError(err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	for i := range posts {
		posts[i].Normalize()
	}
	return posts, nil
}

// Save serializes the given collection and overwrites the file in full.
// The write goes to a temp file first and is renamed into place so a
// crash mid-write cannot leave a truncated collection behind.
func (s *fileStore) Save(ctx context.Context, posts []models.Post) error {
	err := s.save(posts)
	observability.ObserveStore("save", err)
	return err
}

func (s *fileStore) save(posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return models.NewInternalError(err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return models.NewStorageError("write", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return models.NewStorageError("replace", err)
	}
	return nil
}

// FetchByID loads the collection and returns the first post whose id
// matches, or a not-found error value.
func (s *fileStore) FetchByID(ctx context.Context, id uint) (*models.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, models.NewNotFoundError("Post", id)
}

// nextID returns one past the highest id in the collection. Deriving
// from the maximum rather than the length keeps ids unique even after
// non-trailing deletions.
func nextID(posts []models.Post) uint {
	var max uint
	for i := range posts {
		if posts[i].ID > max {
			max = posts[i].ID
		}
	}
	return max + 1
}

// Create appends a new post with zero likes and re-saves the collection.
// An empty author defaults to Anonymous.
func (s *fileStore) Create(ctx context.Context, title, content, author string) (*models.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if author == "" {
		author = models.DefaultAuthor
	}
	post := models.Post{
		ID:      nextID(posts),
		Title:   title,
		Content: content,
		Author:  author,
		Likes:   0,
	}

	posts = append(posts, post)
	if err := s.Save(ctx, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces only the supplied fields on the matching post; nil
// parameters leave the prior value in place.
func (s *fileStore) Update(ctx context.Context, id uint, title, content, author *string) (*models.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if title != nil {
			posts[i].Title = *title
		}
		if content != nil {
			posts[i].Content = *content
		}
		if author != nil {
			posts[i].Author = *author
		}
		if err := s.Save(ctx, posts); err != nil {
			return nil, err
		}
		post := posts[i]
		return &post, nil
	}
	return nil, models.NewNotFoundError("Post", id)
}

// Delete removes all posts matching id (at most one by invariant) and
// re-saves unconditionally, even when nothing matched.
func (s *fileStore) Delete(ctx context.Context, id uint) error {
	posts, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.Save(ctx, kept)
}

// Like increments the like counter on the matching post and re-saves.
func (s *fileStore) Like(ctx context.Context, id uint) (*models.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		posts[i].Likes++
		if err := s.Save(ctx, posts); err != nil {
			return nil, err
		}
		post := posts[i]
		return &post, nil
	}
	return nil, models.NewNotFoundError("Post", id)
}
