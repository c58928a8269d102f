package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	forummodel "github.com/mindcare-app/backend/internal/model/forum"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// Service errors.
var (
	ErrMissingFields = errors.New("title and content are required")
	ErrPostNotFound  = errors.New("post not found")
)

// Service manages the peer-support forum. Posts live under a single
// storage document; the starter posts appear whenever that document is
// absent or unreadable.
type Service struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time
	posts  []forummodel.Post
}

// NewService loads the forum from the store, falling back to the seed
// posts when nothing usable is there.
func NewService(store kv.Store, logger *zap.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	s := &Service{store: store, logger: logger, now: now}

	var posts []forummodel.Post
	err := store.Get(forummodel.StorageKey, &posts)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		posts = forummodel.Seed()
	case err != nil:
		logger.Warn("forum document unreadable, reseeding", zap.Error(err))
		posts = forummodel.Seed()
	case len(posts) == 0:
		posts = forummodel.Seed()
	}
	s.posts = posts
	return s
}

// List returns posts, newest first, optionally filtered by category.
// "All Posts" and the empty string mean no filter.
func (s *Service) List(_ context.Context, category string) []forummodel.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]forummodel.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if category != "" && category != "All Posts" && post.Category != category {
			continue
		}
		out = append(out, post)
	}
	return out
}

// CreateInput carries a new post's fields.
type CreateInput struct {
	Title       string
	Content     string
	Category    string
	Author      string
	IsAnonymous bool
}

// Create prepends a new post. Anonymous posts replace the author handle.
func (s *Service) Create(_ context.Context, input CreateInput) (forummodel.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return forummodel.Post{}, ErrMissingFields
	}

	author := input.Author
	if input.IsAnonymous || strings.TrimSpace(author) == "" {
		author = "Anonymous_Student"
	}
	category := input.Category
	if category == "" || category == "All Posts" {
		category = "General Support"
	}

	post := forummodel.Post{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Content:     strings.TrimSpace(input.Content),
		Author:      author,
		Category:    category,
		CreatedAt:   s.now(),
		IsAnonymous: input.IsAnonymous,
		LikedBy:     []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]forummodel.Post{post}, s.posts...)
	if err := s.persistLocked(); err != nil {
		s.posts = s.posts[1:]
		return forummodel.Post{}, err
	}
	return post, nil
}

// ToggleLike adds or withdraws a user's like on a post.
func (s *Service) ToggleLike(_ context.Context, postID, userID string) (forummodel.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		post := &s.posts[i]
		liked := false
		for j, id := range post.LikedBy {
			if id == userID {
				post.LikedBy = append(post.LikedBy[:j], post.LikedBy[j+1:]...)
				post.Likes--
				liked = true
				break
			}
		}
		if !liked {
			post.LikedBy = append(post.LikedBy, userID)
			post.Likes++
		}
		if err := s.persistLocked(); err != nil {
			return forummodel.Post{}, err
		}
		return *post, nil
	}
	return forummodel.Post{}, ErrPostNotFound
}

func (s *Service) persistLocked() error {
	if err := s.store.Put(forummodel.StorageKey, s.posts); err != nil {
		return fmt.Errorf("persist forum posts: %w", err)
	}
	return nil
}
