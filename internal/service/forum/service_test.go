package forum

import (
	"context"
	"testing"
	"time"

	forummodel "github.com/mindcare-app/backend/internal/model/forum"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	return NewService(store, nil, nil), store
}

func TestSeededOnFirstRun(t *testing.T) {
	svc, _ := newTestService(t)

	posts := svc.List(context.Background(), "All Posts")
	if len(posts) != 3 {
		t.Fatalf("expected 3 starter posts, got %d", len(posts))
	}
	if posts[0].Title != "Dealing with exam anxiety - tips that helped me" {
		t.Fatalf("unexpected first starter post: %+v", posts[0])
	}
}

func TestCreatePrependsAndPersists(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreateInput{
		Title:    "Study group for finals?",
		Content:  "Looking for people to revise statistics with.",
		Category: "Study Groups",
		Author:   "Asha Verma",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if post.Author != "Asha Verma" || post.Category != "Study Groups" {
		t.Fatalf("unexpected post: %+v", post)
	}

	posts := svc.List(ctx, "")
	if len(posts) != 4 || posts[0].ID != post.ID {
		t.Fatalf("expected new post first, got %+v", posts)
	}

	// Survives a reload from the same store.
	reloaded := NewService(store, nil, nil)
	again := reloaded.List(ctx, "")
	if len(again) != 4 || again[0].ID != post.ID {
		t.Fatalf("posts not persisted: %+v", again)
	}
}

func TestCreateAnonymousMasksAuthor(t *testing.T) {
	svc, _ := newTestService(t)

	post, err := svc.Create(context.Background(), CreateInput{
		Title:       "Feeling low lately",
		Content:     "Just needed to say it somewhere.",
		Category:    "Depression Support",
		Author:      "Asha Verma",
		IsAnonymous: true,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if post.Author != "Anonymous_Student" {
		t.Fatalf("anonymous post leaked author: %+v", post)
	}
}

func TestCreateRequiresTitleAndContent(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), CreateInput{Title: "  ", Content: "body"}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Title: "title", Content: ""}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	filtered := svc.List(ctx, "Success Stories")
	if len(filtered) != 1 || filtered[0].Category != "Success Stories" {
		t.Fatalf("category filter broken: %+v", filtered)
	}
	if all := svc.List(ctx, "All Posts"); len(all) != 3 {
		t.Fatalf("All Posts should be unfiltered, got %d", len(all))
	}
}

func TestToggleLikeIsPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before := svc.List(ctx, "")[0]

	liked, err := svc.ToggleLike(ctx, before.ID, "demo-1")
	if err != nil {
		t.Fatalf("ToggleLike err: %v", err)
	}
	if liked.Likes != before.Likes+1 || len(liked.LikedBy) != 1 {
		t.Fatalf("like not recorded: %+v", liked)
	}

	// Second tap from the same user withdraws it.
	unliked, err := svc.ToggleLike(ctx, before.ID, "demo-1")
	if err != nil {
		t.Fatalf("second ToggleLike err: %v", err)
	}
	if unliked.Likes != before.Likes || len(unliked.LikedBy) != 0 {
		t.Fatalf("like not withdrawn: %+v", unliked)
	}

	// Different users stack.
	if _, err := svc.ToggleLike(ctx, before.ID, "user-a"); err != nil {
		t.Fatalf("ToggleLike user-a err: %v", err)
	}
	both, err := svc.ToggleLike(ctx, before.ID, "user-b")
	if err != nil {
		t.Fatalf("ToggleLike user-b err: %v", err)
	}
	if both.Likes != before.Likes+2 {
		t.Fatalf("expected two stacked likes, got %+v", both)
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.ToggleLike(context.Background(), "nope", "demo-1"); err != ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestMalformedDocumentReseeds(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	if err := store.Put(forummodel.StorageKey, "not-a-post-list"); err != nil {
		t.Fatalf("seed malformed document: %v", err)
	}

	svc := NewService(store, nil, func() time.Time { return time.Now() })
	if posts := svc.List(context.Background(), ""); len(posts) != 3 {
		t.Fatalf("expected reseed after malformed document, got %d posts", len(posts))
	}
}
