package store

import (
	"fmt"
	"testing"
	"time"

	"techfeed/database"
	"techfeed/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return New(db)
}

func seedArticle(t *testing.T, s *Store, a models.Article) {
	t.Helper()
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	if err := s.Upsert(&a); err != nil {
		t.Fatalf("upsert %s: %v", a.ID, err)
	}
}

func TestUpsert_ReplacesEngagement(t *testing.T) {
	s := testStore(t)

	seedArticle(t, s, models.Article{
		ID: "zenn-1", Title: "Go generics", URL: "https://zenn.dev/a/1",
		Author: "gopher", Site: models.SiteZenn, Likes: 5, Bookmarks: 2,
	})
	seedArticle(t, s, models.Article{
		ID: "zenn-1", Title: "Go generics", URL: "https://zenn.dev/a/1",
		Author: "gopher", Site: models.SiteZenn, Likes: 12, Bookmarks: 4,
	})

	page, err := s.List(ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("total = %d, want 1 (upsert must replace, not duplicate)", page.TotalCount)
	}
	if got := page.Articles[0]; got.Likes != 12 || got.Bookmarks != 4 {
		t.Errorf("engagement = %d/%d, want 12/4", got.Likes, got.Bookmarks)
	}
}

func TestUpsert_ReplacesOnURLConflict(t *testing.T) {
	s := testStore(t)

	seedArticle(t, s, models.Article{
		ID: "zenn-1", Title: "Go generics", URL: "https://zenn.dev/a/1",
		Author: "gopher", Site: models.SiteZenn, Likes: 5, Bookmarks: 2,
	})
	// The same url can come back under a different id when the source
	// changes its slug; the newer row wins.
	seedArticle(t, s, models.Article{
		ID: "zenn-other", Title: "Go generics", URL: "https://zenn.dev/a/1",
		Author: "gopher", Site: models.SiteZenn, Likes: 9, Bookmarks: 3,
	})

	page, err := s.List(ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("total = %d, want 1 (same url must not duplicate)", page.TotalCount)
	}
	got := page.Articles[0]
	if got.ID != "zenn-other" {
		t.Errorf("id = %s, want zenn-other", got.ID)
	}
	if got.Likes != 9 || got.Bookmarks != 3 {
		t.Errorf("engagement = %d/%d, want 9/3", got.Likes, got.Bookmarks)
	}
}

func TestList_SiteFilter(t *testing.T) {
	s := testStore(t)
	seedArticle(t, s, models.Article{ID: "zenn-1", Title: "a", URL: "u1", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "qiita-1", Title: "b", URL: "u2", Site: models.SiteQiita})
	seedArticle(t, s, models.Article{ID: "hatena-1", Title: "c", URL: "u3", Site: models.SiteHatena})

	page, err := s.List(ListParams{Site: "qiita"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 || page.Articles[0].ID != "qiita-1" {
		t.Errorf("site filter returned %d rows, first %v", page.TotalCount, page.Articles)
	}

	all, err := s.List(ListParams{Site: "all"})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.TotalCount != 3 {
		t.Errorf("site=all total = %d, want 3", all.TotalCount)
	}
}

func TestList_OrderLatest(t *testing.T) {
	s := testStore(t)
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		seedArticle(t, s, models.Article{
			ID: fmt.Sprintf("zenn-%d", i), Title: "t", URL: fmt.Sprintf("u%d", i),
			Site: models.SiteZenn, PublishedAt: base.AddDate(0, 0, i),
		})
	}

	page, err := s.List(ListParams{Order: OrderLatest})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Articles[0].ID != "zenn-3" || page.Articles[2].ID != "zenn-1" {
		t.Errorf("latest order wrong: %s, %s, %s", page.Articles[0].ID, page.Articles[1].ID, page.Articles[2].ID)
	}
}

func TestList_OrderTrending(t *testing.T) {
	s := testStore(t)
	early := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 0, 3)

	seedArticle(t, s, models.Article{ID: "a", Title: "t", URL: "u1", Site: models.SiteZenn, Likes: 10, Bookmarks: 0, PublishedAt: early})
	seedArticle(t, s, models.Article{ID: "b", Title: "t", URL: "u2", Site: models.SiteZenn, Likes: 3, Bookmarks: 2, PublishedAt: early})
	// Same engagement as "a" but newer: publish time breaks the tie.
	seedArticle(t, s, models.Article{ID: "c", Title: "t", URL: "u3", Site: models.SiteZenn, Likes: 4, Bookmarks: 6, PublishedAt: late})

	page, err := s.List(ListParams{Order: OrderTrending})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if page.Articles[i].ID != id {
			t.Errorf("trending[%d] = %s, want %s", i, page.Articles[i].ID, id)
		}
	}
}

func TestList_TitleSearchCaseInsensitive(t *testing.T) {
	s := testStore(t)
	seedArticle(t, s, models.Article{ID: "a", Title: "Understanding Goroutines", URL: "u1", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "b", Title: "Rust lifetimes", URL: "u2", Site: models.SiteZenn})

	page, err := s.List(ListParams{Query: "GOROUTINE"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 || page.Articles[0].ID != "a" {
		t.Errorf("search returned %d rows", page.TotalCount)
	}

	// Whitespace-only query means no search.
	page, err = s.List(ListParams{Query: "   "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("blank query total = %d, want 2", page.TotalCount)
	}
}

func TestList_ContentFilter(t *testing.T) {
	s := testStore(t)
	seedArticle(t, s, models.Article{ID: "a", Title: "Claude Code tips", URL: "u1", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "b", Title: "Codex workflows", URL: "u2", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "c", Title: "Plain Go article", URL: "u3", Site: models.SiteZenn})

	page, err := s.List(ListParams{ContentFilter: []string{"claude code", "codex"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("content filter total = %d, want 2", page.TotalCount)
	}
}

func TestList_Pagination(t *testing.T) {
	s := testStore(t)
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		seedArticle(t, s, models.Article{
			ID: fmt.Sprintf("zenn-%02d", i), Title: "t", URL: fmt.Sprintf("u%02d", i),
			Site: models.SiteZenn, PublishedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	page1, err := s.List(ListParams{Page: 1, Limit: 24})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if page1.TotalCount != 50 || page1.TotalPages != 3 {
		t.Errorf("totals = %d/%d pages, want 50/3", page1.TotalCount, page1.TotalPages)
	}
	if page1.HasPrevious || !page1.HasNext {
		t.Errorf("page 1 nav = prev:%v next:%v, want prev:false next:true", page1.HasPrevious, page1.HasNext)
	}
	if len(page1.Articles) != 24 {
		t.Errorf("page 1 size = %d, want 24", len(page1.Articles))
	}

	page3, err := s.List(ListParams{Page: 3, Limit: 24})
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if !page3.HasPrevious || page3.HasNext {
		t.Errorf("page 3 nav = prev:%v next:%v, want prev:true next:false", page3.HasPrevious, page3.HasNext)
	}
	if len(page3.Articles) != 2 {
		t.Errorf("page 3 size = %d, want 2", len(page3.Articles))
	}

	// Page numbers below 1 are clamped.
	clamped, err := s.List(ListParams{Page: 0, Limit: 24})
	if err != nil {
		t.Fatalf("list page 0: %v", err)
	}
	if clamped.CurrentPage != 1 {
		t.Errorf("clamped page = %d, want 1", clamped.CurrentPage)
	}
}

func TestStats(t *testing.T) {
	s := testStore(t)
	seedArticle(t, s, models.Article{ID: "a", Title: "t", URL: "u1", Author: "x", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "b", Title: "t", URL: "u2", Author: "x", Site: models.SiteZenn})
	seedArticle(t, s, models.Article{ID: "c", Title: "t", URL: "u3", Author: "y", Site: models.SiteQiita})

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.BySite["zenn"] != 2 || stats.BySite["qiita"] != 1 {
		t.Errorf("by site = %v", stats.BySite)
	}
	if stats.Authors != 2 {
		t.Errorf("authors = %d, want 2", stats.Authors)
	}
}
