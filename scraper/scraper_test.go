package scraper

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"techfeed/database"
	"techfeed/models"
	"techfeed/store"
	"techfeed/week"
)

func TestMapZennArticles(t *testing.T) {
	published := time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC)
	in := []zennArticle{
		{ID: 123, Title: "Go 1.23 notes", Path: "/gopher/articles/go123", LikedCount: 42, BookmarkedCount: 7, PublishedAt: published},
		{ID: 124, Title: "", Path: "/x/articles/y"}, // dropped: no title
	}
	in[0].User.Username = "gopher"
	in[0].User.Name = "Gopher"

	got := mapZennArticles(in)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	a := got[0]
	if a.ID != "zenn-123" {
		t.Errorf("id = %s, want zenn-123", a.ID)
	}
	if a.URL != "https://zenn.dev/gopher/articles/go123" {
		t.Errorf("url = %s", a.URL)
	}
	if a.Site != models.SiteZenn || a.Likes != 42 || a.Bookmarks != 7 {
		t.Errorf("mapped article = %+v", a)
	}
	if a.Author != "Gopher" {
		t.Errorf("author = %s, want display name", a.Author)
	}
}

func TestMapQiitaItems(t *testing.T) {
	created := time.Date(2025, 8, 4, 9, 0, 0, 0, time.UTC)
	items := []qiitaItem{
		{ID: "abc123", Title: "Testing in Go", URL: "https://qiita.com/u/items/abc123", CreatedAt: created, LikesCount: 15, StocksCount: 8},
		{ID: "", Title: "broken", URL: "https://qiita.com/x"}, // dropped: no id
	}
	items[0].User.ID = "u"

	got := mapQiitaItems(items)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	a := got[0]
	if a.ID != "qiita-abc123" || a.Site != models.SiteQiita {
		t.Errorf("mapped article = %+v", a)
	}
	if a.Likes != 15 || a.Bookmarks != 8 {
		t.Errorf("engagement = %d/%d, want 15/8 (stocks map to bookmarks)", a.Likes, a.Bookmarks)
	}
	if a.Author != "u" {
		t.Errorf("author = %s, want login fallback", a.Author)
	}
}

const hatenaFixture = `
<div class="entrylist-contents">
  <h3 class="entrylist-contents-title">
    <a href="https://example.com/go-article" title="Go article title">Go article title</a>
  </h3>
  <span class="entrylist-contents-users"><a><span>1,234 users</span></a></span>
  <div class="entrylist-contents-domain"><a>example.com</a></div>
  <div class="entrylist-contents-date">2025/08/05 10:30</div>
</div>
<div class="entrylist-contents">
  <h3 class="entrylist-contents-title"><a href="">no url</a></h3>
</div>
`

func TestParseHatenaDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(hatenaFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	got := parseHatenaDocument(doc)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (url-less entry dropped)", len(got))
	}
	a := got[0]
	if a.Site != models.SiteHatena {
		t.Errorf("site = %s", a.Site)
	}
	if a.Title != "Go article title" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Bookmarks != 1234 {
		t.Errorf("bookmarks = %d, want 1234", a.Bookmarks)
	}
	if a.Author != "example.com" {
		t.Errorf("author = %q, want source domain", a.Author)
	}
	if !strings.HasPrefix(a.ID, "hatena-") {
		t.Errorf("id = %s, want hatena- prefix", a.ID)
	}
	want := time.Date(2025, 8, 5, 10, 30, 0, 0, week.JST())
	if !a.PublishedAt.Equal(want) {
		t.Errorf("published = %s, want %s", a.PublishedAt, want)
	}
}

func TestParseHatenaDate_JSTWeekBucket(t *testing.T) {
	// Sunday 23:00 JST is still Sunday; read as UTC it would spill into
	// the next week's Monday.
	got := parseHatenaDate("2025/08/10 23:00")
	want := time.Date(2025, 8, 10, 23, 0, 0, 0, week.JST())
	if !got.Equal(want) {
		t.Fatalf("parseHatenaDate = %s, want %s", got, want)
	}
	if monday := week.FormatDate(week.StartOfWeek(got)); monday != "2025-08-04" {
		t.Errorf("week start = %s, want 2025-08-04", monday)
	}
}

func TestParseHatenaUsers(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1,234 users", 1234},
		{"5 users", 5},
		{"  12 users ", 12},
		{"", 0},
		{"users", 0},
	}
	for _, tt := range tests {
		if got := parseHatenaUsers(tt.in); got != tt.want {
			t.Errorf("parseHatenaUsers(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestURLID_StablePerURL(t *testing.T) {
	a := urlID("hatena", "https://example.com/x")
	b := urlID("hatena", "https://example.com/x")
	c := urlID("hatena", "https://example.com/y")
	if a != b {
		t.Errorf("same url produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different urls produced same id: %s", a)
	}
	if !strings.HasPrefix(a, "hatena-") {
		t.Errorf("id = %s, want hatena- prefix", a)
	}
}

type fakeSource struct {
	name     string
	articles []models.Article
	err      error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context) ([]models.Article, error) {
	return f.articles, f.err
}

func TestIngestor_RunOnce(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	st := store.New(db)

	ok := &fakeSource{name: "ok", articles: []models.Article{
		{ID: "zenn-1", Title: "t", URL: "u1", Site: models.SiteZenn, PublishedAt: time.Now()},
		{ID: "zenn-2", Title: "t", URL: "u2", Site: models.SiteZenn, PublishedAt: time.Now()},
	}}
	bad := &fakeSource{name: "bad", err: errors.New("boom")}

	saved, err := NewIngestor(st, ok, bad).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v (one failing source must not fail the cycle)", err)
	}
	if saved != 2 {
		t.Errorf("saved = %d, want 2", saved)
	}

	page, err := st.List(store.ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("stored = %d, want 2", page.TotalCount)
	}
}

func TestIngestor_AllSourcesFailed(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	st := store.New(db)

	_, err = NewIngestor(st, &fakeSource{name: "a", err: errors.New("x")}).RunOnce(context.Background())
	if err == nil {
		t.Error("expected error when every source fails")
	}
}
