// ABOUTME: Tests for path-based page dispatch
// ABOUTME: Verifies the three named pages and the articles fallback

package present

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		path string
		want Page
	}{
		{"/articles", PageArticles},
		{"/press-releases", PagePress},
		{"/word-cloud", PageWordCloud},
		{"/", PageArticles},
		{"", PageArticles},
		{"/anything-unmapped", PageArticles},
		{"/articles/", PageArticles},
		{"/Press-Releases", PageArticles},
	}

	for _, tt := range tests {
		if got := Route(tt.path); got != tt.want {
			t.Errorf("Route(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRoute_UnmappedMatchesArticles(t *testing.T) {
	if Route("/anything-unmapped") != Route("/articles") {
		t.Error("unmapped path should route to the same page as /articles")
	}
}

func TestPage_PathRoundTrip(t *testing.T) {
	for _, p := range Pages() {
		if Route(p.Path()) != p {
			t.Errorf("Route(%q) != %v", p.Path(), p)
		}
		if p.NavTitle() == "" {
			t.Errorf("%v has no nav title", p)
		}
	}
}
