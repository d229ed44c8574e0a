package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-studio-ai-api/internal/config"
)

func TestSearchParsesPhotos(t *testing.T) {
	var gotAuth, gotQuery, gotPerPage, gotOrientation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotPerPage = r.URL.Query().Get("per_page")
		gotOrientation = r.URL.Query().Get("orientation")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"photos": [
				{
					"id": 101,
					"url": "https://www.pexels.com/photo/101/",
					"photographer": "Asha",
					"photographer_url": "https://www.pexels.com/@asha",
					"avg_color": "#AABBCC",
					"src": {"original": "https://img.example/101-orig.jpg", "large": "https://img.example/101-large.jpg"}
				},
				{
					"id": 102,
					"url": "https://www.pexels.com/photo/102/",
					"photographer": "Ravi",
					"photographer_url": "https://www.pexels.com/@ravi",
					"src": {"original": "https://img.example/102-orig.jpg"}
				},
				{
					"id": 103,
					"url": "https://www.pexels.com/photo/103/",
					"src": {}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(&config.PexelsConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		PerPage:     6,
		Orientation: "landscape",
	})

	photos, err := client.Search(context.Background(), "birthday card background")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if gotAuth != "test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotQuery != "birthday card background" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotPerPage != "6" || gotOrientation != "landscape" {
		t.Errorf("per_page=%q orientation=%q", gotPerPage, gotOrientation)
	}

	if len(photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(photos))
	}
	if photos[0].ImageURL != "https://img.example/101-large.jpg" {
		t.Errorf("photo 0 should prefer large src, got %q", photos[0].ImageURL)
	}
	if photos[1].ImageURL != "https://img.example/102-orig.jpg" {
		t.Errorf("photo 1 should fall back to original, got %q", photos[1].ImageURL)
	}
	if photos[2].ImageURL != "https://www.pexels.com/photo/103/" {
		t.Errorf("photo 2 should fall back to page url, got %q", photos[2].ImageURL)
	}
	if photos[0].AvgColor != "#AABBCC" {
		t.Errorf("avg color = %q", photos[0].AvgColor)
	}
}

func TestSearchWithoutAPIKeyReturnsEmpty(t *testing.T) {
	client := NewClient(&config.PexelsConfig{})

	photos, err := client.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected empty result, got %d photos", len(photos))
	}
}

func TestSearchServerErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(&config.PexelsConfig{APIKey: "k", BaseURL: srv.URL})

	photos, err := client.Search(context.Background(), "wedding")
	if err != nil {
		t.Fatalf("search should swallow http errors, got %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected empty result, got %d photos", len(photos))
	}
}

func TestSearchBadJSONReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(&config.PexelsConfig{APIKey: "k", BaseURL: srv.URL})

	photos, err := client.Search(context.Background(), "diwali")
	if err != nil {
		t.Fatalf("search should swallow decode errors, got %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected empty result, got %d photos", len(photos))
	}
}
