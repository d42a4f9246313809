package api

import (
	"context"
	"net/http"
	"testing"
)

func TestUserHistoryPath(t *testing.T) {
	client, rec := captureServer(t, http.StatusOK, `{}`)

	_, err := client.User().History(context.Background(), "yTrev", "anime")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if rec.path != "/v3/user/yTrev/history/anime" {
		t.Errorf("path = %q, want /v3/user/yTrev/history/anime", rec.path)
	}
	if rec.rawQuery != "" {
		t.Errorf("query = %q, want none", rec.rawQuery)
	}
}

func TestUserAnimeListQuery(t *testing.T) {
	client, rec := captureServer(t, http.StatusOK, `{}`)

	_, err := client.User().AnimeList(context.Background(), "yTrev", "", NewQuery().Set("q", "Kimetsu no Yaiba"))
	if err != nil {
		t.Fatalf("AnimeList() error = %v", err)
	}
	if rec.path != "/v3/user/yTrev/animelist" {
		t.Errorf("path = %q, want /v3/user/yTrev/animelist", rec.path)
	}
	if rec.rawQuery != "q=Kimetsu%20no%20Yaiba" {
		t.Errorf("query = %q, want q=Kimetsu%%20no%%20Yaiba", rec.rawQuery)
	}
}

func TestUserRequiresBothArguments(t *testing.T) {
	client, rec := captureServer(t, http.StatusOK, `{}`)

	if _, err := client.User().Get(context.Background(), "", "profile", nil, nil); !IsValidationError(err) {
		t.Errorf("missing username: err = %v, want validation error", err)
	}
	if _, err := client.User().Get(context.Background(), "yTrev", "", nil, nil); !IsValidationError(err) {
		t.Errorf("missing request: err = %v, want validation error", err)
	}
	if n := rec.calls.Load(); n != 0 {
		t.Errorf("validation failures issued %d requests", n)
	}
}

func TestUserFriendsPage(t *testing.T) {
	client, rec := captureServer(t, http.StatusOK, `{}`)

	if _, err := client.User().Friends(context.Background(), "yTrev", 2); err != nil {
		t.Fatalf("Friends() error = %v", err)
	}
	if rec.path != "/v3/user/yTrev/friends/2" {
		t.Errorf("path = %q", rec.path)
	}

	if _, err := client.User().Friends(context.Background(), "yTrev", 0); err != nil {
		t.Fatalf("Friends() error = %v", err)
	}
	if rec.path != "/v3/user/yTrev/friends" {
		t.Errorf("path = %q, want page segment dropped", rec.path)
	}
}
