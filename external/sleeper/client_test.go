package sleeper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/draftboard/internal/platform/logging"
)

func TestFetchUser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/draftnik" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"12345","username":"draftnik","display_name":"Draftnik"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Logger: logging.NewNop()})

	user, err := client.FetchUser(context.Background(), "draftnik")
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if user.UserID != "12345" {
		t.Fatalf("user id = %q, want 12345", user.UserID)
	}
	if user.DisplayName != "Draftnik" {
		t.Fatalf("display name = %q, want Draftnik", user.DisplayName)
	}
}

func TestFetchUserEmptyUsername(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, err := client.FetchUser(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank username")
	}
}

func TestFetchPlayers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/nfl" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"4046": {"full_name": "Patrick Mahomes", "position": "QB", "years_exp": 8, "active": true},
			"9999": {"full_name": "Rookie Guy", "position": "RB", "years_exp": 0, "team": null}
		}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Logger: logging.NewNop()})

	players, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("FetchPlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2", len(players))
	}
	if players["4046"]["full_name"] != "Patrick Mahomes" {
		t.Fatalf("unexpected player record: %#v", players["4046"])
	}
}

func TestFetchPlayersUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Logger: logging.NewNop()})

	if _, err := client.FetchPlayers(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	players := map[string]map[string]any{
		"2": {"full_name": "Beta Back", "years_exp": float64(0), "active": true, "injury": nil},
		"1": {"full_name": "Alpha Ace", "years_exp": float64(3), "fantasy_positions": []any{"RB"}},
	}

	table := Flatten(players)

	cols := table.Columns()
	if cols[0] != columnPlayerID {
		t.Fatalf("first column = %q, want %q", cols[0], columnPlayerID)
	}
	for i := 2; i < len(cols); i++ {
		if cols[i-1] > cols[i] {
			t.Fatalf("attribute columns not sorted: %q before %q", cols[i-1], cols[i])
		}
	}

	if table.Len() != 2 {
		t.Fatalf("got %d rows, want 2", table.Len())
	}
	if id, _ := table.Cell(0, columnPlayerID); id != "1" {
		t.Fatalf("rows not ordered by id, first id = %q", id)
	}

	if v, _ := table.Cell(1, "years_exp"); v != "0" {
		t.Fatalf("years_exp = %q, want 0", v)
	}
	if v, _ := table.Cell(1, "active"); v != "true" {
		t.Fatalf("active = %q, want true", v)
	}
	if v, _ := table.Cell(1, "injury"); v != "" {
		t.Fatalf("nil attribute = %q, want empty", v)
	}
	if v, _ := table.Cell(0, "fantasy_positions"); v != `["RB"]` {
		t.Fatalf("array attribute = %q", v)
	}
	if v, _ := table.Cell(0, "active"); v != "" {
		t.Fatalf("missing attribute = %q, want empty", v)
	}
}
