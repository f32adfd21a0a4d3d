package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/draftboard/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.SleeperBaseURL != "https://api.sleeper.app/v1" {
		t.Fatalf("unexpected SleeperBaseURL: %q", cfg.SleeperBaseURL)
	}
	if cfg.SleeperTimeout != 30*time.Second {
		t.Fatalf("unexpected SleeperTimeout: %s", cfg.SleeperTimeout)
	}
	if cfg.MatchMinScore != 80 {
		t.Fatalf("unexpected MatchMinScore: %d", cfg.MatchMinScore)
	}
	if cfg.IncludeDefenses {
		t.Fatalf("expected IncludeDefenses=false by default")
	}
	if cfg.OutputPath != "output.csv" {
		t.Fatalf("unexpected OutputPath: %q", cfg.OutputPath)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_MatchMinScoreBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("MATCH_MIN_SCORE", "101")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for MATCH_MIN_SCORE out of range")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SLEEPER_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SLEEPER_TIMEOUT")
	}
}

func TestRequireSleeperUsername(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.RequireSleeperUsername(); err == nil {
		t.Fatalf("expected error without SLEEPER_USERNAME")
	}

	t.Setenv("SLEEPER_USERNAME", "draftnik")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.RequireSleeperUsername(); err != nil {
		t.Fatalf("RequireSleeperUsername: %v", err)
	}
}

func TestLoadCuratedLists_Defaults(t *testing.T) {
	lists, err := LoadCuratedLists("")
	if err != nil {
		t.Fatalf("LoadCuratedLists: %v", err)
	}
	if len(lists.LotteryTickets) == 0 || len(lists.Sleepers) == 0 || len(lists.Handcuffs) == 0 {
		t.Fatalf("compiled-in lists should not be empty: %+v", lists)
	}
}

func TestLoadCuratedLists_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curated.json")
	payload := `{
		"lottery_tickets": ["Test Player"],
		"sleepers": [],
		"handcuffs": [{"starter": "Starter Back", "backup": "Backup Back"}]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write curated file: %v", err)
	}

	lists, err := LoadCuratedLists(path)
	if err != nil {
		t.Fatalf("LoadCuratedLists: %v", err)
	}
	if len(lists.LotteryTickets) != 1 || lists.LotteryTickets[0] != "Test Player" {
		t.Fatalf("unexpected lottery tickets: %v", lists.LotteryTickets)
	}
	if len(lists.Handcuffs) != 1 || lists.Handcuffs[0].Backup != "Backup Back" {
		t.Fatalf("unexpected handcuffs: %v", lists.Handcuffs)
	}
}

func TestLoadCuratedLists_MissingFile(t *testing.T) {
	if _, err := LoadCuratedLists(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing curated file")
	}
}
