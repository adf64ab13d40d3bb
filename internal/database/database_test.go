package database

import (
	"net/url"
	"testing"

	"sarita-industries/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "sarita",
		Password: "p@ss word",
		Database: "catalog",
		Schema:   "public",
	})

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("DSN is not a valid URL: %v", err)
	}
	if u.Host != "db.internal:5433" {
		t.Errorf("unexpected host %q", u.Host)
	}
	if pwd, _ := u.User.Password(); pwd != "p@ss word" {
		t.Errorf("password was not preserved, got %q", pwd)
	}
	if u.Path != "/catalog" {
		t.Errorf("unexpected database path %q", u.Path)
	}
	if u.Query().Get("search_path") != "public" {
		t.Errorf("expected search_path=public, got %q", u.Query().Get("search_path"))
	}
}
