package health

import (
	"context"
	"errors"
	"testing"

	"github.com/bottled-app/bottled/internal/infra/sqlite"
)

func TestChecker_AllHealthy(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	c := NewChecker(db, dir)
	c.runAll(context.Background())

	if !c.IsHealthy() {
		t.Errorf("IsHealthy = false: %+v", c.Statuses())
	}
	statuses := c.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("statuses = %d, want 3", len(statuses))
	}
	names := map[string]bool{}
	for _, s := range statuses {
		names[s.Name] = s.Healthy
		if s.CheckedAt.IsZero() {
			t.Errorf("%s: CheckedAt not set", s.Name)
		}
	}
	for _, want := range []string{"sqlite", "data_dir", "gamification_records"} {
		if !names[want] {
			t.Errorf("check %q missing or unhealthy", want)
		}
	}
}

func TestChecker_FailingCheck(t *testing.T) {
	c := &Checker{
		checks: []Check{
			{Name: "ok", CheckFn: func(ctx context.Context) error { return nil }},
			{Name: "broken", CheckFn: func(ctx context.Context) error { return errors.New("boom") }},
		},
	}
	c.runAll(context.Background())

	if c.IsHealthy() {
		t.Error("IsHealthy = true with a failing check")
	}
	for _, s := range c.Statuses() {
		if s.Name == "broken" && s.Error != "boom" {
			t.Errorf("Error = %q, want boom", s.Error)
		}
	}
}

func TestChecker_EmptyStatusesIsHealthy(t *testing.T) {
	c := &Checker{}
	if !c.IsHealthy() {
		t.Error("checker with no results yet should report healthy")
	}
}

func TestCheckWritable(t *testing.T) {
	if err := checkWritable(t.TempDir()); err != nil {
		t.Errorf("writable dir: %v", err)
	}
	if err := checkWritable("/definitely/not/a/real/dir"); err == nil {
		t.Error("missing dir: want error")
	}
}
