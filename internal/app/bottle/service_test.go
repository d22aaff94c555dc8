package bottle_test

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/domain"
	"github.com/bottled-app/bottled/internal/infra/sqlite"
)

func testService(t *testing.T) *bottle.Service {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return bottle.NewService(db)
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	svc := testService(t)

	b, err := svc.Create(bottle.CreateInput{
		Title:     "future",
		Message:   "see you in a week",
		DelayDays: 7,
	}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == "" {
		t.Error("bottle has no id")
	}
	if want := testNow.AddDate(0, 0, 7); !b.UnlockDate.Equal(want) {
		t.Errorf("UnlockDate = %v, want %v", b.UnlockDate, want)
	}
	if b.IsUnlocked {
		t.Error("new bottle already unlocked")
	}

	// Round-trip through storage.
	got, err := svc.Get(b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Message != "see you in a week" {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name string
		in   bottle.CreateInput
		want error
	}{
		{"empty message", bottle.CreateInput{Message: ""}, domain.ErrEmptyMessage},
		{"whitespace message", bottle.CreateInput{Message: "   \n\t"}, domain.ErrEmptyMessage},
		{"negative delay", bottle.CreateInput{Message: "x", DelayDays: -1}, domain.ErrNegativeDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.in, testNow); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreate_ZeroDelayReadableImmediately(t *testing.T) {
	svc := testService(t)

	b, err := svc.Create(bottle.CreateInput{Message: "now", DelayDays: 0}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Open(b.ID, testNow); err != nil {
		t.Errorf("open zero-delay bottle: %v", err)
	}
}

func TestOpen_LockedBeforeUnlockDate(t *testing.T) {
	svc := testService(t)

	b, err := svc.Create(bottle.CreateInput{Message: "wait", DelayDays: 7}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Open(b.ID, testNow.AddDate(0, 0, 3)); !errors.Is(err, domain.ErrBottleLocked) {
		t.Errorf("open early: %v, want ErrBottleLocked", err)
	}

	got, err := svc.Open(b.ID, testNow.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("open on due date: %v", err)
	}
	if !got.IsUnlocked {
		t.Error("opened bottle not marked unlocked")
	}

	// The flag persists.
	stored, err := svc.Get(b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.IsUnlocked {
		t.Error("unlocked flag not persisted")
	}
}

func TestOpen_NotFound(t *testing.T) {
	svc := testService(t)
	if _, err := svc.Open("missing", testNow); !errors.Is(err, domain.ErrBottleNotFound) {
		t.Errorf("err = %v, want ErrBottleNotFound", err)
	}
}

func TestUnlock_BypassesTimeGate(t *testing.T) {
	svc := testService(t)

	b, err := svc.Create(bottle.CreateInput{Message: "impatient", DelayDays: 30}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Unlock(b.ID)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !got.IsUnlocked {
		t.Error("force-unlocked bottle not marked unlocked")
	}

	// After a force unlock it opens before the unlock date.
	if _, err := svc.Open(b.ID, testNow.AddDate(0, 0, 1)); err != nil {
		t.Errorf("open after force unlock: %v", err)
	}
}

func TestRefresh(t *testing.T) {
	svc := testService(t)

	due, err := svc.Create(bottle.CreateInput{Message: "due", DelayDays: 1}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sealed, err := svc.Create(bottle.CreateInput{Message: "sealed", DelayDays: 30}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	changed, err := svc.Refresh(testNow.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}

	gotDue, _ := svc.Get(due.ID)
	gotSealed, _ := svc.Get(sealed.ID)
	if !gotDue.IsUnlocked {
		t.Error("due bottle not flipped")
	}
	if gotSealed.IsUnlocked {
		t.Error("sealed bottle flipped early")
	}

	// A second refresh is a no-op.
	changed, err = svc.Refresh(testNow.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("refresh again: %v", err)
	}
	if changed != 0 {
		t.Errorf("second refresh changed = %d, want 0", changed)
	}
}

func TestDelete(t *testing.T) {
	svc := testService(t)

	b, err := svc.Create(bottle.CreateInput{Message: "gone soon"}, testNow)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(b.ID); !errors.Is(err, domain.ErrBottleNotFound) {
		t.Errorf("get after delete: %v, want ErrBottleNotFound", err)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Attachments
// ═══════════════════════════════════════════════════════════════════════════

func TestLoadAttachments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello bottle"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	attachments, err := bottle.LoadAttachments([]string{path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("len = %d, want 1", len(attachments))
	}

	a := attachments[0]
	if a.Name != "note.txt" {
		t.Errorf("Name = %q, want note.txt", a.Name)
	}
	if !strings.HasPrefix(a.Type, "text/plain") {
		t.Errorf("Type = %q, want text/plain", a.Type)
	}
	if a.Size != int64(len("hello bottle")) {
		t.Errorf("Size = %d", a.Size)
	}

	wantPrefix := "data:" + a.Type + ";base64,"
	if !strings.HasPrefix(a.Data, wantPrefix) {
		t.Fatalf("Data = %q, want %q prefix", a.Data, wantPrefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(a.Data, wantPrefix))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if string(decoded) != "hello bottle" {
		t.Errorf("payload = %q", decoded)
	}
}

func TestLoadAttachments_MissingFile(t *testing.T) {
	_, err := bottle.LoadAttachments([]string{filepath.Join(t.TempDir(), "nope.png")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTypeIcon(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", "🖼️"},
		{"audio/mpeg", "🎵"},
		{"video/mp4", "🎬"},
		{"application/pdf", "📄"},
		{"", "📄"},
	}
	for _, tt := range tests {
		if got := bottle.TypeIcon(tt.mime); got != tt.want {
			t.Errorf("TypeIcon(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
