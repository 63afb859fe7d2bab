package blob

import (
	"context"
	"path/filepath"
	"testing"

	perr "stockboard/internal/platform/errors"
)

// exerciseStore runs the contract every driver honors
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	const key = "stockboard/uploads.json"

	if _, err := s.Get(ctx, key); !IsNotFound(err) {
		t.Fatalf("Get missing = %v, want not found", err)
	}
	if err := s.Put(ctx, key, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, key, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil || string(got) != `{"v":2}` {
		t.Fatalf("Get = %q %v", got, err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete missing should be nil, got %v", err)
	}
	if _, err := s.Get(ctx, key); !IsNotFound(err) {
		t.Fatalf("Get after delete = %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if _, err := s.Get(ctx, "  "); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("blank key err = %v", err)
	}
}

func TestMemory_Contract(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)
	if m.Driver() != DriverMemory {
		t.Fatalf("Driver = %s", m.Driver())
	}
}

func TestMemory_CopiesBytes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	in := []byte("abc")
	_ = m.Put(ctx, "k", in)
	in[0] = 'x'
	out, _ := m.Get(ctx, "k")
	out[1] = 'y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored bytes aliased caller slices: %q", again)
	}
}

func TestFilesystem_Contract(t *testing.T) {
	s, err := NewFilesystem(filepath.Join(t.TempDir(), "blobs"))
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	exerciseStore(t, s)
}

func TestSanitizeKey(t *testing.T) {
	cases := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"stockboard/uploads.json", "stockboard/uploads.json", false},
		{"a//b/./c", "a/b/c", false},
		{"", "", true},
		{"../etc/passwd", "", true},
		{"a/../../b", "", true},
		{"/abs", "", true},
	}
	for _, tc := range cases {
		got, err := sanitizeKey(tc.key)
		if (err != nil) != tc.wantErr {
			t.Fatalf("sanitizeKey(%q) err = %v", tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestFilesystem_PingFailsWhenRootGone(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")
	s, err := NewFilesystem(root)
	if err != nil {
		t.Fatal(err)
	}
	s.root = filepath.Join(root, "missing")
	if err := s.Ping(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Ping err = %v", err)
	}
}

func TestSQLite_Contract(t *testing.T) {
	s, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "db", "stockboard.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockboard.db")
	ctx := context.Background()

	s, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "k", []byte("persisted")); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	s2, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s2.Close() })
	got, err := s2.Get(ctx, "k")
	if err != nil || string(got) != "persisted" {
		t.Fatalf("Get after reopen = %q %v", got, err)
	}
}

func TestPostgres_NeedsRunner(t *testing.T) {
	if _, err := NewPostgres(context.Background(), nil); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v", err)
	}
}
