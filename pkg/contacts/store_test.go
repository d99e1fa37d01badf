package contacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "contacts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List on empty db: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected 0 contacts, got %d", len(list))
	}
}

func TestAddGetDelete(t *testing.T) {
	ctx := context.Background()
	s := tempStore(t)

	c, err := s.Add(ctx, "Đorđe Petrović", "063111222")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID == "" {
		t.Fatal("Add returned empty ID")
	}

	got, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Đorđe Petrović" || got.Phone != "063111222" {
		t.Errorf("Get = %+v, want stored values", got)
	}

	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := tempStore(t)

	for _, name := range []string{"Ana", "Branko", "Cvijeta"} {
		if _, err := s.Add(ctx, name, ""); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List = %d, want 3", len(list))
	}
	for i, want := range []string{"Ana", "Branko", "Cvijeta"} {
		if list[i].Name != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, want)
		}
	}
}
