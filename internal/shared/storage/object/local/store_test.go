package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Yoshida28/sekkot/internal/shared/storage/object"
)

func TestPutOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")

	body := []byte("hello world")
	err := store.Put(context.Background(), "uploads/a.txt", bytes.NewReader(body), int64(len(body)), object.PutOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rc, err := store.Open(context.Background(), "uploads/a.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("expected %q, got %q", body, got)
	}
}

func TestPutNoOverwriteRejectsExistingKey(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")

	opts := object.PutOptions{NoOverwrite: true}
	if err := store.Put(context.Background(), "uploads/x.pdf", bytes.NewReader([]byte("one")), 3, opts); err != nil {
		t.Fatalf("first put: %v", err)
	}
	err := store.Put(context.Background(), "uploads/x.pdf", bytes.NewReader([]byte("two")), 3, opts)
	if !errors.Is(err, object.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}
}

func TestPutRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")
	err := store.Put(context.Background(), "../escape.txt", bytes.NewReader(nil), 0, object.PutOptions{})
	if err == nil {
		t.Fatalf("expected error for traversal key")
	}
}

func TestPublicURL(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files/")
	got := store.PublicURL("uploads/x.pdf")
	want := "http://localhost:8080/files/uploads/x.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
