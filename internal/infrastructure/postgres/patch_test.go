package postgres

import "testing"

func TestUpdateBuilder_Empty(t *testing.T) {
	t.Parallel()

	b := &updateBuilder{}
	if !b.Empty() {
		t.Fatal("expected fresh builder to be empty")
	}
	b.Set("title", "x")
	if b.Empty() {
		t.Fatal("expected builder with one assignment to be non-empty")
	}
}

func TestUpdateBuilder_PlaceholderOrder(t *testing.T) {
	t.Parallel()

	b := &updateBuilder{}
	b.Set("title", "new title")
	b.Set("is_completed", true)

	if got, want := b.SetClause(), "title = $1, is_completed = $2"; got != want {
		t.Fatalf("SetClause mismatch: got %q want %q", got, want)
	}

	idPh := b.Arg("task-id")
	userPh := b.Arg("user-id")
	if idPh != "$3" || userPh != "$4" {
		t.Fatalf("WHERE placeholders wrong: got %s, %s", idPh, userPh)
	}
	if len(b.args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(b.args))
	}
	if b.args[2] != "task-id" || b.args[3] != "user-id" {
		t.Fatalf("args out of order: %v", b.args)
	}
}

func TestNullIfEmpty(t *testing.T) {
	t.Parallel()

	if v := nullIfEmpty(""); v != nil {
		t.Fatalf("expected nil for empty string, got %v", v)
	}
	if v := nullIfEmpty("x"); v != "x" {
		t.Fatalf("expected passthrough, got %v", v)
	}
}
