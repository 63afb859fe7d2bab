package repo

import (
	"context"
	"testing"
	"time"

	"stockboard/internal/core/canon"
	"stockboard/internal/platform/blob"
	perr "stockboard/internal/platform/errors"
	kit "stockboard/internal/platform/testkit"
	"stockboard/internal/services/api/uploads/domain"
)

func TestBlob_LoadAbsentIsEmpty(t *testing.T) {
	r := NewBlob(blob.NewMemory(), "")
	if r.Key() != blob.DefaultKey {
		t.Fatalf("key = %q", r.Key())
	}
	got, err := r.Load(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("Load = %v, %v", got, err)
	}
}

func TestBlob_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	mem := blob.NewMemory()
	r := NewBlob(mem, "k")

	at := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	in := []domain.Upload{{
		ID: "a", Tipo: "gado", FileName: "g.csv", UploadedAt: at,
		Rows: []canon.Row{{Tipo: "gado", Produto: "Boi", Qty: 3, Unit: "cabeça"}},
	}}
	if err := r.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, _ := mem.Get(ctx, "k")
	kit.MustContain(t, string(raw), `"uploadedAt":"2025-09-03T13:00:00Z"`)
	kit.MustContain(t, string(raw), `"unidade_de_medida":"cabeça"`)

	got, err := r.Load(ctx)
	if err != nil || len(got) != 1 || got[0].Rows[0] != in[0].Rows[0] || !got[0].UploadedAt.Equal(at) {
		t.Fatalf("Load = %+v, %v", got, err)
	}

	if err := r.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := mem.Get(ctx, "k"); !blob.IsNotFound(err) {
		t.Fatalf("blob still present: %v", err)
	}
}

func TestBlob_SaveNilWritesEmptyList(t *testing.T) {
	ctx := context.Background()
	mem := blob.NewMemory()
	if err := NewBlob(mem, "k").Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, _ := mem.Get(ctx, "k")
	if string(raw) != "[]" {
		t.Fatalf("raw = %q", raw)
	}
}

func TestBlob_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	mem := blob.NewMemory()
	_ = mem.Put(ctx, "k", []byte(`{"not":"a list"`))

	_, err := NewBlob(mem, "k").Load(ctx)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("err = %v", err)
	}
}

func TestNewBlob_RequiresStore(t *testing.T) {
	kit.MustPanic(t, func() { NewBlob(nil, "k") })
}
