// Package repo persists the ordered upload list as a single blob document
package repo

import (
	"context"
	"encoding/json"

	"stockboard/internal/platform/blob"
	perr "stockboard/internal/platform/errors"
	"stockboard/internal/services/api/uploads/domain"
)

// Repo is the load/save surface of the upload list
type Repo interface {
	// Load returns the persisted list; an absent document is an empty list
	Load(ctx context.Context) ([]domain.Upload, error)
	// Save replaces the persisted list
	Save(ctx context.Context, uploads []domain.Upload) error
	// Delete removes the persisted document
	Delete(ctx context.Context) error
}

// Blob stores the list as JSON under one key
type Blob struct {
	store blob.Store
	key   string
}

// NewBlob binds a Repo to a blob store key
func NewBlob(s blob.Store, key string) *Blob {
	if s == nil {
		panic("uploads.repo requires a non nil blob.Store")
	}
	if key == "" {
		key = blob.DefaultKey
	}
	return &Blob{store: s, key: key}
}

// Key returns the blob key
func (b *Blob) Key() string { return b.key }

// Load implements Repo
func (b *Blob) Load(ctx context.Context) ([]domain.Upload, error) {
	data, err := b.store.Get(ctx, b.key)
	if blob.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.WithOp(err, "uploads.load")
	}
	var out []domain.Upload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "persisted uploads are not a valid list")
	}
	return out, nil
}

// Save implements Repo
func (b *Blob) Save(ctx context.Context, uploads []domain.Upload) error {
	if uploads == nil {
		uploads = []domain.Upload{}
	}
	data, err := json.Marshal(uploads)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode uploads")
	}
	return perr.WithOp(b.store.Put(ctx, b.key, data), "uploads.save")
}

// Delete implements Repo
func (b *Blob) Delete(ctx context.Context) error {
	return perr.WithOp(b.store.Delete(ctx, b.key), "uploads.delete")
}
