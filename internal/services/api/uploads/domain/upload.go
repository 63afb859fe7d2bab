// Package domain holds the upload model, its error taxonomy and the DTOs shared by
// the uploads service and its transports
package domain

import (
	"strings"
	"time"

	"stockboard/internal/core/canon"
	perr "stockboard/internal/platform/errors"
)

// Upload is one ingested file's worth of canonical rows
// Rows are never edited in place, a batch is replaced wholesale
type Upload struct {
	ID         string      `json:"id" example:"6f1c9a52-3d1e-4b8b-9a0e-2f3c1d7e8a41"`
	Tipo       string      `json:"tipo" example:"gado"`
	FileName   string      `json:"fileName" example:"rebanho-2025.csv"`
	UploadedAt time.Time   `json:"uploadedAt" example:"2025-09-03T13:00:00Z"`
	Rows       []canon.Row `json:"rows"`
}

// Info is the list view of an upload
type Info struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
	RowCount   int       `json:"rowCount" example:"42"`
}

// Info returns the list view of u
func (u Upload) Info() Info {
	return Info{ID: u.ID, Tipo: u.Tipo, FileName: u.FileName, UploadedAt: u.UploadedAt, RowCount: len(u.Rows)}
}

// Matches reports whether ref names u by id or by tipo, ignoring case
func (u Upload) Matches(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref != "" && (strings.EqualFold(u.ID, ref) || strings.EqualFold(u.Tipo, ref))
}

// Sentinels for the ingestion failures; wrapped errors carry the user message
var (
	ErrUnparseableFile = perr.New(perr.ErrorCodeValidation, "unparseable file")
	ErrEmptyBatch      = perr.New(perr.ErrorCodeInvalidArgument, "empty or unrecognized batch")
	ErrDuplicateType   = perr.New(perr.ErrorCodeConflict, "duplicate type")
)

// Unparseable wraps a CSV reader failure
func Unparseable(cause error) error {
	return perr.Wrapf(ErrUnparseableFile, perr.ErrorCodeValidation, "could not read the file as CSV: %v", cause)
}

// Empty reports a batch with no usable rows
func Empty(fileName string) error {
	name := fileName
	if name == "" {
		name = "the file"
	}
	return perr.Wrapf(ErrEmptyBatch, perr.ErrorCodeInvalidArgument,
		"no product or category rows were recognized in %s", name)
}

// Duplicate reports a batch whose tipo already has an upload
func Duplicate(tipo string) error {
	return perr.Wrapf(ErrDuplicateType, perr.ErrorCodeConflict,
		"an upload of type %q already exists; remove the last upload or clear all uploads before adding it again", tipo)
}
