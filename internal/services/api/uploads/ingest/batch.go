package ingest

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockboard/internal/core/canon"
	"stockboard/internal/core/normalize"
	"stockboard/internal/services/api/uploads/domain"
)

// FallbackTipo labels a batch with no explicit tipo and no hint in its file name
const FallbackTipo = "estoque"

// subtotal rows exported by spreadsheets, e.g. "Total", "TOTAIS:"
var totalRow = regexp.MustCompile(`(?i)^\s*(total|totais)\s*:?\s*$`)

// Ingestor builds uploads from raw records
type Ingestor struct {
	Now   func() time.Time
	NewID func() string
}

// New returns an Ingestor on the wall clock with random ids
func New() Ingestor {
	return Ingestor{Now: time.Now, NewID: uuid.NewString}
}

// Batch normalizes records into a new Upload or rejects the file
//
// Rows with neither produto nor categoria are dropped, then subtotal rows. The batch
// tipo is the first explicit row tipo, else a hint from the file name. Rows without
// their own tipo take the batch tipo. existing is only read
//
// canon.Inspect defaults each row to "gado", but that default never labels the batch;
// a file without any tipo column is named by FileTipo instead
func (in Ingestor) Batch(records []canon.Record, fileName string, existing []domain.Upload) (domain.Upload, error) {
	rows := make([]canon.Row, 0, len(records))
	explicit := make([]bool, 0, len(records))
	tipo := ""

	for _, rec := range records {
		row, pv := canon.Inspect(rec)
		if !row.Identified() || IsTotal(row) {
			continue
		}
		if tipo == "" && pv.TipoExplicit {
			tipo = row.Tipo
		}
		rows = append(rows, row)
		explicit = append(explicit, pv.TipoExplicit)
	}
	if len(rows) == 0 {
		return domain.Upload{}, domain.Empty(fileName)
	}

	if tipo == "" {
		tipo = FileTipo(fileName)
	}
	for _, u := range existing {
		if strings.EqualFold(strings.TrimSpace(u.Tipo), tipo) {
			return domain.Upload{}, domain.Duplicate(tipo)
		}
	}

	for i := range rows {
		if !explicit[i] {
			rows[i].Tipo = tipo
		}
		if strings.EqualFold(strings.TrimSpace(rows[i].Unit), canon.UnitHeadPlural) {
			rows[i].Unit = canon.UnitHead
		}
	}

	now, newID := in.Now, in.NewID
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return domain.Upload{
		ID:         newID(),
		Tipo:       tipo,
		FileName:   fileName,
		UploadedAt: now().UTC(),
		Rows:       rows,
	}, nil
}

// IsTotal reports whether the identifying field of row is a subtotal label
func IsTotal(row canon.Row) bool {
	label := row.Produto
	if label == "" {
		label = row.Categoria
	}
	return totalRow.MatchString(label)
}

// FileTipo guesses a tipo from a file name
func FileTipo(fileName string) string {
	if slices.Contains(normalize.Tokens(fileName), canon.DefaultTipo) {
		return canon.DefaultTipo
	}
	return FallbackTipo
}
