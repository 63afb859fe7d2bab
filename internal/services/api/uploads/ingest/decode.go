// Package ingest turns an uploaded CSV file into a validated batch of canonical rows
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"stockboard/internal/core/canon"
	"stockboard/internal/services/api/uploads/domain"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Decode reads a header-first, comma separated file into raw records
//
// Each record keeps the source column order. Cells beyond the header are ignored and
// short rows simply lack the trailing columns. Input that is not valid UTF-8 is read
// as Windows-1252, the usual encoding of spreadsheet exports
func Decode(r io.Reader, fileName string) ([]canon.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.Unparseable(err)
	}
	data = text(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.Empty(fileName)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.Empty(fileName)
	}
	if err != nil {
		return nil, domain.Unparseable(err)
	}

	var out []canon.Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.Unparseable(err)
		}
		n := min(len(fields), len(header))
		rec := make(canon.Record, 0, n)
		for i := 0; i < n; i++ {
			rec = append(rec, canon.Cell{Header: header[i], Value: fields[i]})
		}
		out = append(out, rec)
	}
	return out, nil
}

// text strips a UTF-8 BOM and transcodes legacy single-byte input
func text(data []byte) []byte {
	data = bytes.TrimPrefix(data, bom)
	if utf8.Valid(data) {
		return data
	}
	if dec, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return dec
	}
	return bytes.ToValidUTF8(data, nil)
}
