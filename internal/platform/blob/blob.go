// Package blob stores whole documents under string keys on a pluggable backend
package blob

import (
	"context"
	"strings"

	perr "stockboard/internal/platform/errors"
)

// Driver names a backend
type Driver string

// Supported drivers
const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "fs"
	DriverSQLite     Driver = "sqlite"
	DriverPostgres   Driver = "pg"
	DriverS3         Driver = "s3"
)

// Drivers lists every driver name accepted by Open
var Drivers = []string{
	string(DriverMemory),
	string(DriverFilesystem),
	string(DriverSQLite),
	string(DriverPostgres),
	string(DriverS3),
}

// ErrNotFound is returned by Get for a missing key
var ErrNotFound = perr.New(perr.ErrorCodeNotFound, "blob not found")

// Store is a whole-document key value store
// Put overwrites, Delete of a missing key is not an error
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Driver() Driver
}

// IsNotFound reports whether err means the key does not exist
func IsNotFound(err error) bool { return perr.Is(err, ErrNotFound) }

// checkKey rejects keys every backend would choke on
func checkKey(op, key string) error {
	if strings.TrimSpace(key) == "" {
		return perr.WithOp(perr.InvalidArgf("empty blob key"), op)
	}
	return nil
}
