package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) *pgconn.PgError { return &pgconn.PgError{Code: code, Message: "pg says no"} }

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23502", ErrorCodeValidation},
		{"42P01", ErrorCodeUnavailable},
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"40001", ErrorCodeDB},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(fmt.Errorf("exec: %w", pgErr(c.code)))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, %v; want %v", c.code, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("non-pg error should not map")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	err := FromPostgres(pgErr("57P03"), "upsert blob")
	if !IsCode(err, ErrorCodeUnavailable) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if err := FromPostgres(stderrs.New("conn reset"), "get blob"); !IsCode(err, ErrorCodeDB) {
		t.Fatalf("foreign code = %v", CodeOf(err))
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("q: %w", context.DeadlineExceeded), false},
		{"serialization", pgErr("40001"), true},
		{"deadlock", Wrap(pgErr("40P01"), ErrorCodeDB, "tx"), true},
		{"lock", pgErr("55P03"), true},
		{"unique", pgErr("23505"), false},
		{"commit text", stderrs.New("commit unexpectedly resulted in rollback"), true},
		{"plain", stderrs.New("boom"), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("%s: IsRetryable = %v, want %v", c.name, got, c.want)
		}
	}
}
