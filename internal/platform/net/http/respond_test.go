package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "stockboard/internal/platform/errors"
	pnet "stockboard/internal/platform/net"
	phttp "stockboard/internal/platform/net/http"
)

func withReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequestID(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%q)", err, rec.Body.String())
	}
	return env
}

func TestHandle_Success(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{
			Status: http.StatusCreated,
			Body:   map[string]string{"tipo": "gado"},
			Header: http.Header{"X-Extra": {"1"}},
		}
	})
	rec := httptest.NewRecorder()
	h(rec, withReqID("POST", "/x", "rid-1"))

	if rec.Code != http.StatusCreated || rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("code=%d headers=%v", rec.Code, rec.Header())
	}
	env := decode(t, rec)
	if env.StatusCode != 201 || env.RequestID != "rid-1" || env.Data == nil || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_ZeroStatusIsOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Body: 1} })(rec, withReqID("GET", "/", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestHandle_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(rec, withReqID("DELETE", "/", "r"))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("code=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   perr.ErrorCode
	}{
		{perr.NotFoundf("upload %q not found", "x"), http.StatusNotFound, perr.ErrorCodeNotFound},
		{perr.Conflictf("tipo taken"), http.StatusConflict, perr.ErrorCodeConflict},
		{perr.Validationf("bad csv"), http.StatusBadRequest, perr.ErrorCodeValidation},
		{errors.New("plain"), http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(c.err) })(rec, withReqID("GET", "/", "rid"))
		if rec.Code != c.status {
			t.Fatalf("%v: code = %d, want %d", c.err, rec.Code, c.status)
		}
		env := decode(t, rec)
		if env.Code != c.code || env.Error == "" || env.RequestID != "rid" {
			t.Fatalf("%v: envelope = %+v", c.err, env)
		}
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, withReqID("GET", "/", "r9"), perr.InvalidArgf("unknown unit"))
	if rec.Code != http.StatusUnprocessableEntity || rec.Header().Get("X-Request-ID") != "r9" {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestOKCreated(t *testing.T) {
	if r := phttp.OK(1); r.Status != 200 {
		t.Fatalf("OK status = %d", r.Status)
	}
	if r := phttp.Created(1); r.Status != 201 {
		t.Fatalf("Created status = %d", r.Status)
	}
}
