package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "stockboard/internal/platform/errors"
	"stockboard/internal/platform/logger"
	pnet "stockboard/internal/platform/net"
)

// RecoverJSON turns a panic into the standard 500 envelope and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("internal error"), reqID)
			pnet.Write(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
