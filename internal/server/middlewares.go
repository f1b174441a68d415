package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"mime"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"

	"groupchat/internal/storage/zapadapter"
)

// jsonError writes a {"message": msg} body without going through a handler
func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, _ := json.Marshal(errorBody{Message: msg})
	_, _ = w.Write(body)
}

// enforceJSON is a middleware pre-processing each HTTP request carrying a body
// it checks application/json Content-Type header, body size and valid json body
// it also sets blank Content-Type header to application/json
func enforceJSON(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// check "Content-Type" header
			contentType := r.Header.Get("Content-Type")
			if contentType != "" {
				mt, _, err := mime.ParseMediaType(contentType)
				if err != nil {
					jsonError(w, http.StatusBadRequest, "Malformed Content-Type header")
					return
				}

				if mt != "application/json" {
					jsonError(w, http.StatusUnsupportedMediaType, "Content-Type header must be application/json")
					return
				}
			} else {
				r.Header.Set("Content-Type", "application/json")
			}

			// check if provided request body is valid JSON
			body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, limit))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					jsonError(w, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
				jsonError(w, http.StatusBadRequest, "Can not read request body")
				return
			}

			if len(body) == 0 {
				jsonError(w, http.StatusBadRequest, "No body provided")
				return
			}

			if err := fastjson.ValidateBytes(body); err != nil {
				jsonError(w, http.StatusBadRequest, "Malformed JSON")
				return
			}

			r.Body = ioutil.NopCloser(bytes.NewReader(body))

			next.ServeHTTP(w, r)
		})
	}
}

// jsonTimeout is http.TimeoutHandler answering with a JSON body.
// The Content-Type set up front survives a timeout and is overwritten by handlers that complete.
func jsonTimeout(d time.Duration, msg string) func(http.Handler) http.Handler {
	body, _ := json.Marshal(errorBody{Message: msg})
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// logRequests tags each request with an xid request id, exposes it in X-Request-ID
// and logs the request together with its outcome
func logRequests(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := xid.New().String()
			start := time.Now()

			w.Header().Set("X-Request-ID", id)
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r.WithContext(zapadapter.WithRequestID(r.Context(), id)))

			logger.Info("http request",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("uri", r.URL.RequestURI()),
				zap.String("ip", r.RemoteAddr),
				zap.Int("status", rw.status),
				zap.Int("size", rw.size),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
