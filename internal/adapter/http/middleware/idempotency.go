package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gymops/cashcut/internal/usecase"
)

// IdempotencyKeyHeader marks a mutating request as safe to replay.
const IdempotencyKeyHeader = "Idempotency-Key"

const (
	idempotencyTTL     = 24 * time.Hour
	processingSentinel = "processing"
	replayHeader       = "X-Idempotency-Replay"
)

// IdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key instead of creating a second cut.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
}

func NewIdempotencyMiddleware(store usecase.IdempotencyStore) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store}
}

// Wrap applies idempotency to POST and PUT requests carrying a key.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		exists, cached, err := m.store.CheckAndSet(r.Context(), key, nil, idempotencyTTL)
		if err != nil {
			// Fail closed. Running the handler anyway could double-create.
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists && cached != nil && string(cached) != processingSentinel {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(replayHeader, "true")
			_, _ = w.Write(cached)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// Only successful responses are worth replaying.
		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			_ = m.store.Update(r.Context(), key, recorder.body.Bytes(), idempotencyTTL)
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter

	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
