package middlewares

import (
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP to APP_MAX_REQUESTS per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("global request limit reached")))
		}),
	)
}
