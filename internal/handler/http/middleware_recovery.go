package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

// withRecovery is the terminal fault boundary of the request pipeline: any
// panic escaping a handler is converted into a generic error envelope
// instead of propagating to the host runtime. Nothing is retried; the
// request is simply resolved as a failure.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if fault := recover(); fault != nil {
				log := logger.FromRequest(r)
				log.Error().
					Str("uri", r.RequestURI).
					Any("fault", fault).
					Msg("recovered from panic in request handler")

				utils.WriteJSON(w,
					models.NewErrorResponse(fmt.Sprintf("%v", fault), nil),
					http.StatusInternalServerError,
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
