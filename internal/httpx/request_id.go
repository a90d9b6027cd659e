package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom devuelve el request id del contexto (middleware.RequestID de chi)
// y si no está, el header "X-Request-Id".
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if requestID := middleware.GetReqID(request.Context()); requestID != "" {
		return requestID
	}
	return request.Header.Get(middleware.RequestIDHeader)
}
