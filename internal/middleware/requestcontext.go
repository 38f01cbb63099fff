package middleware

import (
	"net/http"

	"github.com/NizCom/JaMoveo-backend/internal/logging"
)

// RequestContextMiddleware adds request attributes to context early in the middleware chain.
func RequestContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attrs := &logging.RequestAttrs{
			Method: r.Method,
			Path:   r.URL.Path,
			IP:     logging.ExtractClientIP(r),
		}
		ctx := logging.WithRequestAttrs(r.Context(), attrs)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UpdateRequestContextMiddleware enriches the context with the authenticated
// username after AuthMiddleware runs.
func UpdateRequestContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims != nil {
			attrs := logging.GetRequestAttrs(r.Context())
			if attrs == nil {
				attrs = &logging.RequestAttrs{}
			}
			updated := *attrs
			updated.Username = claims.Username
			r = r.WithContext(logging.WithRequestAttrs(r.Context(), &updated))
		}
		next.ServeHTTP(w, r)
	})
}
