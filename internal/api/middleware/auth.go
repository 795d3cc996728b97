package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
)

// tenantHeader is set by the gateway after authentication; this service
// trusts it for tenant scoping only.
const tenantHeader = "X-Tenant-ID"

type tenantKey struct{}

// Auth requires a positive integer X-Tenant-ID header and stores it in the
// request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(tenantHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidRequest, "missing X-Tenant-ID header")
			return
		}

		tenantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tenantID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidRequest, "invalid X-Tenant-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), tenantKey{}, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantID extracts the tenant set by Auth. The second return is false on
// routes that skipped the middleware.
func TenantID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(tenantKey{}).(int64)
	return id, ok
}
