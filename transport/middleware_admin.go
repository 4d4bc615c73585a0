package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kelasfoto/kelasfoto/constant"
	utilsContext "github.com/kelasfoto/kelasfoto/utils/context"
	"github.com/kelasfoto/kelasfoto/utils/errors"
)

// AdminMiddleware restricts a subrouter to staff accounts.
func AdminMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utilsContext.GetUserRole(r.Context())
			if !ok || role != constant.RoleStaff {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
