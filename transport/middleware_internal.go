package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	utilsContext "github.com/muhammadheryan/wms-fulfillment/utils/context"
	"github.com/muhammadheryan/wms-fulfillment/utils/errors"
)

const internalOperator = "system:cutoff"

// InternalMiddleware checks for static API key in header
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			ctx := utilsContext.WithOperatorID(r.Context(), internalOperator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
