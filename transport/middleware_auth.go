package transport

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	utilsContext "github.com/muhammadheryan/wms-fulfillment/utils/context"
	"github.com/muhammadheryan/wms-fulfillment/utils/errors"
)

// AuthMiddleware verifies the operator's bearer token and puts its subject in the
// request context. Tokens are issued by the auth service; only HS256 is accepted.
func AuthMiddleware(secret string) mux.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), &claims, keyFunc); err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if claims.Subject == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithOperatorID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
