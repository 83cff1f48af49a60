package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"

// CORS answers preflight requests and sets the allow headers. An origin
// list containing "*" allows any origin.
func CORS(origins, headers []string) mux.MiddlewareFunc {
	allowHeaders := strings.Join(headers, ", ")
	if allowHeaders == "" {
		allowHeaders = "Content-Type, Authorization"
	}
	allowAll := len(origins) == 0
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
