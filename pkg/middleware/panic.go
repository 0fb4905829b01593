package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
)

func Panic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Println("Panic recover:", string(debug.Stack()))
				writeJSONError(w, http.StatusInternalServerError, `{"success":false,"message":"Internal server error"}`)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
