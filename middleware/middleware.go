package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CorsMiddleware libera o acesso cross-origin para qualquer origem
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Responde diretamente as requisições OPTIONS (pré-flight)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		// Continua a cadeia de middlewares
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware registra cada requisição com um id próprio,
// para correlacionar logs de requisições concorrentes
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%v)", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}
