package routes

import (
	"database/sql"
	"net/http"

	"BACK_QUIZ_GO/handlers"
	"BACK_QUIZ_GO/middleware"
	"github.com/gorilla/mux"
)

// SetupRoutes monta o roteador e a cadeia de middlewares. O CORS envolve o
// roteador por fora para responder o pré-flight OPTIONS mesmo de rotas que
// só declaram GET/POST/PUT/DELETE.
func SetupRoutes(db *sql.DB) http.Handler {
	router := mux.NewRouter()

	// Health Check
	router.HandleFunc("/health", handlers.HealthCheckHandler()).Methods("GET")

	// Rotas de perguntas
	router.HandleFunc("/perguntas", handlers.ListPerguntasHandler(db)).Methods("GET")
	router.HandleFunc("/perguntas", handlers.CreatePerguntaHandler(db)).Methods("POST")
	router.HandleFunc("/perguntas/{id}", handlers.UpdatePerguntaHandler(db)).Methods("PUT")
	router.HandleFunc("/perguntas/{id}", handlers.DeletePerguntaHandler(db)).Methods("DELETE")

	// Rotas de usuário. O segmento {id} é o nomeunico nas rotas de busca e
	// de pontos, e a chave interna nas rotas de admin e remoção.
	router.HandleFunc("/usuarios", handlers.ListUsuariosHandler(db)).Methods("GET")
	router.HandleFunc("/usuarios/ranking", handlers.RankingUsuariosHandler(db)).Methods("GET")
	router.HandleFunc("/usuarios", handlers.CreateUsuarioHandler(db)).Methods("POST")
	router.HandleFunc("/usuarios/{id}", handlers.GetUsuarioHandler(db)).Methods("GET")
	router.HandleFunc("/usuarios/{id}/point", handlers.AddPointUsuarioHandler(db)).Methods("PUT")
	router.HandleFunc("/usuarios/{id}/admin", handlers.SetAdminUsuarioHandler(db)).Methods("PUT")
	router.HandleFunc("/usuarios/{id}", handlers.DeleteUsuarioHandler(db)).Methods("DELETE")

	// Login
	router.HandleFunc("/login", handlers.LoginHandler(db)).Methods("POST")

	return middleware.CorsMiddleware(middleware.LoggingMiddleware(router))
}
