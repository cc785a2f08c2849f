package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"BACK_QUIZ_GO/models"
)

// LoginHandler lida com a autenticação de usuários. A credencial é conferida
// por igualdade exata a cada requisição; não há sessão nem token.
func LoginHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			NomeUnico models.NomeUnico `json:"nomeunico"`
			Senha     string           `json:"senha"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		// Validar os campos obrigatórios
		if req.NomeUnico == "" || req.Senha == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "nomeunico e senha são obrigatórios"})
			return
		}

		var usuario struct {
			ID        models.UsuarioID
			Nome      string
			NomeUnico models.NomeUnico
		}

		query := `
			SELECT id, nome, nomeunico
			FROM usuarios
			WHERE nomeunico = $1 AND senha = $2
			LIMIT 1
		`
		err := db.QueryRow(query, req.NomeUnico, req.Senha).Scan(&usuario.ID, &usuario.Nome, &usuario.NomeUnico)
		if errors.Is(err, sql.ErrNoRows) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Usuário não encontrado ou senha incorreta"})
			return
		}
		if err != nil {
			log.Printf("Erro no login: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Erro interno no servidor"})
			return
		}

		// O id devolvido ao cliente é o nomeunico, não a chave interna
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   usuario.NomeUnico,
			"nome": usuario.Nome,
		})
	}
}
