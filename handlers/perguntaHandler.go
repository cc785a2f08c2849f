package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"BACK_QUIZ_GO/models"
	"BACK_QUIZ_GO/uniqueid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

// perguntaRequest é o corpo aceito na criação e na atualização de perguntas
type perguntaRequest struct {
	Text         string   `json:"text"`
	Alternatives []string `json:"alternatives"`
	CorrectIndex int      `json:"correct_index"`
	Category     string   `json:"category"`
	Level        string   `json:"level"`
	Tags         []string `json:"tags"`
	Points       int      `json:"points"`
}

// pointsOrDefault aplica o valor padrão de 10 pontos quando o campo vem
// ausente ou zerado
func pointsOrDefault(points int) int {
	if points == 0 {
		return 10
	}
	return points
}

// ListPerguntasHandler lida com a listagem de todas as perguntas
func ListPerguntasHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`SELECT id, text, alternatives, correct_index, category, level, tags, points FROM perguntas`)
		if err != nil {
			http.Error(w, "Erro ao buscar perguntas: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		perguntas := []models.Pergunta{}
		for rows.Next() {
			var p models.Pergunta
			var category, level sql.NullString

			err := rows.Scan(&p.ID, &p.Text, pq.Array(&p.Alternatives), &p.CorrectIndex, &category, &level, pq.Array(&p.Tags), &p.Points)
			if err != nil {
				http.Error(w, "Erro ao ler pergunta: "+err.Error(), http.StatusInternalServerError)
				return
			}
			p.Category = category.String
			p.Level = level.String

			perguntas = append(perguntas, p)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, "Erro ao ler perguntas: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(perguntas)
	}
}

// CreatePerguntaHandler lida com a criação de uma nova pergunta
func CreatePerguntaHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req perguntaRequest

		// Decodificar o corpo da requisição JSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		id := uniqueid.New()

		query := `
			INSERT INTO perguntas (id, text, alternatives, correct_index, category, level, tags, points)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err := db.Exec(query, id, req.Text, pq.Array(req.Alternatives), req.CorrectIndex, req.Category, req.Level, pq.Array(req.Tags), pointsOrDefault(req.Points))
		if err != nil {
			http.Error(w, "Erro ao criar a pergunta: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": id})
	}
}

// UpdatePerguntaHandler lida com a substituição completa de uma pergunta.
// Não há verificação de existência: atualizar um id inexistente afeta zero
// linhas e ainda responde 200.
func UpdatePerguntaHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req perguntaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		query := `
			UPDATE perguntas
			SET text = $1, alternatives = $2, correct_index = $3, category = $4, level = $5, tags = $6, points = $7
			WHERE id = $8
		`
		_, err := db.Exec(query, req.Text, pq.Array(req.Alternatives), req.CorrectIndex, req.Category, req.Level, pq.Array(req.Tags), pointsOrDefault(req.Points), id)
		if err != nil {
			http.Error(w, "Erro ao atualizar a pergunta: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": id})
	}
}

// DeletePerguntaHandler lida com a remoção de uma pergunta pelo id.
// Remover um id inexistente é um no-op e responde 200.
func DeletePerguntaHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if _, err := db.Exec(`DELETE FROM perguntas WHERE id = $1`, id); err != nil {
			http.Error(w, "Erro ao remover a pergunta: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": id})
	}
}
