package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"BACK_QUIZ_GO/models"
	"BACK_QUIZ_GO/uniqueid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

// scanUsuarios lê todas as linhas do cursor para a lista de usuários
func scanUsuarios(rows *sql.Rows) ([]models.Usuario, error) {
	usuarios := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.TotalPontos, &u.NomeUnico, &u.Senha, &u.IsAdmin); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// ListUsuariosHandler lida com a listagem de todos os usuários
func ListUsuariosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`SELECT id, nome, total_pontos, nomeunico, senha, is_admin FROM usuarios`)
		if err != nil {
			http.Error(w, "Erro ao buscar usuários: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		usuarios, err := scanUsuarios(rows)
		if err != nil {
			http.Error(w, "Erro ao ler usuários: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(usuarios)
	}
}

// RankingUsuariosHandler lida com o ranking: todos os usuários ordenados
// em memória por pontuação decrescente
func RankingUsuariosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`SELECT id, nome, total_pontos, nomeunico, senha, is_admin FROM usuarios`)
		if err != nil {
			http.Error(w, "Erro ao buscar usuários: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		usuarios, err := scanUsuarios(rows)
		if err != nil {
			http.Error(w, "Erro ao ler usuários: "+err.Error(), http.StatusInternalServerError)
			return
		}

		sort.SliceStable(usuarios, func(i, j int) bool {
			return usuarios[i].TotalPontos > usuarios[j].TotalPontos
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(usuarios)
	}
}

// CreateUsuarioHandler lida com a criação de uma nova conta. O handle de
// login (nomeunico) é derivado do instante de criação; contas criadas no
// mesmo milissegundo violam a restrição UNIQUE e a criação falha.
func CreateUsuarioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Nome  string `json:"nome"`
			Senha string `json:"senha"`
		}

		// Decodificar o corpo da requisição JSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		id := uniqueid.New()
		nomeunico := uniqueid.NomeUnico()

		query := `
			INSERT INTO usuarios (id, nome, senha, total_pontos, nomeunico, is_admin)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := db.Exec(query, id, req.Nome, req.Senha, 0, nomeunico, false)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				http.Error(w, "Já existe uma conta criada neste instante, tente novamente", http.StatusConflict)
				return
			}
			http.Error(w, "Erro ao criar o usuário: "+err.Error(), http.StatusInternalServerError)
			return
		}

		// O cliente guarda apenas o nomeunico, nunca o id interno
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": nomeunico})
	}
}

// GetUsuarioHandler lida com a busca de um usuário. O segmento :id aqui é o
// nomeunico, não a chave primária interna.
func GetUsuarioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nomeunico := models.NomeUnico(mux.Vars(r)["id"])

		var u models.Usuario
		err := db.QueryRow(
			`SELECT id, nome, total_pontos, nomeunico, senha, is_admin FROM usuarios WHERE nomeunico = $1`,
			nomeunico,
		).Scan(&u.ID, &u.Nome, &u.TotalPontos, &u.NomeUnico, &u.Senha, &u.IsAdmin)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Usuário não encontrado", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Erro ao buscar usuário: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(u)
	}
}

// AddPointUsuarioHandler lida com a soma de pontos ao total do usuário. O
// segmento :id é o nomeunico. O incremento é feito em uma única instrução
// atômica, então duas premiações concorrentes nunca perdem atualização, e a
// resposta traz a linha já atualizada.
func AddPointUsuarioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nomeunico := models.NomeUnico(mux.Vars(r)["id"])

		var req struct {
			Point int `json:"point"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		var u models.Usuario
		err := db.QueryRow(
			`UPDATE usuarios SET total_pontos = total_pontos + $1 WHERE nomeunico = $2
			 RETURNING id, nome, total_pontos, nomeunico, senha, is_admin`,
			req.Point, nomeunico,
		).Scan(&u.ID, &u.Nome, &u.TotalPontos, &u.NomeUnico, &u.Senha, &u.IsAdmin)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Usuário não encontrado", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Erro ao atualizar pontos: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]models.Usuario{"user": u})
	}
}

// SetAdminUsuarioHandler lida com a troca do flag de administrador. Aqui o
// segmento :id é a chave primária interna, diferente das rotas vizinhas.
// Não há verificação de existência nem de autorização.
func SetAdminUsuarioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := models.UsuarioID(mux.Vars(r)["id"])

		var req struct {
			IsAdmin bool `json:"is_admin"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		if _, err := db.Exec(`UPDATE usuarios SET is_admin = $1 WHERE id = $2`, req.IsAdmin, id); err != nil {
			http.Error(w, "Erro ao atualizar usuário: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]models.UsuarioID{"id": id})
	}
}

// DeleteUsuarioHandler lida com a remoção de um usuário pela chave primária
// interna. Remover um id inexistente é um no-op e responde 200.
func DeleteUsuarioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := models.UsuarioID(mux.Vars(r)["id"])

		if _, err := db.Exec(`DELETE FROM usuarios WHERE id = $1`, id); err != nil {
			http.Error(w, "Erro ao remover o usuário: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]models.UsuarioID{"id": id})
	}
}
