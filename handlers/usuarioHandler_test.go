package handlers_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"BACK_QUIZ_GO/models"
)

// criaUsuario cria uma conta pela API e devolve o nomeunico gerado
func criaUsuario(t *testing.T, srvURL, nome, senha string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srvURL+"/usuarios", map[string]string{
		"nome":  nome,
		"senha": senha,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /usuarios: status %d, esperado 200", resp.StatusCode)
	}

	var created map[string]string
	decodeJSON(t, resp, &created)
	if created["id"] == "" {
		t.Fatal("POST /usuarios não devolveu o nomeunico")
	}

	return created["id"]
}

func TestCreateUsuariosGeramHandlesDistintos(t *testing.T) {
	_, srv := setupTestServer(t)

	primeiro := criaUsuario(t, srv.URL, "Alice", "s1")
	// O handle vem dos milissegundos da época; garante outro milissegundo
	time.Sleep(2 * time.Millisecond)
	segundo := criaUsuario(t, srv.URL, "Bruno", "s2")

	if primeiro == segundo {
		t.Fatalf("dois usuários receberam o mesmo nomeunico %q", primeiro)
	}
}

func TestGetUsuarioPorNomeUnico(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "id-interno-1", "Alice", "handle1", "segredo", 7)

	resp := doJSON(t, http.MethodGet, srv.URL+"/usuarios/handle1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /usuarios/{nomeunico}: status %d, esperado 200", resp.StatusCode)
	}

	var u models.Usuario
	decodeJSON(t, resp, &u)
	if u.ID != "id-interno-1" || u.Nome != "Alice" || u.TotalPontos != 7 {
		t.Errorf("usuário inesperado: %+v", u)
	}
}

func TestGetUsuarioInexistenteRetorna404(t *testing.T) {
	_, srv := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/usuarios/nao-existe", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET em nomeunico inexistente: status %d, esperado 404", resp.StatusCode)
	}
}

func TestRankingOrdenadoPorPontos(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "u1", "Cinco", "h5", "x", 5)
	insertUsuario(t, db, "u2", "Cinquenta", "h50", "x", 50)
	insertUsuario(t, db, "u3", "Vinte", "h20", "x", 20)

	resp := doJSON(t, http.MethodGet, srv.URL+"/usuarios/ranking", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /usuarios/ranking: status %d, esperado 200", resp.StatusCode)
	}

	var usuarios []models.Usuario
	decodeJSON(t, resp, &usuarios)
	if len(usuarios) != 3 {
		t.Fatalf("ranking com %d usuários, esperado 3", len(usuarios))
	}

	ordem := []int{usuarios[0].TotalPontos, usuarios[1].TotalPontos, usuarios[2].TotalPontos}
	if ordem[0] != 50 || ordem[1] != 20 || ordem[2] != 5 {
		t.Errorf("ordem do ranking = %v, esperado [50 20 5]", ordem)
	}
}

func TestAddPointSomaAoTotal(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "u1", "Alice", "handle1", "x", 10)

	resp := doJSON(t, http.MethodPut, srv.URL+"/usuarios/handle1/point", map[string]int{"point": 15})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT /usuarios/{nomeunico}/point: status %d, esperado 200", resp.StatusCode)
	}

	// A resposta já traz a linha atualizada
	var body map[string]models.Usuario
	decodeJSON(t, resp, &body)
	if body["user"].TotalPontos != 25 {
		t.Errorf("resposta com total_pontos = %d, esperado 25", body["user"].TotalPontos)
	}

	// E o total persistido confere numa leitura posterior
	resp = doJSON(t, http.MethodGet, srv.URL+"/usuarios/handle1", nil)
	var u models.Usuario
	decodeJSON(t, resp, &u)
	if u.TotalPontos != 25 {
		t.Errorf("total_pontos persistido = %d, esperado 25", u.TotalPontos)
	}
}

func TestAddPointUsuarioInexistenteRetorna404(t *testing.T) {
	_, srv := setupTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/usuarios/nao-existe/point", map[string]int{"point": 5})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("PUT point em nomeunico inexistente: status %d, esperado 404", resp.StatusCode)
	}
}

func TestAddPointConcorrenteNaoPerdeAtualizacao(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "u1", "Alice", "handle1", "x", 0)

	const chamadas = 10
	var wg sync.WaitGroup
	for i := 0; i < chamadas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req, err := http.NewRequest(http.MethodPut, srv.URL+"/usuarios/handle1/point", strings.NewReader(`{"point": 5}`))
			if err != nil {
				t.Errorf("premiação concorrente: %v", err)
				return
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Errorf("premiação concorrente: %v", err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("premiação concorrente: status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	var total int
	if err := db.QueryRow(`SELECT total_pontos FROM usuarios WHERE nomeunico = 'handle1'`).Scan(&total); err != nil {
		t.Fatalf("Erro ao ler total_pontos: %v", err)
	}
	if total != chamadas*5 {
		t.Errorf("total_pontos = %d após %d premiações de 5, esperado %d", total, chamadas, chamadas*5)
	}
}

func TestSetAdminPorIDInterno(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "id-interno-1", "Alice", "handle1", "x", 0)

	// Diferente das rotas vizinhas, aqui o segmento é a chave interna
	resp := doJSON(t, http.MethodPut, srv.URL+"/usuarios/id-interno-1/admin", map[string]bool{"is_admin": true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT /usuarios/{id}/admin: status %d, esperado 200", resp.StatusCode)
	}

	var isAdmin bool
	if err := db.QueryRow(`SELECT is_admin FROM usuarios WHERE id = 'id-interno-1'`).Scan(&isAdmin); err != nil {
		t.Fatalf("Erro ao ler is_admin: %v", err)
	}
	if !isAdmin {
		t.Error("is_admin deveria estar true")
	}
}

func TestDeleteUsuarioPorIDInternoDuasVezes(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "id-interno-1", "Alice", "handle1", "x", 0)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodDelete, srv.URL+"/usuarios/id-interno-1", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("DELETE %d: status %d, esperado 200", i+1, resp.StatusCode)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM usuarios`).Scan(&count); err != nil {
		t.Fatalf("Erro ao contar usuários: %v", err)
	}
	if count != 0 {
		t.Errorf("tabela deveria estar vazia, tem %d linhas", count)
	}
}

func TestListUsuarios(t *testing.T) {
	db, srv := setupTestServer(t)
	insertUsuario(t, db, "u1", "Alice", "h1", "segredo", 3)
	insertUsuario(t, db, "u2", "Bruno", "h2", "outro", 8)

	resp := doJSON(t, http.MethodGet, srv.URL+"/usuarios", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /usuarios: status %d, esperado 200", resp.StatusCode)
	}

	var usuarios []models.Usuario
	decodeJSON(t, resp, &usuarios)
	if len(usuarios) != 2 {
		t.Fatalf("GET /usuarios devolveu %d usuários, esperado 2", len(usuarios))
	}
	// A listagem expõe a senha em texto puro, como o restante do sistema
	if usuarios[0].Senha == "" || usuarios[1].Senha == "" {
		t.Error("listagem deveria incluir o campo senha")
	}
}
