package models

// UsuarioID é a chave primária interna, nunca usada como handle de login.
// NomeUnico é o handle externo, derivado do instante de criação da conta.
// As rotas de usuário recebem ora um, ora outro no segmento :id — os tipos
// distintos obrigam cada handler a declarar qual espera.
type UsuarioID string

type NomeUnico string

// Usuario representa uma conta com pontuação acumulada
type Usuario struct {
	ID          UsuarioID `json:"id" db:"id"`
	Nome        string    `json:"nome" db:"nome"`
	TotalPontos int       `json:"total_pontos" db:"total_pontos"`
	NomeUnico   NomeUnico `json:"nomeunico" db:"nomeunico"`
	Senha       string    `json:"senha" db:"senha"`
	IsAdmin     bool      `json:"is_admin" db:"is_admin"`
}
