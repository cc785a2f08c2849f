package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations garante que as tabelas do quiz existam.
// Seguro executar a cada inicialização do processo (IF NOT EXISTS).
func RunMigrations(db *sql.DB) error {
	queries := []string{
		// Tabela de perguntas do quiz
		`CREATE TABLE IF NOT EXISTS perguntas (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			alternatives TEXT[] NOT NULL,
			correct_index INTEGER NOT NULL,
			category TEXT,
			level TEXT,
			tags TEXT[],
			points INTEGER DEFAULT 10
		);`,

		// Tabela de usuários
		`CREATE TABLE IF NOT EXISTS usuarios (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			total_pontos INTEGER DEFAULT 0,
			nomeunico TEXT NOT NULL UNIQUE,
			senha TEXT NOT NULL,
			is_admin BOOLEAN DEFAULT FALSE
		);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("erro ao executar a query: %v\n%v", err, query)
		}
	}

	return nil
}
