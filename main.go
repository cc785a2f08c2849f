package main

import (
	"log"
	"net/http"

	"BACK_QUIZ_GO/config"
	"BACK_QUIZ_GO/database"
	"BACK_QUIZ_GO/routes"
)

func main() {
	// Carregar configuração
	config.LoadEnv()

	// Conectar ao banco de dados
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// O esquema precisa existir antes de aceitar qualquer requisição
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso!")

	// Configurar as rotas
	router := routes.SetupRoutes(db)

	// Iniciar o servidor
	portServerRun := config.GetPortServerStart()
	log.Println("Servidor rodando na porta :", portServerRun, "...")
	log.Fatal(http.ListenAndServe(":"+portServerRun, router))
}
