package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-gestao/internal/infra/database"
	"github.com/xavierca1/ligue-gestao/internal/infra/http/handlers"
	gestaomw "github.com/xavierca1/ligue-gestao/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-gestao/internal/infra/integration/authgate"
	"github.com/xavierca1/ligue-gestao/internal/infra/integration/googlecal"
	"github.com/xavierca1/ligue-gestao/internal/infra/mail"
	"github.com/xavierca1/ligue-gestao/internal/infra/queue"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("falha ao migrar o schema: %v", err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	consultantRepo := database.NewConsultantRepository(db)
	coldCallRepo := database.NewColdCallRepository(db)
	pipelineRepo := database.NewPipelineRepository(db)
	crmLeadRepo := database.NewCRMLeadRepository(db)
	tokenRepo := database.NewCalendarTokenRepository(db)
	checklistRepo := database.NewChecklistRepository(db)
	commissionRepo := database.NewCommissionRepository(db)
	tableAdminRepo := database.NewTableAdminRepository(db)

	// 2. Gateways e Adapters
	authGateway := authgate.NewClient(os.Getenv("AUTH_SERVICE_KEY"), os.Getenv("AUTH_ADMIN_URL"))
	calendarGateway := googlecal.NewClient(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		os.Getenv("GOOGLE_REDIRECT_URL"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort(), os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("PORTAL_URL"),
	)

	// 3. Worker (consome a fila e envia os emails de credenciais)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	provisionUC := usecase.NewProvisionConsultantUseCase(authGateway, consultantRepo, producer)
	resetUC := usecase.NewResetConsultantPasswordUseCase(authGateway, consultantRepo, producer)
	convertUC := usecase.NewConvertColdCallUseCase(
		coldCallRepo, pipelineRepo, crmLeadRepo,
		os.Getenv("PIPELINE_OWNER_ID"),
	)
	calendarUC := usecase.NewCalendarUseCase(calendarGateway, tokenRepo)

	// 5. Handlers
	consultantHandler := handlers.NewConsultantHandler(provisionUC, resetUC)
	coldCallHandler := handlers.NewColdCallHandler(convertUC)
	calendarHandler := handlers.NewCalendarHandler(calendarUC)
	icsHandler := handlers.NewICSHandler()
	dataHandler := handlers.NewDataManagerHandler(tableAdminRepo)
	checklistHandler := handlers.NewChecklistHandler(checklistRepo, consultantRepo)
	commissionHandler := handlers.NewCommissionHandler(commissionRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(gestaomw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/consultants/provision", consultantHandler.HandleProvision)
	r.Post("/consultants/reset-password", consultantHandler.HandleResetPassword)
	r.Post("/cold-calls/convert", coldCallHandler.HandleConvert)

	r.Get("/calendar/auth", calendarHandler.HandleAuthStart)
	r.Get("/calendar/callback", calendarHandler.HandleAuthCallback)
	r.Get("/calendar/events", calendarHandler.HandleListEvents)
	r.Post("/ics/fetch", icsHandler.HandleFetch)

	r.Get("/commissions/summary/{consultantId}", commissionHandler.HandleGetSummary)

	// Endpoints administrativos atrás do service token
	r.Group(func(r chi.Router) {
		r.Use(gestaomw.ServiceAuth(os.Getenv("SERVICE_TOKEN")))
		r.Post("/data", dataHandler.Handle)
		r.Post("/checklist/items", checklistHandler.Handle)
	})

	port := ":8080"
	log.Printf("🔥 Server Ligue Gestão rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mailPort() int {
	if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
		return p
	}
	return 587
}
