package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"school-system/internal/admission"
	"school-system/internal/announcement"
	"school-system/internal/auth"
	"school-system/internal/exam"
	"school-system/internal/interview"
	"school-system/internal/models"
	"school-system/pkg/cache"
	"school-system/pkg/database"
	"school-system/pkg/websocket"

	"github.com/gorilla/mux"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Exam{},
		&models.Section{},
		&models.Question{},
		&models.Answer{},
		&models.Submission{},
		&models.SubmissionAnswer{},
		&models.Applicant{},
		&models.Announcement{},
		&models.InterviewSlot{},
		&models.InterviewBooking{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(os.Getenv("REDIS_ADDR"))

	// Initialize WebSocket hub for dashboard events
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize repositories
	authRepo := auth.NewRepository(db)
	examRepo := exam.NewRepository(db)
	admissionRepo := admission.NewRepository(db)
	announcementRepo := announcement.NewRepository(db)
	interviewRepo := interview.NewRepository(db)

	// Initialize services
	jwtSecret := os.Getenv("JWT_SECRET")
	storageBase := os.Getenv("STORAGE_BASE_URL")
	authService := auth.NewService(authRepo, jwtSecret)
	examService := exam.NewService(examRepo, redisCache, wsHub, storageBase)
	admissionService := admission.NewService(admissionRepo)
	announcementService := announcement.NewService(announcementRepo, redisCache, wsHub)
	interviewService := interview.NewService(interviewRepo)

	// Initialize handlers
	authHandler := auth.NewHandler(authService)
	examHandler := exam.NewHandler(examService)
	admissionHandler := admission.NewHandler(admissionService)
	announcementHandler := announcement.NewHandler(announcementService)
	interviewHandler := interview.NewHandler(interviewService)

	// Setup router
	router := mux.NewRouter()

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	// Public routes - no JWT required
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/applicants", admissionHandler.CreateApplicant).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/announcements", announcementHandler.PublicFeed).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/exams/{id}", examHandler.GetExam).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/exams/{id}/submissions", examHandler.Submit).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/interview-slots", interviewHandler.ListSlots).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/interview-slots/{id}/bookings", interviewHandler.Book).Methods("POST", "OPTIONS")

	// Staff routes - JWT required
	staffRouter := router.PathPrefix("/api/admin").Subrouter()
	staffRouter.Use(auth.JWTMiddleware(jwtSecret))

	staffRouter.HandleFunc("/exams", examHandler.CreateExam).Methods("POST", "OPTIONS")
	staffRouter.HandleFunc("/exams", examHandler.ListExams).Methods("GET")
	staffRouter.HandleFunc("/exams/{id}", examHandler.GetExamStaff).Methods("GET")
	staffRouter.HandleFunc("/exams/{id}", examHandler.UpdateExam).Methods("PUT", "OPTIONS")
	staffRouter.HandleFunc("/exams/{id}/status", examHandler.ToggleStatus).Methods("POST", "OPTIONS")
	staffRouter.HandleFunc("/exams/{id}/submissions", examHandler.ListSubmissions).Methods("GET")
	staffRouter.HandleFunc("/submissions/{id}", examHandler.GetSubmission).Methods("GET")

	staffRouter.HandleFunc("/applicants", admissionHandler.ListApplicants).Methods("GET")
	staffRouter.HandleFunc("/applicants/{id}", admissionHandler.GetApplicant).Methods("GET")
	staffRouter.HandleFunc("/applicants/{id}/status", admissionHandler.UpdateStatus).Methods("PUT", "OPTIONS")
	staffRouter.HandleFunc("/admissions/stats", admissionHandler.AdmissionStats).Methods("GET")

	staffRouter.HandleFunc("/announcements", announcementHandler.Create).Methods("POST", "OPTIONS")
	staffRouter.HandleFunc("/announcements", announcementHandler.List).Methods("GET")
	staffRouter.HandleFunc("/announcements/{id}", announcementHandler.Update).Methods("PUT", "OPTIONS")
	staffRouter.HandleFunc("/announcements/{id}/publish", announcementHandler.Publish).Methods("POST", "OPTIONS")
	staffRouter.HandleFunc("/announcements/{id}", announcementHandler.Delete).Methods("DELETE", "OPTIONS")

	staffRouter.HandleFunc("/interview-slots", interviewHandler.CreateSlot).Methods("POST", "OPTIONS")
	staffRouter.HandleFunc("/interview-slots/{id}", interviewHandler.GetSlot).Methods("GET")

	staffRouter.HandleFunc("/staff", authHandler.ListStaff).Methods("GET")

	// Admin-only routes
	adminRouter := staffRouter.NewRoute().Subrouter()
	adminRouter.Use(auth.RequireAdmin)
	adminRouter.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	adminRouter.HandleFunc("/staff/{id}/active", authHandler.SetStaffActive).Methods("PUT", "OPTIONS")
	adminRouter.HandleFunc("/exams/{id}", examHandler.DeleteExam).Methods("DELETE", "OPTIONS")
	adminRouter.HandleFunc("/applicants/{id}", admissionHandler.DeleteApplicant).Methods("DELETE", "OPTIONS")

	// WebSocket endpoint for dashboard events
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
