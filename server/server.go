package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"rental-api/auth"
	"rental-api/confs"
	"rental-api/db"
	httpHandler "rental-api/handlers/http"
	"rental-api/logger"
	"rental-api/repositories"
	"rental-api/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
	log zerolog.Logger
}

func NewServer(cfg *confs.Config, database db.Database, log zerolog.Logger) *Server {
	gin.SetMode(cfg.GinMode)
	s := &Server{
		app: gin.New(),
		cfg: cfg,
		db:  database,
		log: logger.Component(log, "http"),
	}
	s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.app }

func (s *Server) routes() {
	s.app.Use(gin.Recovery(), RequestLogger(s.log))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) == 0 || (len(s.cfg.CORSOrigins) == 1 && s.cfg.CORSOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORSOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.ExposeHeaders = []string{RequestIDHeader}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	propertyRepo := repositories.NewPropertyPgRepository(s.db)
	transactionRepo := repositories.NewTransactionPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, auth.NewPasswordHasher(bcrypt.DefaultCost), auth.NewTokenIssuer(s.cfg.JWTSecret))
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo, logger.Component(s.log, "properties"))
	transactionUseCase := usecases.NewTransactionUseCase(transactionRepo)
	reportUseCase := usecases.NewReportUseCase(transactionRepo, propertyRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	propertyHandler := httpHandler.NewPropertyHandler(propertyUseCase, reportUseCase)
	transactionHandler := httpHandler.NewTransactionHandler(transactionUseCase)
	reportHandler := httpHandler.NewReportHandler(reportUseCase)

	api := s.app.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", httpHandler.RequireAuth(authUseCase), authHandler.Me)
		}

		protected := api.Group("", httpHandler.RequireAuth(authUseCase))

		// Property routes
		properties := protected.Group("/properties")
		{
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("", propertyHandler.GetProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.GET("/:id/summary", propertyHandler.GetPropertySummary)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty) // cascades to transactions
		}

		// Transaction routes
		transactions := protected.Group("/transactions")
		{
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("", transactionHandler.GetTransactions) // ?month=YYYY-MM
			transactions.PUT("/:id", transactionHandler.UpdateTransaction)
			transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
		}

		// Report routes
		reports := protected.Group("/reports")
		{
			reports.GET("/monthly", reportHandler.GetMonthlyReport)
			reports.GET("/income-by-month", reportHandler.GetIncomeByMonth)
			reports.GET("/expenses-by-month", reportHandler.GetExpensesByMonth)
			reports.GET("/energy-comparison", reportHandler.GetEnergyComparison)
			reports.GET("/income-by-property", reportHandler.GetIncomeByProperty)
			reports.GET("/months", reportHandler.GetMonths)
		}
	}
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
