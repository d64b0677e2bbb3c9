package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/ledger"
	"fintrack/store"
)

// @title Fintrack API
// @description Personal finance tracker: banks, transactions, transfers,
// @description credits and reports, with balance reconciliation on every
// @description ledger mutation.
// @version 1.0
// @BasePath /

var service *ledger.Service

func main() {
	cfg, err := config.Load(os.Getenv("FIN_CONFIG"))
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	connStr := cfg.Database.ConnString()

	// Connect to database with retry logic
	var pool *pgxpool.Pool
	maxRetries := 30
	retryInterval := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), connStr)
		if err == nil {
			err = pool.Ping(context.Background())
		}
		if err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			if pool != nil {
				pool.Close()
			}
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer pool.Close()

	// Run database migrations over a database/sql connection
	migrationsPath := filepath.Join(".", "db", "migrations")
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}
		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}
		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Println("Database migrations completed successfully")
	}

	service = ledger.NewService(store.NewPostgres(pool))

	gin.SetMode(cfg.Server.Mode)
	r := setupRouter(cfg.CORS.AllowOrigins)

	log.Printf("Server starting on port %d", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// setupRouter wires middleware and all API routes. Tests call this
// against an in-memory store.
func setupRouter(allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api", requireUser)

	api.GET("/banks", getBanks)
	api.POST("/banks", createBank)
	api.GET("/banks/:id", getBank)
	api.PUT("/banks/:id", updateBank)
	api.DELETE("/banks/:id", deleteBank)

	api.GET("/transactions", getTransactions)
	api.POST("/transactions", createTransaction)
	api.PUT("/transactions/:id", updateTransaction)
	api.DELETE("/transactions/:id", deleteTransaction)

	api.GET("/transfers", getTransfers)
	api.POST("/transfers", createTransfer)
	api.DELETE("/transfers/:id", deleteTransfer)

	api.GET("/credits", getCredits)
	api.POST("/credits", createCredit)
	api.PUT("/credits/:id", updateCredit)
	api.DELETE("/credits/:id", deleteCredit)

	api.GET("/reports/categories", getCategoryReport)
	api.GET("/reports/monthly", getMonthlyReport)
	api.GET("/reports/daily", getDailyReport)
	api.GET("/reports/people", getPeopleReport)
	api.GET("/dashboard", getDashboard)

	api.GET("/export", exportTransactions)
	api.POST("/import", importTransactions)

	return r
}
