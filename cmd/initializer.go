package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"founditBack/internal/geo"
	"founditBack/internal/handlers"
	"founditBack/internal/repositories"
	"founditBack/internal/services"
	"founditBack/internal/validation"
	"founditBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	wsManager       *WebSocketManager
	userRepo        *repositories.UserRepository
	userHandler     *handlers.UserHandler
	categoryHandler *handlers.CategoryHandler
	itemHandler     *handlers.ItemHandler
	claimHandler    *handlers.ClaimHandler
	personHandler   *handlers.PersonHandler
	uploadHandler   *handlers.UploadHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}
	claimRepo := repositories.ClaimRepository{DB: db}
	personRepo := repositories.PersonRepository{DB: db}

	tokenManager, err := utils.NewManager(os.Getenv("JWT_SECRET"))
	if err != nil {
		errorLog.Printf("token manager unavailable, falling back to UUID refresh tokens: %v", err)
	}

	locator := geo.NewPersonLocator(rdb)

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	itemService := &services.ItemService{ItemRepo: &itemRepo, Validator: validation.NewItemValidator()}
	claimService := &services.ClaimService{
		ClaimRepo: &claimRepo,
		ItemRepo:  &itemRepo,
		UserRepo:  &userRepo,
		Validator: validation.NewClaimValidator(),
	}
	personService := &services.PersonService{
		PersonRepo: &personRepo,
		Locator:    locator,
		Validator:  validation.NewPersonValidator(),
	}

	// Handlers
	wsManager := NewWebSocketManager()
	userHandler := &handlers.UserHandler{Service: userService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	claimHandler := &handlers.ClaimHandler{Service: claimService, Notify: wsManager.Broadcast}
	personHandler := &handlers.PersonHandler{Service: personService}
	uploadHandler := &handlers.UploadHandler{}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		wsManager:       wsManager,
		userRepo:        &userRepo,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		itemHandler:     itemHandler,
		claimHandler:    claimHandler,
		personHandler:   personHandler,
		uploadHandler:   uploadHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
