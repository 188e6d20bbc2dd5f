package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/RiniPat/aaDinehub/internal/auth"
	"github.com/RiniPat/aaDinehub/internal/db"
	"github.com/RiniPat/aaDinehub/internal/llm"
	"github.com/RiniPat/aaDinehub/internal/menu"
	"github.com/RiniPat/aaDinehub/internal/middleware"
	"github.com/RiniPat/aaDinehub/internal/publicmenu"
	"github.com/RiniPat/aaDinehub/internal/restaurant"
	"github.com/RiniPat/aaDinehub/internal/session"
	"github.com/RiniPat/aaDinehub/internal/storage"
	"github.com/RiniPat/aaDinehub/pkg/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const sessionTTL = 24 * time.Hour

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	logging.Setup()

	ctx := context.Background()

	// ───────────────────────── STORE ─────────────────────────
	var (
		userRepo       auth.UserRepository
		restaurantRepo restaurant.Repository
		menuRepo       menu.Repository
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := db.Connect(ctx, dsn)
		if err != nil {
			slog.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("connected to postgres")

		userRepo = auth.NewPostgresUserRepository(pool)
		restaurantRepo = restaurant.NewPostgresRepository(pool)
		menuRepo = menu.NewPostgresRepository(pool)
	} else {
		slog.Info("DATABASE_URL not set, using in-memory store")
		userRepo = auth.NewInMemoryUserRepository()
		restaurantRepo = restaurant.NewInMemoryRepository()
		menuRepo = menu.NewInMemoryRepository()
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var r2 *storage.R2Client
	if storage.Configured() {
		client, err := storage.NewR2Client(ctx)
		if err != nil {
			slog.Error("R2 init failed", "error", err)
			os.Exit(1)
		}
		r2 = client
		slog.Info("image storage enabled")
	} else {
		slog.Info("R2 not configured, image uploads disabled")
	}
	var restaurantUploader restaurant.Uploader
	var menuUploader menu.Uploader
	if r2 != nil {
		restaurantUploader, menuUploader = r2, r2
	}

	// ───────────────────────── LLM ─────────────────────────
	aiClient, err := llm.NewOpenAIClient()
	if err != nil {
		slog.Error("OpenAI init failed", "error", err)
		os.Exit(1)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	sessions := session.NewManager(sessionTTL)

	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo)
	menuService := menu.NewService(menuRepo, aiClient)
	resolver := publicmenu.NewResolver(restaurantService, menuService)

	authHandler := auth.NewHandler(authService, sessions)
	restaurantHandler := restaurant.NewHandler(restaurantService, restaurantUploader)
	menuHandler := menu.NewHandler(menuService, menuUploader)
	publicHandler := publicmenu.NewHandler(resolver)

	seed(userRepo, authService, restaurantService, menuService)

	r := newRouter(sessions, authHandler, restaurantHandler, menuHandler, publicHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("API listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRouter(
	sessions *session.Manager,
	authHandler *auth.Handler,
	restaurantHandler *restaurant.Handler,
	menuHandler *menu.Handler,
	publicHandler *publicmenu.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireSession := middleware.RequireSession(sessions)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authHandler.Me)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	r.POST("/restaurants", requireSession, restaurantHandler.Create)
	r.GET("/restaurants", requireSession, restaurantHandler.ListMine)
	r.GET("/restaurants/:id", restaurantHandler.GetByID)
	r.POST("/restaurants/:id/cover", requireSession, restaurantHandler.UploadCover)

	// The router tree cannot hold the literal "slug" segment next to
	// the ":id" wildcard, so all two-segment restaurant GETs share one
	// route and dispatch on the first segment.
	r.GET("/restaurants/:id/:sub", func(c *gin.Context) {
		if c.Param("id") == "slug" {
			c.Params = append(c.Params, gin.Param{Key: "slug", Value: c.Param("sub")})
			restaurantHandler.GetBySlug(c)
			return
		}
		switch c.Param("sub") {
		case "qr":
			restaurantHandler.QRCode(c)
		case "menus":
			menuHandler.ListForRestaurant(c)
		default:
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		}
	})

	// ───────────────────────── MENUS ─────────────────────────
	r.POST("/menus", requireSession, menuHandler.CreateMenu)
	r.POST("/menus/generate", requireSession, menuHandler.Generate)
	r.GET("/menus/:id", menuHandler.GetMenu)

	// ───────────────────────── MENU ITEMS ─────────────────────────
	r.POST("/menu-items", requireSession, menuHandler.CreateItem)
	r.PATCH("/menu-items/:id", requireSession, menuHandler.UpdateItem)
	r.DELETE("/menu-items/:id", requireSession, menuHandler.DeleteItem)
	r.POST("/menu-items/:id/image", requireSession, menuHandler.UploadItemImage)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/menu/:slug", publicHandler.Show)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// seed creates the demo account and restaurant on an empty store so a
// fresh install has something to look at. Runs once; a second start
// finds the admin user and backs off.
func seed(users auth.UserRepository, authService *auth.Service, restaurants *restaurant.Service, menus *menu.Service) {
	if _, err := users.GetByUsername("admin"); err == nil {
		return
	}

	admin, err := authService.Register("admin", "password")
	if err != nil {
		slog.Warn("seeding skipped", "error", err)
		return
	}

	rest, err := restaurants.Create(admin.ID, restaurant.CreateInput{
		Name:        "The Tasty Spoon",
		Slug:        "tasty-spoon",
		CuisineType: "Italian",
		Description: "Homestyle Italian cooking in the heart of town.",
	})
	if err != nil {
		slog.Warn("seeding skipped", "error", err)
		return
	}

	m, err := menus.CreateMenu(menu.CreateMenuInput{
		RestaurantID: rest.ID,
		Name:         "Dinner Menu",
		IsActive:     true,
	})
	if err != nil {
		slog.Warn("seeding skipped", "error", err)
		return
	}

	items := []menu.CreateItemInput{
		{
			MenuID:       m.ID,
			Name:         "Spaghetti Carbonara",
			Description:  "Classic Roman pasta with egg, pecorino and guanciale.",
			Price:        "18.00",
			Category:     "Main",
			IsAvailable:  true,
			IsBestseller: true,
		},
		{
			MenuID:      m.ID,
			Name:        "Tiramisu",
			Description: "Espresso-soaked ladyfingers with mascarpone cream.",
			Price:       "8.00",
			Category:    "Dessert",
			IsAvailable: true,
			IsChefsPick: true,
		},
	}
	for _, in := range items {
		if _, err := menus.CreateItem(in); err != nil {
			slog.Warn("seeding item failed", "item", in.Name, "error", err)
		}
	}

	slog.Info("seeded demo data", "restaurant", rest.Slug)
}
