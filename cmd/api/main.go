package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/saahla-dz/saahla_be/internal/config"
	"github.com/saahla-dz/saahla_be/internal/db"
	"github.com/saahla-dz/saahla_be/internal/handlers"
	"github.com/saahla-dz/saahla_be/internal/middleware"
	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/realtime"
	"github.com/saahla-dz/saahla_be/internal/services/assistant"
	"github.com/saahla-dz/saahla_be/internal/services/freelancer"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/portfolio"
	"github.com/saahla-dz/saahla_be/internal/services/session"
	"github.com/saahla-dz/saahla_be/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	rdb := store.NewRedis()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis not reachable:", err)
	}

	if err := gdb.AutoMigrate(&models.Conversation{}, &models.Message{}); err != nil {
		log.Fatal(err)
	}

	kv := store.NewRedisKV(rdb)
	identityS := identity.New(kv)
	sessionS := session.New(kv, identityS)
	portfolioS := portfolio.New(kv)
	freelancerS := freelancer.New(identityS, portfolioS)

	hub := realtime.NewHub()
	go hub.Run()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Static("/uploads", cfg.UploadDir)

	authH := &handlers.AuthHandler{
		Identity:  identityS,
		Session:   sessionS,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		Identity:        identityS,
		Session:         sessionS,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	freelancerH := handlers.NewFreelancerHandler(freelancerS)
	productH := handlers.NewProductHandler()
	portfolioH := handlers.NewPortfolioHandler(portfolioS, cfg.UploadDir, "http://localhost:"+cfg.AppPort)
	assistantH := handlers.NewAssistantHandler(assistant.NewService())
	chatH := handlers.NewChatHandler(gdb, hub, rdb, identityS)
	dashH := handlers.NewFreelancerDashboardHandler(gdb, portfolioS)

	api := app.Group("/api")

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/freelancers", freelancerH.List)
	api.Get("/freelancers/:id", freelancerH.GetDetail)
	api.Get("/products", productH.ListPublic)
	api.Get("/products/:id", productH.GetDetail)
	api.Get("/categories", productH.GetCategories)
	api.Get("/assistant/greeting", assistantH.Greeting)
	api.Post("/assistant/chat", assistantH.Chat)

	// protected (JWT cookie)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)
	protected.Patch("/me", authH.UpdateMe)

	// freelancer only
	protected.Get("/freelancer/portfolio",
		middleware.RequireTypes("freelancer"),
		portfolioH.List,
	)
	protected.Post("/freelancer/portfolio",
		middleware.RequireTypes("freelancer"),
		portfolioH.Add,
	)
	protected.Delete("/freelancer/portfolio/:projectId",
		middleware.RequireTypes("freelancer"),
		portfolioH.Delete,
	)
	protected.Post("/freelancer/portfolio/image",
		middleware.RequireTypes("freelancer"),
		portfolioH.UploadImage,
	)
	protected.Get("/freelancer/dashboard/stats",
		middleware.RequireTypes("freelancer"),
		dashH.GetStats,
	)

	chat := protected.Group("/chat")
	chat.Post("/conversations", chatH.CreateOrGetConversation)
	chat.Get("/conversations", chatH.GetConversations)
	chat.Get("/conversations/:id/messages", chatH.GetMessages)
	chat.Post("/conversations/:id/messages", chatH.SendMessage)
	chat.Patch("/conversations/:id/read", chatH.MarkAsRead)

	// WebSocket endpoint (authenticated via query param)
	app.Get("/ws/chat", websocket.New(chatH.WebSocketHandler))

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
