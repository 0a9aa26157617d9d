package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"odontobot/internal/ai"
	appsvc "odontobot/internal/app"
	"odontobot/internal/bootstrap"
	"odontobot/internal/cache"
	"odontobot/internal/memory"
	"odontobot/internal/platform/rabbitmq"
	"odontobot/internal/repository"
	"odontobot/internal/transport/http/handler"
	"odontobot/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app.StartedAt)
	router.GET("/healthz", healthHandler.Check)

	cfg := app.Config
	docRepo := repository.NewDocumentRepository(app.MySQL)
	fragmentRepo := repository.NewFragmentRepository(app.MySQL)
	sessionRepo := repository.NewSessionRepository(app.MySQL)
	messageRepo := repository.NewMessageRepository(app.MySQL)
	hitRepo := repository.NewKeywordHitRepository(app.MySQL)
	adminRepo := repository.NewAdminUserRepository(app.MySQL)

	llmClient := ai.NewClient()
	embedder := ai.NewEmbeddingGateway(llmClient, ai.EmbeddingConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.EmbeddingModel,
	})
	generator := ai.NewAnswerGateway(llmClient, ai.ChatConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})

	historyCache := cache.NewHistoryCache(
		app.Redis,
		time.Duration(cfg.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(cfg.Redis.HistoryDirtyTTLSeconds)*time.Second,
	)
	publisher := rabbitmq.NewMessagePublisher(app.MQConn, cfg.RabbitMQ.MessagePersistQueue)
	rewriter := memory.NewRewriter(cfg.Pipeline.Keywords, cfg.Pipeline.AnaphoraPrefixes)

	authService := appsvc.NewAuthService(
		adminRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute,
	)
	ingestService := appsvc.NewIngestService(docRepo, fragmentRepo, embedder, cfg.Pipeline.ChunkMaxLength)
	sessionService := appsvc.NewSessionService(sessionRepo, docRepo)
	answerService := appsvc.NewAnswerService(
		sessionRepo, fragmentRepo, messageRepo, hitRepo,
		publisher, historyCache, embedder, generator, rewriter,
		appsvc.AnswerConfig{
			TopK:           cfg.Pipeline.TopK,
			MinScore:       cfg.Pipeline.MinScore,
			HistoryWindow:  cfg.Pipeline.HistoryWindow,
			RefusalText:    cfg.Pipeline.RefusalText,
			AnswerLanguage: cfg.Pipeline.AnswerLanguage,
		},
	)
	faqService := appsvc.NewFAQService(hitRepo, sessionRepo)

	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(ingestService)
	chatHandler := handler.NewChatHandler(sessionService, answerService, faqService)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	docGroup := v1.Group("/documents")
	docGroup.Use(middleware.AuthJWT(cfg.Auth.JWTSecret))
	docGroup.POST("", documentHandler.IngestText)
	docGroup.POST("/upload", documentHandler.UploadPDF)
	docGroup.GET("", documentHandler.List)
	docGroup.GET("/:id/fragments", documentHandler.ListFragments)
	docGroup.DELETE("/:id", documentHandler.Delete)

	chatGroup := v1.Group("/chat")
	chatGroup.GET("/sessions/new", chatHandler.NewSession)
	chatGroup.POST("/ask", chatHandler.Ask)
	chatGroup.GET("/history/:token", chatHandler.GetHistory)
	chatGroup.GET("/detections/:token", chatHandler.ListDetections)

	return router
}
