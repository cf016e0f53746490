package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/client"
	"github.com/edufund/scholarship-finder/config"
	"github.com/edufund/scholarship-finder/handler"
	"github.com/edufund/scholarship-finder/logger"
	"github.com/edufund/scholarship-finder/service"
	"github.com/edufund/scholarship-finder/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Tesseract v5 reads the prefix from the environment.
	os.Setenv("TESSDATA_PREFIX", cfg.TessdataPrefix)

	cat, err := catalog.Load(cfg.CatalogPath, cfg.ExamsPath)
	if err != nil {
		log.Fatal("Failed to load scholarship catalog", zap.Error(err))
	}
	log.Info("Catalog loaded", zap.Int("scholarships", cat.Len()), zap.Int("exams", len(cat.Exams())))

	var convStore store.ConversationStore
	if cfg.RedisAddr != "" {
		redisStore, err := store.NewRedisStore(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer redisStore.Close()
		convStore = redisStore
		log.Info("Conversation history backed by redis", zap.String("addr", cfg.RedisAddr))
	} else {
		convStore = store.NewMemoryStore()
		log.Info("Conversation history kept in memory")
	}

	tesseractClient := client.NewTesseractClient(cfg.TessdataPrefix)
	pdfProcessor := service.NewPDFProcessor()

	policy := service.DefaultPolicy()
	policy.MinMatchRatio = cfg.MatchThreshold

	matchService := service.NewMatchService(cat, policy, cfg.HomeState, log)
	documentService := service.NewDocumentService(tesseractClient, pdfProcessor, log)
	chatService := service.NewChatService(cat, convStore, cfg.HomeState, log)

	matchHandler := handler.NewMatchHandler(matchService, documentService, log)
	catalogHandler := handler.NewCatalogHandler(cat)
	chatHandler := handler.NewChatHandler(chatService, log)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "healthy",
			"service":      "Scholarship Finder",
			"scholarships": cat.Len(),
		})
	})

	router.POST("/match", matchHandler.MatchManual)
	router.POST("/upload", matchHandler.Upload)
	router.GET("/scholarships", catalogHandler.ListScholarships)
	router.GET("/exams", catalogHandler.ListExams)
	router.GET("/application-guidance", catalogHandler.ApplicationGuidance)
	router.POST("/chatbot", chatHandler.Chat)

	log.Info("Starting scholarship finder service", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
