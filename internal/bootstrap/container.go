package bootstrap

import (
	"context"
	"log"

	"ai-chat-be/internal/config"
	"ai-chat-be/internal/controller"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/repository/contract"
	"ai-chat-be/internal/repository/implementation"
	"ai-chat-be/internal/repository/mongodb"
	"ai-chat-be/internal/service"
	"ai-chat-be/pkg/attachment"
	"ai-chat-be/pkg/blobstore"
	"ai-chat-be/pkg/database"
	"ai-chat-be/pkg/llm/factory"
	"ai-chat-be/pkg/search"
	"ai-chat-be/pkg/search/azure"
	"ai-chat-be/pkg/search/bleve"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	ChatController controller.IChatController
	UserController controller.IUserController
	FileController controller.IFileController

	Logger   logger.ILogger
	TokenCfg serverutils.TokenConfig
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenCfg := serverutils.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   cfg.JWT.Expiry,
	}

	// 2. Document store (backend chosen by config)
	store := newStore(cfg)

	// 3. Completion provider
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:  cfg.Ai.Provider,
		ModelName: cfg.Ai.Model,
		BaseURL:   cfg.Ai.BaseURL,
		APIKey:    cfg.Ai.APIKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Search backend
	searcher := newSearcher(cfg)

	// 5. Object storage
	blobStore, err := blobstore.NewS3Store(context.Background(), blobstore.Config{
		Endpoint:  cfg.Blob.Endpoint,
		Region:    cfg.Blob.Region,
		Bucket:    cfg.Blob.Bucket,
		AccessKey: cfg.Blob.AccessKey,
		SecretKey: cfg.Blob.SecretKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize blob store: %v", err)
	}

	// 6. Services
	authService := service.NewAuthService(store, tokenCfg, sysLogger)
	chatService := service.NewChatService(
		store,
		llmProvider,
		attachment.NewFetcher(),
		searcher,
		sysLogger,
		cfg.Features.EnableUserProfiling,
	)
	userService := service.NewUserService(store)
	fileService := service.NewFileService(blobStore)

	// 7. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		ChatController: controller.NewChatController(chatService),
		UserController: controller.NewUserController(userService),
		FileController: controller.NewFileController(fileService),
		Logger:         sysLogger,
		TokenCfg:       tokenCfg,
	}
}

func newStore(cfg *config.Config) contract.Store {
	switch cfg.Store.Driver {
	case "mongo":
		db, err := database.NewMongoDB(cfg.Store.MongoURI, cfg.Store.MongoDB)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to MongoDB: %v", err)
		}
		log.Println("[INFO] Using document store: MONGODB")
		return mongodb.NewStore(db)
	default:
		db, err := database.NewGormDB(cfg.Store.DSN)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to Postgres: %v", err)
		}
		log.Println("[INFO] Using document store: POSTGRES")
		return implementation.NewStore(db)
	}
}

func newSearcher(cfg *config.Config) search.Searcher {
	switch cfg.Search.Provider {
	case "azure":
		log.Println("[INFO] Using search backend: AZURE")
		return azure.NewClient(cfg.Search.Endpoint, cfg.Search.IndexName, cfg.Search.APIKey)
	default:
		index, err := bleve.NewIndex(cfg.Search.BlevePath)
		if err != nil {
			log.Fatalf("[FATAL] Unable to open search index: %v", err)
		}
		log.Println("[INFO] Using search backend: BLEVE")
		return index
	}
}
