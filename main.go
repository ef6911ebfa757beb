package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/ascii-maze-api/api"
	api_i "github.com/beka-birhanu/ascii-maze-api/api/i"
	"github.com/beka-birhanu/ascii-maze-api/api/identity"
	"github.com/beka-birhanu/ascii-maze-api/api/mazeapi"
	"github.com/beka-birhanu/ascii-maze-api/config"
	"github.com/beka-birhanu/ascii-maze-api/infrastruture/cache"
	"github.com/beka-birhanu/ascii-maze-api/infrastruture/fsstore"
	"github.com/beka-birhanu/ascii-maze-api/infrastruture/repo"
	"github.com/beka-birhanu/ascii-maze-api/infrastruture/token"
	"github.com/beka-birhanu/ascii-maze-api/service"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeStore      *fsstore.Store
	mazeRepo       i.MazeRepo
	documentCache  i.DocumentCache
	mazeConverter  i.Converter
	jwtTokenizer   i.Tokenizer
	mazeController api_i.Controller
	router         *api.Router
	appLogger      general_i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initDocumentCache() {
	var err error
	documentCache, err = cache.NewRedisDocumentCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating document cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Document cache initialized")
}

func initMazeStore() {
	var err error
	mazeStore, err = fsstore.New(config.Envs.MazeBasePath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze store: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze store initialized at %s", config.Envs.MazeBasePath))
}

func initConverter() {
	converterLogger, err := logger.New("CONVERTER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating converter logger: %v", err))
		os.Exit(1)
	}

	mazeConverter, err = service.NewConverter(&service.Config{
		Source: mazeStore,
		Sink:   mazeStore,
		Repo:   mazeRepo,
		Cache:  documentCache,
		Logger: converterLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating converter: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Converter initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeConverter)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initMazeRepo(mongoClient)
	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initDocumentCache()
	initMazeStore()
	initConverter()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
