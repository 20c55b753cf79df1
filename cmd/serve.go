package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/mazestore"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// Dependencies of the serve command
var (
	envs           config.Config
	redisClient    *redis.Client
	mazeStore      i.MazeStore
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve maze generation and solving over HTTP",
		Long: `Start the HTTP API. Configuration is read from the environment and an
optional .env file; mazes are kept in Redis when REDIS_ADDR is set and in
memory otherwise.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	})
}

func newLogger(component, color string) *logger.Logger {
	l, err := logger.New(component, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", component, err)
		os.Exit(1)
	}
	if err := l.SetLevel(envs.LogLevel); err != nil {
		l.Warning(fmt.Sprintf("Unknown log level %q, keeping info", envs.LogLevel))
	}
	return l
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeStore(ctx context.Context) {
	if envs.RedisAddr == "" {
		mazeStore = mazestore.NewMemoryStore(envs.MazeTTLSeconds)
		appLogger.Info("In-memory maze store initialized")
		return
	}

	initRedis(ctx)
	var err error
	mazeStore, err = mazestore.NewRedisStore(redisClient, envs.MazeTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis maze store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis maze store initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	if envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET is not set, share tokens will not survive a restart")
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Store:        mazeStore,
		Tokenizer:    jwtTokenizer,
		Logger:       newLogger("MAZE-SERVICE", config.ColorMagenta),
		MaxDimension: envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	algo, err := generator.Parse(envs.DefaultAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Invalid DEFAULT_ALGORITHM: %v", err))
		os.Exit(1)
	}
	mazeController, err = mazeapi.NewMazeController(mazeService, algo)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	envs = config.Load()
	appLogger = newLogger("APP", config.ColorGreen)

	initMazeStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}
	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", envs.HostIP, envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
