package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	feed "github.com/jimiolaniyan/comicrealm"
	"github.com/jimiolaniyan/comicrealm/config"
	"github.com/jimiolaniyan/comicrealm/identity"
	"github.com/jimiolaniyan/comicrealm/logger"
	"github.com/jimiolaniyan/comicrealm/publisher"
	"github.com/jimiolaniyan/comicrealm/seed"
	"github.com/jimiolaniyan/comicrealm/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	gen := seed.New(rand.New(rand.NewSource(seedValue)))

	users := identity.NewDirectory()
	for _, u := range gen.Users(cfg.SeedUsers) {
		if err := users.Store(u); err != nil {
			lg.Fatal("failed to store user", zap.String("id", string(u.ID)), zap.Error(err))
		}
	}

	me, err := identity.Resolve(users, cfg.CurrentUserID)
	if err != nil {
		lg.Fatal("current user not found", zap.String("user", cfg.CurrentUserID), zap.Error(err))
	}

	authors := users.List()
	store := feed.NewStore(me)
	if err := store.Import(gen.Posts(authors, cfg.SeedPosts, time.Now().UTC())...); err != nil {
		lg.Fatal("failed to seed feed", zap.Error(err))
	}
	lg.Info("feed seeded", zap.Int("users", len(authors)), zap.Int("posts", len(store.Posts())), zap.Int64("seed", seedValue))

	storage, closeStorage := themeStorage(cfg, lg)
	defer closeStorage()
	appearance := theme.NewStore(storage, lg)

	if cfg.NatsURL != "" {
		nc, err := nats.Connect(cfg.NatsURL,
			nats.MaxReconnects(10),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				if err != nil {
					lg.Warn("NATS disconnected", zap.Error(err))
				}
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				lg.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
			}),
		)
		if err != nil {
			lg.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer nc.Close()
		defer publisher.NewEventPublisher(nc, lg).Attach(store)()
	}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/me", feed.GetCurrentUserHandler(store))
	router.Handler(http.MethodGet, "/v1/posts", feed.GetPostsHandler(store))
	router.Handler(http.MethodPost, "/v1/posts", feed.CreatePostHandler(store))
	router.Handler(http.MethodGet, "/v1/posts/:id", feed.GetPostHandler(store))
	router.Handler(http.MethodPost, "/v1/posts/:id/like", feed.LikePostHandler(store))
	router.Handler(http.MethodPost, "/v1/posts/:id/bookmark", feed.BookmarkPostHandler(store))
	router.Handler(http.MethodGet, "/v1/bookmarks", feed.GetBookmarksHandler(store))
	router.Handler(http.MethodGet, "/v1/likes", feed.GetLikedPostsHandler(store))
	router.Handler(http.MethodGet, "/v1/users/:id/posts", feed.GetUserPostsHandler(store))
	router.Handler(http.MethodGet, "/v1/trends", feed.GetTrendsHandler(store))
	router.Handler(http.MethodGet, "/v1/stream", feed.StreamHandler(store, lg))
	router.Handler(http.MethodGet, "/v1/theme", theme.GetThemeHandler(appearance))
	router.Handler(http.MethodPost, "/v1/theme/dark-mode", theme.ToggleDarkModeHandler(appearance))
	router.Handler(http.MethodPut, "/v1/theme/accent-color", theme.SetAccentColorHandler(appearance))

	lg.Info("server started", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, feed.LoggingMiddleware(router, lg)); err != nil {
		lg.Error("server stopped", zap.Error(err))
	}
}

func themeStorage(cfg config.Config, lg *zap.Logger) (theme.Storage, func()) {
	switch cfg.ThemeStorage {
	case config.ThemeStorageMemory:
		return theme.NewMemoryStorage(), func() {}

	case config.ThemeStorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return theme.NewRedisStorage(client, cfg.RedisPrefix), func() { _ = client.Close() }

	case config.ThemeStorageMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			lg.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		if err := client.Ping(ctx, nil); err != nil {
			lg.Fatal("failed to ping MongoDB", zap.Error(err))
		}

		c := client.Database(cfg.MongoDatabase).Collection("preferences")
		return theme.NewMongoStorage(c), func() { _ = client.Disconnect(context.Background()) }

	default:
		return theme.NewFileStorage(cfg.ThemeFile), func() {}
	}
}
