package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bloglist/api/router"
	"bloglist/auth"
	"bloglist/config"
	"bloglist/db"
	"bloglist/logger"
	"bloglist/repositories"
	"bloglist/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.Logging.Level)

	client, database, err := db.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	tokens, err := auth.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal(err)
	}

	blogRepo := repositories.NewBlogRepository(database)
	userRepo := repositories.NewUserRepository(database)

	r := router.New(router.Deps{
		Blogs: services.NewBlogService(blogRepo, userRepo, tokens, services.DefaultPolicy()),
		Users: services.NewUserService(userRepo),
		Auth:  services.NewAuthService(userRepo, tokens),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	})

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	handler := cors.Default().Handler(r)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
