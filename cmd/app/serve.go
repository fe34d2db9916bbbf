package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	dbadapter "inkwell/internal/adapters/database"
	"inkwell/internal/adapters/httpapi"
	"inkwell/internal/adapters/storage"
	commentapp "inkwell/internal/core/comment/service"
	followerapp "inkwell/internal/core/follower/service"
	groupapp "inkwell/internal/core/group/service"
	postapp "inkwell/internal/core/post/service"
	userapp "inkwell/internal/core/user/service"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "Port to listen on",
				EnvVars: []string{"APP_PORT"},
				Value:   "8080",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Run migrations before serving",
			},
		},
		Action: func(c *cli.Context) error {
			app, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer app.closeResources()
			if err := app.settings.CheckServe(); err != nil {
				return err
			}

			if c.Bool("migrate") {
				if err := dbadapter.Migrate(app.db); err != nil {
					return err
				}
				app.logger.Info("✅ Database migrations completed")
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pageCache, err := app.pageCache(ctx)
			if err != nil {
				return err
			}

			s := app.settings
			userRepo := dbadapter.NewUserRepositoryDatabase(app.db)
			postRepo := dbadapter.NewPostRepositoryDatabase(app.db)
			groupRepo := dbadapter.NewGroupRepositoryDatabase(app.db)
			commentRepo := dbadapter.NewCommentRepositoryDatabase(app.db)
			followerRepo := dbadapter.NewFollowerRepositoryDatabase(app.db)
			store := storage.NewDiskStore(s.MediaRoot, s.MediaURL, app.logger)

			uc := httpapi.UseCases{
				User:     userapp.NewUserService(userRepo, []byte(s.JWTSecret), app.logger),
				Post:     postapp.NewPostService(postRepo, groupRepo, commentRepo, store, app.logger),
				Comment:  commentapp.NewCommentService(commentRepo, postRepo, userRepo, app.logger),
				Follower: followerapp.NewFollowerService(followerRepo, userRepo, app.logger),
				Feed:     app.feedService(pageCache),
				Group:    groupapp.NewGroupService(groupRepo, app.logger),
			}

			if s.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			router := httpapi.SetupRoutes(uc, httpapi.Options{
				AdminToken: s.AdminToken,
				MediaRoot:  s.MediaRoot,
				MediaURL:   s.MediaURL,
			}, app.logger)

			srv := &http.Server{
				Addr:              ":" + s.Port,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					app.logger.Error("Shutdown failed", zap.Error(err))
				}
			}()

			app.logger.Info("App is running...", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			app.logger.Info("Server stopped")
			return nil
		},
	}
}
