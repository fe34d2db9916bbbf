package main

import (
	"log"
	"os"

	"inkwell/internal/config"

	"github.com/urfave/cli/v2"
)

func main() {
	// .env has to be in the environment before flags read their EnvVars
	config.LoadEnvFile(os.Getenv("ENV_FILE"))

	if err := rootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func rootApp() *cli.App {
	return &cli.App{
		Name:  "inkwell",
		Usage: "A small blogging platform: posts, groups, comments and follow feeds",
		Description: `Serves the JSON API and runs the administrative tasks.

		Flags can generally be set via environment variables, e.g.:

		--db-dsn => DB_DSN=...
		--port => APP_PORT=8080
		`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-driver",
				Usage:   "Database driver: mysql, postgres or sqlite",
				EnvVars: []string{"DB_DRIVER"},
			},
			&cli.StringFlag{
				Name:    "db-dsn",
				Usage:   "Database connection string",
				EnvVars: []string{"DB_DSN"},
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			groupCmd(),
			cacheCmd(),
		},
		Action: func(ctx *cli.Context) error {
			return ctx.App.Run([]string{"", "help"})
		},
	}
}
