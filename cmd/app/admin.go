package main

import (
	"fmt"

	dbadapter "inkwell/internal/adapters/database"
	groupapp "inkwell/internal/core/group/service"

	"github.com/urfave/cli/v2"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Usage:       "Run database migrations",
		Description: `Creates or updates the tables for users, groups, posts, comments and follows.`,
		Action: func(c *cli.Context) error {
			app, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer app.closeResources()

			if err := dbadapter.Migrate(app.db); err != nil {
				return fmt.Errorf("error during migrations: %w", err)
			}
			app.logger.Info("✅ Database migrations completed")
			return nil
		},
	}
}

func groupCmd() *cli.Command {
	return &cli.Command{
		Name:  "group",
		Usage: "Manage groups",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a group",
				ArgsUsage: "<slug>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "description", Usage: "What the group is about"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one slug", 2)
					}
					app, err := bootstrap(c)
					if err != nil {
						return err
					}
					defer app.closeResources()

					svc := groupapp.NewGroupService(dbadapter.NewGroupRepositoryDatabase(app.db), app.logger)
					g, err := svc.CreateGroup(c.Context, c.String("title"), c.Args().First(), c.String("description"))
					if err != nil {
						return err
					}
					fmt.Printf("Created group %s (id %d)\n", g.Slug, g.ID)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a group; its posts are kept without a group",
				ArgsUsage: "<slug>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one slug", 2)
					}
					app, err := bootstrap(c)
					if err != nil {
						return err
					}
					defer app.closeResources()

					svc := groupapp.NewGroupService(dbadapter.NewGroupRepositoryDatabase(app.db), app.logger)
					if err := svc.DeleteGroup(c.Context, c.Args().First()); err != nil {
						return err
					}
					fmt.Printf("Deleted group %s\n", c.Args().First())
					return nil
				},
			},
		},
	}
}

func cacheCmd() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the global feed cache",
		Subcommands: []*cli.Command{
			{
				Name:        "clear",
				Usage:       "Drop every cached global feed page",
				Description: `Only meaningful with CACHE_BACKEND=redis; the memory cache lives inside the server process.`,
				Action: func(c *cli.Context) error {
					app, err := bootstrap(c)
					if err != nil {
						return err
					}
					defer app.closeResources()

					pageCache, err := app.pageCache(c.Context)
					if err != nil {
						return err
					}
					if err := app.feedService(pageCache).InvalidateCache(c.Context); err != nil {
						return err
					}
					fmt.Println("Feed cache cleared")
					return nil
				},
			},
		},
	}
}
