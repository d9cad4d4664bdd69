// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// tasksCommand handles task operations against the remote API
func tasksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tasks",
		Aliases: []string{"t"},
		Usage:   "Task operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tasks with optional filters",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page number",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "per-page",
						Usage: "Tasks per page (10, 20, 30 or 50)",
						Value: 10,
					},
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "Filter by status (todo, in-progress, hold, done)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Search in title and description",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv or markdown",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TasksList,
			},
			{
				Name:  "create",
				Usage: "Create a task",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Task title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "description",
						Aliases:  []string{"d"},
						Usage:    "Task description",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "due",
						Usage:    "Due date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TasksCreate,
			},
			{
				Name:  "update",
				Usage: "Update a task, replacing all of its fields",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Task ID to update",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Task title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "description",
						Aliases:  []string{"d"},
						Usage:    "Task description",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "status",
						Aliases:  []string{"s"},
						Usage:    "Task status (todo, in-progress, hold, done)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "due",
						Usage:    "Due date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TasksUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a task",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Task ID to delete",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.TasksDelete,
			},
			{
				Name:  "export",
				Usage: "Export all matching tasks",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "Filter by status (todo, in-progress, hold, done)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Search in title and description",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, markdown or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout when omitted)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent page fetches",
						Value: 4,
					},
				},
				Action: r.TasksExport,
			},
			{
				Name:  "stats",
				Usage: "Show task counters for the current filters",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "Filter by status (todo, in-progress, hold, done)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Search in title and description",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TasksStats,
			},
		},
	}
}

// configCommand manages the local configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write an example config.toml",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
		},
	}
}

// tuiCommand launches the interactive dashboard
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive task dashboard",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
