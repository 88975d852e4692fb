package main

import (
	"fmt"
	"log"
	"os"

	"portfolio/commands"
	"portfolio/config"
	"portfolio/services"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "export",
		Usage: "Export contacts and newsletter subscribers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: "json",
				Usage: "Export format (json or csv)",
			},
		},
		Action: func(c *cli.Context) error {
			config.LoadEnv()
			config.ConnectDB()

			contacts := services.NewGormContactStore(config.DB)
			subscribers := services.NewGormSubscriberStore(config.DB)

			var command commands.ExportCommand
			switch c.String("format") {
			case "json":
				command = commands.NewJSONExportCommand(contacts, subscribers, os.Stdout)
			case "csv":
				command = commands.NewCSVExportCommand(contacts, subscribers, os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", c.String("format"))
			}

			return command.Execute()
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
