package health

import "github.com/urfave/cli/v2"

func RegisterCommands(app *cli.App, handler Handler) {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "health",
		Usage:  "Check the credential endpoint and Redis",
		Action: handler.Check,
	})
}
