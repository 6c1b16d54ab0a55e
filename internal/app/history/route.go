package history

import "github.com/urfave/cli/v2"

func RegisterCommands(app *cli.App, handler Handler) {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "history",
		Usage: "List recent successful uploads",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "limit", Aliases: []string{"n"}, Usage: "number of records to show (0 = configured limit)"},
		},
		Action: handler.List,
	})
}
