package effects

import "github.com/urfave/cli/v2"

func RegisterCommands(app *cli.App, handler Handler) {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "effects",
		Usage: "Small page effects: click counter, clock and background color",
		Subcommands: []*cli.Command{
			{
				Name:   "click",
				Usage:  "Increment the click counter",
				Flags:  []cli.Flag{&cli.IntFlag{Name: "times", Value: 1, Usage: "number of clicks"}},
				Action: handler.Click,
			},
			{
				Name:   "time",
				Usage:  "Show the current time",
				Action: handler.Time,
			},
			{
				Name:   "color",
				Usage:  "Pick a random background gradient",
				Action: handler.Color,
			},
		},
	})
}
