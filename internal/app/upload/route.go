package upload

import "github.com/urfave/cli/v2"

func RegisterCommands(app *cli.App, handler Handler) {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "upload",
		Usage:     "Upload images to S3 through pre-signed URLs",
		ArgsUsage: "FILE...",
		Action:    handler.Upload,
	})
}
