package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rmrk-replay",
		Usage: "replay a JSON-lines extrinsic dump through the RMRK pipeline",

		Commands: []*cli.Command{
			applyCommand(),
			dryRunCommand(),
			publishCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
