package main

import (
	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config string `help:"Path to the base configuration file." default:"config.toml" short:"c" type:"path"`
}

type CLI struct {
	Globals

	Collection CollectionCmd `cmd:"" default:"1" help:"Compile the Postman collection from the registered controllers."`
	OpenAPI    OpenAPICmd    `cmd:"" name:"openapi" help:"Export the registered controllers as an OpenAPI document."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("postman"),
		kong.Description("Compiles the Futár backend route registry into an importable Postman collection."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
