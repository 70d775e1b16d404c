package main

import (
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Description(`Print the built-in sample expressions, their values and their simplified forms.`),
		kong.Vars{"version": version},
	)
	log := newLogger(os.Stderr, cli.Verbose)
	err := cli.run(os.Stdout, os.Stderr, log)
	kctx.FatalIfErrorf(err)
}
