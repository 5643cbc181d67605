package main

import (
	"embed"

	"github.com/hellodata/notes-web/cmd"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(templates, static, c)
}
