package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateFiles embed.FS
var staticFiles embed.FS
var configDefault string

var rootCmd = &cobra.Command{
	Use:   "notes-web",
	Short: "Notes Web",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpTemplate()
		cmd.Help()
	},
}

func Execute(templates embed.FS, static embed.FS, c string) {
	templateFiles = templates
	staticFiles = static
	configDefault = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
