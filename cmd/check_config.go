package cmd

import (
	"fmt"

	"github.com/hellodata/notes-web/internal/app"

	"github.com/gookit/goutil/dump"
	"github.com/spf13/cobra"
)

func init() {
	var configPath string

	var checkConfigCmd = &cobra.Command{
		Use:   "check-config [-c config_file]",
		Short: "Load the configuration file and print the resolved values. // 加载配置文件并打印解析结果。",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, realpath, err := app.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Printf("Config loaded from: %s\n", realpath)
			dump.P(cfg)
			return nil
		},
	}

	rootCmd.AddCommand(checkConfigCmd)
	checkConfigCmd.Flags().StringVarP(&configPath, "config", "c", "config/config.yaml", "config file")
}
