package cmd

import (
	"context"
	"fmt"
	"time"

	internalApp "github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/service"
	"github.com/hellodata/notes-web/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newsletterFlags 一次性发送命令参数
type newsletterFlags struct {
	config string
	period string
	dryRun bool
}

func init() {
	env := new(newsletterFlags)

	var newsletterCmd = &cobra.Command{
		Use:   "newsletter --period week|month [--dry-run]",
		Short: "Send the newsletter digest once and exit. // 发送一次邮件摘要后退出。",
		RunE: func(cmd *cobra.Command, args []string) error {
			var period service.Period
			switch env.period {
			case "week", "weekly":
				period = service.PeriodWeek
			case "month", "monthly":
				period = service.PeriodMonth
			default:
				return fmt.Errorf("invalid period %q, expected week or month", env.period)
			}

			cfg, realpath, err := internalApp.LoadConfig(env.config)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			lg, err := logger.NewLogger(logger.Config{
				Level:      cfg.Log.Level,
				File:       "", // 命令行工具日志输出到控制台
				Production: false,
			})
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}

			lg.Info("config loaded", zap.String("path", realpath))

			appContainer, err := internalApp.NewApp(cfg, lg)
			if err != nil {
				return fmt.Errorf("failed to create app container: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			sent, failed, err := appContainer.DigestService.SendDigests(ctx, period, env.dryRun)
			if err != nil {
				return fmt.Errorf("send digests: %w", err)
			}

			fmt.Printf("period=%s sent=%d failed=%d dryRun=%v\n", period, sent, failed, env.dryRun)
			return nil
		},
	}

	rootCmd.AddCommand(newsletterCmd)
	fs := newsletterCmd.Flags()
	fs.StringVarP(&env.config, "config", "c", "config/config.yaml", "config file")
	fs.StringVar(&env.period, "period", "week", "digest period: week or month")
	fs.BoolVar(&env.dryRun, "dry-run", false, "render digests without delivering email")
}
