package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"siteyonetim.app/configs"
	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/database"
	"siteyonetim.app/routes"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(rt *state) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "HTTP sunucusunu başlatır",
		RunE: func(cmd *cobra.Command, args []string) error {
			if migrate {
				if err := database.Initialize(rt.database(), database.Options{Migrate: true}); err != nil {
					return err
				}
			}
			svc, err := rt.services()
			if err != nil {
				return err
			}
			app := routes.NewApp(routes.Options{
				Config:    rt.cfg,
				Services:  svc,
				Sessions:  configs.SetupSession(rt.cfg),
				AccessLog: true,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				configslog.SLog.Infof("Sunucu :%s portunda dinleniyor", rt.cfg.Port)
				errCh <- app.Listen(":" + rt.cfg.Port)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Başlamadan önce migrasyonları çalıştır")
	return cmd
}
