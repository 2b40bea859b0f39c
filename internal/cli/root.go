// Package cli sitectl komut satırı aracının cobra komutlarını tanımlar.
package cli

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"siteyonetim.app/configs"
	"siteyonetim.app/configs/configsdatabase"
	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/services"
)

// state komutlar arasında paylaşılan ayar ve bağlantılardır.
type state struct {
	cfg *configs.AppConfig
	db  *gorm.DB
}

// NewRootCmd tüm alt komutlarıyla birlikte kök komutu oluşturur.
func NewRootCmd() *cobra.Command {
	rt := &state{}
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Site yönetim sunucusu ve yönetim araçları",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.Load()
			if err != nil {
				return err
			}
			configslog.InitLogger(cfg.Env)
			rt.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.db != nil {
				configsdatabase.CloseDB()
			}
			configslog.SyncLogger()
		},
	}

	root.AddCommand(
		serveCmd(rt),
		migrateCmd(rt),
		seedCmd(rt),
		reportCmd(rt),
		userCmd(rt),
	)
	return root
}

func (rt *state) database() *gorm.DB {
	if rt.db == nil {
		configsdatabase.InitDB(rt.cfg)
		rt.db = configsdatabase.GetDB()
	}
	return rt.db
}

func (rt *state) services() (*services.Services, error) {
	store, err := storage.NewLocalStore(rt.cfg.UploadDir, rt.cfg.UploadBaseURL)
	if err != nil {
		return nil, err
	}
	return services.New(rt.database(), store, services.Options{
		TokenSecret:    rt.cfg.SessionSecret,
		TokenTTL:       rt.cfg.SessionMaxAge,
		UploadMaxBytes: rt.cfg.UploadMaxBytes,
	}), nil
}
