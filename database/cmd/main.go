package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"siteyonetim.app/configs"
	"siteyonetim.app/configs/configsdatabase"
	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/database"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Sistem kullanıcısı seeder'ını çalıştır")
	demoFlag := flag.Bool("demo", false, "Seed ile birlikte örnek siteyi oluştur")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.InitLogger("development")
		configslog.Log.Fatal("Ayarlar yüklenemedi", zap.Error(err))
	}
	configslog.InitLogger(cfg.Env)
	defer configslog.SyncLogger()

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	err = database.Initialize(configsdatabase.GetDB(), database.Options{
		Migrate: *migrateFlag,
		Seed:    *seedFlag,
		Demo:    *demoFlag,
	})
	if err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi başarısız", zap.Error(err))
		configslog.SyncLogger()
		configsdatabase.CloseDB()
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
