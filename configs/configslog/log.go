package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger, SLog ise printf tarzı sugared logger.
// InitLogger çağrılana kadar ikisi de no-op çalışır.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger ortama göre zap logger'ını kurar.
// "development" dışındaki ortamlarda JSON çıktı üreten production ayarları kullanılır.
func InitLogger(env string) {
	var cfg zap.Config
	if env == "" || env == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa uygulama yine de çalışmalı
		logger = zap.NewExample()
		logger.Error("Logger yapılandırılamadı, örnek logger kullanılıyor", zap.Error(err))
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tampondaki log kayıtlarını diske yazar.
func SyncLogger() {
	_ = Log.Sync()
}
