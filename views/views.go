// Package views sunucu tarafında işlenen sayfa şablonlarını gömülü olarak taşır.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html auth/*.html errors/*.html home/*.html
var files embed.FS

// Engine gömülü şablonlarla bir html/v2 motoru oluşturur.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("label", func(labels map[string]string, key string) string {
		if v, ok := labels[key]; ok {
			return v
		}
		return key
	})
	return engine
}
