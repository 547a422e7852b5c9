package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().String("background", "static/bg.png", "background image; missing files render without a backdrop")
	serveCmd.Flags().String("static-dir", "static", "directory served under /static")
	serveCmd.Flags().String("mode", "", "gin mode: debug, release or test")
}

func runServe(_ *cobra.Command, _ []string) error {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	srv, err := site.New(site.Options{
		Catalog:         cat,
		Backdrop:        site.LoadBackdrop(cfg.Background),
		DefaultMinLevel: cfg.DefaultMinLevel,
		StaticDir:       cfg.StaticDir,
	})
	if err != nil {
		return err
	}

	log.Printf("Serving %s on %s", cat.Profile.Title, cfg.Addr())
	return srv.Run(cfg.Addr())
}
