package main

import (
	"fmt"

	"github.com/basiljilani/Foodo-admin/configs"
	"github.com/basiljilani/Foodo-admin/logger"
	"github.com/basiljilani/Foodo-admin/middlewares"
	"github.com/basiljilani/Foodo-admin/routes"
	"github.com/basiljilani/Foodo-admin/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Init()
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedSampleData {
		if err := configs.SeedCatalog(db, configs.SampleData()); err != nil {
			logger.Fatal("seed sample catalog failed", zap.Error(err))
		}
		logger.Info("sample catalog seeded")
	}

	// Asset store
	var store storage.Store
	switch cfg.StorageDriver {
	case "s3":
		s3Store, err := storage.NewS3Store(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.PublicBaseURL)
		if err != nil {
			logger.Fatal("s3 store init failed", zap.Error(err))
		}
		store = s3Store
	default:
		store = storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve committed images when the disk store is in use
	if cfg.StorageDriver != "s3" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, db, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
