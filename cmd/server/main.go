package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/config"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库并写入种子数据
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(db.DB)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
