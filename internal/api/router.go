package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-importer/internal/api/handlers/health"
	recipeHandler "recipe-importer/internal/api/handlers/recipe"
	"recipe-importer/internal/api/middleware"
	"recipe-importer/internal/core/analytics"
	"recipe-importer/internal/core/cache"
	"recipe-importer/internal/core/fetch"
	recipeService "recipe-importer/internal/core/recipe"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置：涵蓋抓取與解析整條管線
	timeoutDuration = 60 * time.Second
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制：解析端點接受整頁 HTML，上限跟抓取端一致再加 JSON 包裝餘裕
	maxBodySize := cfg.Fetch.MaxBodyBytes + (1 << 20)
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Duration("fetch_timeout", cfg.Fetch.Timeout),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化緩存後端：Redis 開啟時取代記憶體緩存
	var store cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			common.LogError("Failed to initialize Redis cache", zap.Error(err))
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
		store = redisStore
	} else if cacheManager != nil {
		store = cacheManager
	}

	// 初始化服務
	fetcher := fetch.NewClient(cfg)
	tracker := analytics.NewTracker()
	recipeSvc := recipeService.NewService(cfg, fetcher, store, tracker)

	common.LogInfo("Recipe services initialized successfully",
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.String("environment", cfg.App.Env),
	)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		// 創建新的請求上下文
		req := c.Request.WithContext(ctx)
		c.Request = req

		// 設置配置與緩存
		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(recipeSvc)

		// 註冊食譜相關路由
		recipeGroup := api.Group("/recipe")
		{
			// 解析已取得的 HTML
			recipeGroup.POST("/parse", handler.HandleParse)

			// 抓取 URL 並解析
			recipeGroup.POST("/import", handler.HandleImport)

			// 對已解析食譜計算分類
			recipeGroup.POST("/classify", handler.HandleClassify)

			// 解析統計
			recipeGroup.GET("/stats", handler.HandleStats)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
