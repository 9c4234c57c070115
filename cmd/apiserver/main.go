package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/atomic"

	"github.com/ecomplus/app-pakman/internal/app/config"
	"github.com/ecomplus/app-pakman/internal/app/domains/services/svquote"
	"github.com/ecomplus/app-pakman/internal/app/infra/pakman"
	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
	"github.com/ecomplus/app-pakman/internal/app/server/handlers/shipping"
	"github.com/ecomplus/app-pakman/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 组装依赖：承运商客户端 → 报价服务 → HTTP 处理器
	pakmanClient := pakman.NewClient(cfg.Pakman.BaseURL, cfg.PreviewTimeout(), cfg.CheckoutTimeout(), zapLogger)
	quoteService := svquote.NewQuoteService(pakmanClient, zapLogger)
	shippingHandler := shipping.NewShippingHandler(quoteService, zapLogger)

	// 4. 创建 HTTP Server
	closing := atomic.NewBool(false)
	engine := routers.SetupRoutes(shippingHandler, zapLogger, closing)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 5. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 6. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, closing)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
// 先置位 closing 让健康检查摘流，再关闭 HTTP Server
func gracefulShutdown(server *http.Server, closing *atomic.Bool) {
	closing.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
