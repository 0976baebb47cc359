package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/sugarloaf/bakehouse/internal/app"
	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, configure a strong random key before running in release mode")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default, replace it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to initialize database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	// First-boot staff account so the order dashboard is reachable.
	defaultStaffEmail := os.Getenv("BH_DEFAULT_STAFF_EMAIL")
	defaultStaffPass := os.Getenv("BH_DEFAULT_STAFF_PASSWORD")
	if cfg.Server.Mode == "release" && defaultStaffPass == "" {
		stdLog.Printf("warning: BH_DEFAULT_STAFF_PASSWORD is not set, skipped default staff initialization")
	} else if err := models.InitDefaultStaff(defaultStaffEmail, defaultStaffPass); err != nil {
		stdLog.Printf("warning: failed to initialize default staff account: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service exited with error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██████╗  █████╗ ██╗  ██╗███████╗██╗  ██╗ ██████╗ ██╗   ██╗███████╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██╔══██╗██║ ██╔╝██╔════╝██║  ██║██╔═══██╗██║   ██║██╔════╝██╔════╝" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝███████║█████╔╝ █████╗  ███████║██║   ██║██║   ██║███████╗█████╗  " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██╔══██║██╔═██╗ ██╔══╝  ██╔══██║██║   ██║██║   ██║╚════██║██╔══╝  " + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝██║  ██║██║  ██╗███████╗██║  ██║╚██████╔╝╚██████╔╝███████║███████╗" + ansiReset)
	fmt.Println(ansiCyan + "╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚══════╝╚══════╝" + ansiReset)
	fmt.Println(ansiBold + "Bakehouse order API" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
