package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/minglemoody/internal/config"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	username := flag.String("username", cfg.AdminUserName, "admin username")
	password := flag.String("password", cfg.AdminPassword, "admin password")
	dbPath := flag.String("db", cfg.DatabasePath, "sqlite database path")
	flag.Parse()

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if *username == "" || *password == "" {
		log.Fatal("username and password are required (flags or ADMIN_USERNAME/ADMIN_PASSWORD)")
	}

	// 初始化数据库
	if err := db.Init(*dbPath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close(db.DB)

	var count int64
	if err := db.DB.Model(&db.User{}).Where("username = ?", *username).Count(&count).Error; err != nil {
		log.Fatalf("failed to look up user: %v", err)
	}
	if count > 0 {
		log.WithField("username", *username).Info("user already exists, nothing to do")
		return
	}

	if err := db.EnsureUser(db.DB, *username, *password); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.WithField("username", *username).Info("admin user created")
}
