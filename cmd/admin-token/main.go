// Command admin-token prints a signed token for the contact and quote
// read-back routes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sarita-industries/internal/config"
	"sarita-industries/internal/logger"
	"sarita-industries/internal/middleware"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	subject := flag.String("subject", "admin", "identity recorded in the token subject")
	ttl := flag.Duration("ttl", time.Duration(cfg.JWT.AdminTokenExpiry)*time.Hour, "token lifetime")
	flag.Parse()

	log := logger.NewWithDefaults()
	defer log.Sync()

	token, err := middleware.IssueAdminToken(cfg.JWT.Secret, *subject, *ttl)
	if err != nil {
		log.Error("Failed to issue admin token", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Issued admin token", zap.String("subject", *subject), zap.Duration("ttl", *ttl))
	fmt.Println(token)
}
