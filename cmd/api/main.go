package main

import (
	"log"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/config"
	"MockAuthPortal/internal/server"
)

// @title           Mock Auth Portal API
// @version         1.0
// @description     목 인증 백엔드: 회원가입, 로그인, 세션 확인
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Fatal] invalid configuration: %v", err)
	}

	users, closeStore, err := server.NewUserStore(cfg)
	if err != nil {
		log.Fatalf("[Fatal] failed to open user store: %v", err)
	}
	defer closeStore()

	svc := auth.NewService(users, auth.NewUserCodec(cfg.JWTSecret), cfg.NetworkDelay)
	router := server.NewRouter(cfg, svc)

	log.Printf("Starting server on %s...", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Printf("[ERROR] server stopped: %v", err)
	}
}
