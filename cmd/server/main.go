package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sterlinglegal/backend/internal/config"
	"github.com/sterlinglegal/backend/internal/handler"
	"github.com/sterlinglegal/backend/internal/logging"
	"github.com/sterlinglegal/backend/internal/mailer"
	"github.com/sterlinglegal/backend/internal/repository"
	"github.com/sterlinglegal/backend/internal/service"
)

type serverConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"INFO"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	var (
		srvCfg  serverConfig
		dbCfg   repository.Config
		mailCfg mailer.Config
		httpCfg handler.Config
	)
	config.MustLoad(&srvCfg)
	logging.Setup(srvCfg.LogLevel)

	if err := errors.Join(config.Load(&dbCfg), config.Load(&mailCfg), config.Load(&httpCfg)); err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	// DB 接続は最初のリクエストまで遅延する（起動時に DB が落ちていても API は応答する）
	gateway := repository.NewGateway(dbCfg, slog.Default())
	defer gateway.Close()

	// メール送信は失敗しても投稿は成功扱い
	sender, err := mailer.NewSender(mailCfg, slog.Default())
	if err != nil {
		logging.Fatal("failed to configure mailer", "driver", mailCfg.Driver, "error", err)
	}
	notifier := mailer.NewNotifier(sender, mailCfg, slog.Default())

	contactService := service.NewContactService(gateway, notifier)

	h := handler.New(gateway, httpCfg.AllowedOrigin)
	contactHandler := handler.NewContactHandler(contactService, httpCfg)

	server := &http.Server{
		Addr:         srvCfg.Addr,
		Handler:      handler.NewRouter(h, contactHandler, httpCfg.StaticDir),
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "mail_driver", mailCfg.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
