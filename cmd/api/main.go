package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adreport-api/infrastructure/database/postgres"
	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/internal/api"
	"github.com/vfg2006/adreport-api/internal/config"
	"github.com/vfg2006/adreport-api/internal/usecases/advertising"
	"github.com/vfg2006/adreport-api/internal/usecases/authenticating"
	"github.com/vfg2006/adreport-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userRepo, adRepo, pgConn := buildStore(ctx, cfg)
	if pgConn != nil {
		defer pgConn.Close()
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	adService := advertising.NewService(adRepo)
	reporter := reporting.NewService(adRepo)

	server, err := api.New(cfg, authenticator, adService, reporter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// buildStore resolve o backend de persistência uma única vez no boot.
//
// Em modo demo os repositórios vivem em memória. Fora do modo demo tentamos o
// PostgreSQL; se a conexão falhar, registramos o erro e seguimos em memória:
// o sistema prefere subir degradado a não subir.
func buildStore(ctx context.Context, cfg *config.Config) (repository.UserRepository, repository.AdRepository, *postgres.Connection) {
	if cfg.Database.DemoMode {
		logrus.Info("Rodando em MODO DEMO - dados em memória")
		store := repository.NewMemoryStore()
		return store, store, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err == nil {
		err = conn.Ping(ctx)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		logrus.Warn("Banco indisponível, seguindo em modo demo (dados em memória)")

		store := repository.NewMemoryStore()
		return store, store, nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return repository.NewUserRepository(conn), repository.NewAdRepository(conn), conn
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
