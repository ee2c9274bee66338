package main

import (
	"context"
	"fmt"
	"io"

	"service_documents/internal/adapter/http/handlers"
	"service_documents/internal/adapter/http/routes"
	"service_documents/internal/adapter/persistence/repository"
	"service_documents/internal/config"
	"service_documents/internal/infrastructure/cache"
	"service_documents/internal/infrastructure/database"
	"service_documents/internal/infrastructure/events"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/infrastructure/payments"
	"service_documents/internal/infrastructure/storage"
	"service_documents/internal/usecase"
	"service_documents/internal/usecase/interfaces"
)

type app struct {
	handlers routes.Handlers
	closers  []io.Closer
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}

func buildApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*app, error) {
	a := &app{}

	records, paymentsRepo, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	uploader, err := buildUploader(ctx, cfg.Uploads, log, a)
	if err != nil {
		return nil, err
	}

	var publisher interfaces.IHistoryPublisher
	if cfg.NATS.URL != "" {
		p, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			log.Warn("history events disabled", "error", err)
		} else {
			publisher = p
			a.closers = append(a.closers, p)
		}
	}

	var quotesCache interfaces.IQuoteListCache
	if cfg.Redis.Addr != "" {
		c, err := cache.NewRedisQuoteListCache(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn("quotes cache disabled", "error", err)
		} else {
			quotesCache = c
			a.closers = append(a.closers, c)
		}
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, log)
		if err != nil {
			log.Warn("Mercado Pago gateway not configured", "error", err)
		} else {
			gateway = mp
		}
	}

	store := usecase.NewDocumentStore(records, cfg.Store.MaxAttempts, log)
	documents := usecase.NewDocumentUseCase(store, uploader, publisher, quotesCache, log)
	quotePayments := usecase.NewQuotePaymentUseCase(paymentsRepo, store, gateway, usecase.PaymentOptions{
		MockMode:           cfg.Payments.Mock,
		AccessToken:        cfg.Payments.AccessToken,
		SandboxPayerEmail:  cfg.Payments.TestPayerEmail,
		SandboxPayerUserID: cfg.Payments.TestPayerUserID,
	}, log)

	a.handlers = routes.Handlers{
		Documents: handlers.NewDocumentHandler(documents, log),
		Payments:  handlers.NewQuotePaymentHandler(quotePayments, cfg.Payments.Mock, log),
	}
	return a, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, log *logger.Logger) (interfaces.IServiceRecordRepository, interfaces.IQuotePaymentRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		return repository.NewServiceRecordDynamoRepository(ddb, cfg.DynamoDB.ServicesTable, log),
			repository.NewQuotePaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable), nil
	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		db, err := database.ConnectGorm(cfg.Store.Driver, cfg.SQL, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.SQL.AutoMigrate {
			if err := repository.MigrateGorm(ctx, db); err != nil {
				return nil, nil, err
			}
		}
		return repository.NewServiceRecordGormRepository(db, log), repository.NewQuotePaymentGormRepository(db), nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

func buildUploader(ctx context.Context, cfg config.UploadsConfig, log *logger.Logger, a *app) (interfaces.IFileUploader, error) {
	switch cfg.Driver {
	case config.UploadDriverGCS:
		u, err := storage.NewGCSUploader(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, u)
		return u, nil
	default:
		u, err := storage.NewLocalUploader(cfg.Dir, cfg.PublicPath, log)
		if err != nil {
			return nil, err
		}
		return u, nil
	}
}
