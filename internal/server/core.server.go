package server

import (
	"context"
	"log"
	"net"

	"freight-backoffice/internal/config"
	"freight-backoffice/internal/domain"
	hrest "freight-backoffice/internal/handler/rest"
	publisher "freight-backoffice/internal/pub"
	"freight-backoffice/internal/repository"
	"freight-backoffice/internal/service"
	"freight-backoffice/internal/usecase"
	"freight-backoffice/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func NewBackofficeServer(cfg config.AppConfig) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// --- DB connection ---
	dbpool, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// --- Redis client ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	// --- Event publisher ---
	pub := publisher.NewDocumentEventPublisher(cfg.KafkaBrokers, logger)
	defer pub.Close()

	refs := utils.NewReferenceGenerator()
	currencies := domain.DefaultCurrencyTable()

	// --- Repositories ---
	customerRepo := repository.NewCustomerRepo(dbpool)
	vendorRepo := repository.NewVendorRepo(dbpool)
	invoiceRepo := repository.NewInvoiceRepo(dbpool)
	expenseRepo := repository.NewExpenseRepo(dbpool)
	billRepo := repository.NewVendorBillRepo(dbpool)
	shipmentRepo := repository.NewShipmentRepo(dbpool)
	accountRepo := repository.NewAccountRepo(dbpool)

	// --- Usecases ---
	partyUC := usecase.NewPartyUsecase(customerRepo, vendorRepo, rdb)
	invoiceUC := usecase.NewInvoiceUsecase(invoiceRepo, rdb, pub, refs)
	expenseUC := usecase.NewExpenseUsecase(expenseRepo, billRepo, rdb, pub, refs)
	shipmentUC := usecase.NewShipmentUsecase(shipmentRepo, rdb, pub, refs)
	ledgerUC := usecase.NewLedgerUsecase(invoiceRepo, expenseRepo, billRepo, currencies, rdb)
	statementUC := usecase.NewStatementUsecase(accountRepo, rdb)
	currencyUC := usecase.NewCurrencyUsecase(currencies, rdb)

	// --- Seed chart of accounts in a goroutine (non-blocking) ---
	seeder := service.NewSystemSeeder(accountRepo, logger)
	go func() {
		if err := seeder.SeedSystem(context.Background()); err != nil {
			logger.Warn("system seeding failed", zap.Error(err))
		}
	}()

	// --- REST handler ---
	restHandler := hrest.NewBackofficeRestHandler(
		partyUC, invoiceUC, expenseUC, shipmentUC, ledgerUC, statementUC, currencyUC)
	go restHandler.Start(cfg.HTTPAddr)

	// --- gRPC server (health + reflection for orchestration probes) ---
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	log.Printf("Backoffice gRPC server listening on %s", cfg.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("gRPC server failed: %v", err)
	}
}
