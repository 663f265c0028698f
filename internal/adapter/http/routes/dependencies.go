package routes

import (
	"context"
	"fmt"
	"strings"

	"rental_backend/internal/adapter/http/handlers"
	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/adapter/persistence/repository"
	"rental_backend/internal/infrastructure/config"
	"rental_backend/internal/infrastructure/database"
	"rental_backend/internal/infrastructure/payments"
	"rental_backend/internal/infrastructure/sequence"
	"rental_backend/internal/usecase"
	"rental_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// appHandlers groups every HTTP handler the router mounts.
type appHandlers struct {
	enquiries   *handlers.EnquiryHandler
	quotations  *handlers.QuotationHandler
	salesOrders *handlers.SalesOrderHandler
	contracts   *handlers.ContractHandler
	invoices    *handlers.InvoiceHandler
	inventory   *handlers.InventoryHandler
	warehouse   *handlers.WarehouseHandler
	leads       *handlers.LeadHandler
	audit       *handlers.AuditHandler
}

// openStore returns the document store selected by configuration.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (docstore.Store, error) {
	if cfg.DynamoDB.InMemory {
		log.Warn("using in-memory document store; data is lost on restart")
		return docstore.NewMemoryStore(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	store := docstore.NewDynamoStore(ddb, cfg.DynamoDB.TablePrefix)

	if cfg.DynamoDB.AutoCreateTables {
		names := append(repository.AllCollections(), sequence.CountersCollection)
		if err := store.EnsureCollections(ctx, names...); err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
		log.Info("dynamodb tables ready", zap.Int("tables", len(names)))
	}
	return store, nil
}

// openSequencer picks the counter backend. Redis needs its own client which
// the returned cleanup closes.
func openSequencer(ctx context.Context, cfg *config.Config, store docstore.Store, log *zap.Logger) (interfaces.ISequencer, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Sequence.Backend)) {
	case "redis":
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("using redis sequencer", zap.String("addr", cfg.Redis.Addr))
		return sequence.NewRedisSequencer(rdb), func() {
			if err := rdb.Close(); err != nil {
				log.Warn("close redis", zap.Error(err))
			}
		}, nil
	case "", "dynamodb", "store", "memory":
		return sequence.NewStoreSequencer(store), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown sequence backend %q", cfg.Sequence.Backend)
	}
}

// buildHandlers wires repositories, use cases and handlers together.
func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (*appHandlers, func(), error) {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	seq, closeSeq, err := openSequencer(ctx, cfg, store, log)
	if err != nil {
		return nil, nil, err
	}

	enquiryRepo := repository.NewEnquiryRepository(store)
	quotationRepo := repository.NewQuotationRepository(store)
	orderRepo := repository.NewSalesOrderRepository(store)
	contractRepo := repository.NewContractRepository(store)
	invoiceRepo := repository.NewInvoiceRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)
	equipmentRepo := repository.NewEquipmentRepository(store)
	historyRepo := repository.NewEquipmentHistoryRepository(store)
	pendingRepo := repository.NewPendingAdjustmentRepository(store)
	equipmentDispatchRepo := repository.NewEquipmentDispatchRepository(store)
	returnRepo := repository.NewEquipmentReturnRepository(store)
	dispatchRepo := repository.NewOrderDispatchRepository(store)
	leadRepo := repository.NewLeadRepository(store)
	interactionRepo := repository.NewLeadInteractionRepository(store)
	auditRepo := repository.NewAuditLogRepository(store)

	ids := usecase.NewIDMinter(seq, log)
	ids.Register(usecase.PrefixEnquiry, enquiryRepo)
	ids.Register(usecase.PrefixQuotation, quotationRepo)
	ids.Register(usecase.PrefixSalesOrder, orderRepo)
	ids.Register(usecase.PrefixContract, contractRepo)
	ids.Register(usecase.PrefixInvoice, invoiceRepo)
	ids.Register(usecase.PrefixLead, leadRepo)
	ids.Register(usecase.PrefixDispatch, dispatchRepo)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("payment gateway not configured; invoice payments will fail", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	auditUseCase := usecase.NewAuditUseCase(auditRepo, log)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, interactionRepo, enquiryRepo, ids, log)
	enquiryUseCase := usecase.NewEnquiryUseCase(enquiryRepo, leadUseCase, ids, log)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, orderRepo, enquiryRepo, ids, log)
	salesOrderUseCase := usecase.NewSalesOrderUseCase(orderRepo, equipmentRepo, log)
	contractUseCase := usecase.NewContractUseCase(contractRepo, orderRepo, invoiceRepo, auditUseCase, ids, usecase.BillingPolicy{
		VATRate:  cfg.Billing.VATRate,
		Currency: cfg.Billing.Currency,
		DueDays:  cfg.Billing.DueDays,
	}, log)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, gateway, usecase.PaymentOptions{
		Mock:              cfg.Payments.Mock,
		SandboxPayerEmail: cfg.Payments.SandboxPayerEmail,
	}, log)
	inventoryUseCase := usecase.NewInventoryUseCase(equipmentRepo, historyRepo, pendingRepo, equipmentDispatchRepo, returnRepo, enquiryRepo, log)
	warehouseUseCase := usecase.NewWarehouseUseCase(orderRepo, dispatchRepo, inventoryUseCase, ids, log)

	h := &appHandlers{
		enquiries:   handlers.NewEnquiryHandler(enquiryUseCase),
		quotations:  handlers.NewQuotationHandler(quotationUseCase),
		salesOrders: handlers.NewSalesOrderHandler(salesOrderUseCase),
		contracts:   handlers.NewContractHandler(contractUseCase),
		invoices:    handlers.NewInvoiceHandler(invoiceUseCase, cfg.Payments.Mock, log.Named("http.invoices")),
		inventory:   handlers.NewInventoryHandler(inventoryUseCase, log.Named("http.inventory")),
		warehouse:   handlers.NewWarehouseHandler(warehouseUseCase),
		leads:       handlers.NewLeadHandler(leadUseCase),
		audit:       handlers.NewAuditHandler(auditUseCase),
	}
	return h, closeSeq, nil
}
