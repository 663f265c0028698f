package usecase

import (
	"testing"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/adapter/persistence/repository"
	"rental_backend/internal/domain/entities"

	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

var (
	adminUser     = entities.Principal{ID: "u-admin", Email: "admin@rental.test", Role: entities.RoleAdmin, Name: "Admin"}
	salesUser     = entities.Principal{ID: "u-sales", Email: "sales@rental.test", Role: entities.RoleSales, Name: "Sam Sales"}
	warehouseUser = entities.Principal{ID: "u-wh", Email: "wh@rental.test", Role: entities.RoleWarehouse, Name: "Wendy"}
	financeUser   = entities.Principal{ID: "u-fin", Email: "fin@rental.test", Role: entities.RoleFinance, Name: "Fin"}
	customerUser  = entities.Principal{ID: "c-1", Email: "a@b.com", Role: entities.RoleCustomer, Name: "Alice Buyer"}
)

// fixture wires every use case over one in-memory store.
type fixture struct {
	store *docstore.MemoryStore
	ids   *IDMinter

	enquiryRepo   *repository.EnquiryRepository
	quotationRepo *repository.QuotationRepository
	orderRepo     *repository.SalesOrderRepository
	contractRepo  *repository.ContractRepository
	invoiceRepo   *repository.InvoiceRepository
	paymentRepo   *repository.PaymentRepository
	equipmentRepo *repository.EquipmentRepository
	historyRepo   *repository.EquipmentHistoryRepository
	pendingRepo   *repository.PendingAdjustmentRepository
	unitRepo      *repository.EquipmentDispatchRepository
	returnRepo    *repository.EquipmentReturnRepository
	dispatchRepo  *repository.OrderDispatchRepository
	leadRepo      *repository.LeadRepository
	auditRepo     *repository.AuditLogRepository

	leads      *LeadUseCase
	enquiries  *EnquiryUseCase
	quotations *QuotationUseCase
	orders     *SalesOrderUseCase
	contracts  *ContractUseCase
	audit      *AuditUseCase
	inventory  *InventoryUseCase
	warehouse  *WarehouseUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()
	store := docstore.NewMemoryStore()
	clock := func() time.Time { return testNow }

	f := &fixture{
		store:         store,
		ids:           newTestMinter(testNow),
		enquiryRepo:   repository.NewEnquiryRepository(store),
		quotationRepo: repository.NewQuotationRepository(store),
		orderRepo:     repository.NewSalesOrderRepository(store),
		contractRepo:  repository.NewContractRepository(store),
		invoiceRepo:   repository.NewInvoiceRepository(store),
		paymentRepo:   repository.NewPaymentRepository(store),
		equipmentRepo: repository.NewEquipmentRepository(store),
		historyRepo:   repository.NewEquipmentHistoryRepository(store),
		pendingRepo:   repository.NewPendingAdjustmentRepository(store),
		unitRepo:      repository.NewEquipmentDispatchRepository(store),
		returnRepo:    repository.NewEquipmentReturnRepository(store),
		dispatchRepo:  repository.NewOrderDispatchRepository(store),
		leadRepo:      repository.NewLeadRepository(store),
		auditRepo:     repository.NewAuditLogRepository(store),
	}
	f.ids.Register(PrefixEnquiry, f.enquiryRepo)
	f.ids.Register(PrefixQuotation, f.quotationRepo)
	f.ids.Register(PrefixSalesOrder, f.orderRepo)
	f.ids.Register(PrefixContract, f.contractRepo)
	f.ids.Register(PrefixInvoice, f.invoiceRepo)
	f.ids.Register(PrefixLead, f.leadRepo)
	f.ids.Register(PrefixDispatch, f.dispatchRepo)

	f.leads = NewLeadUseCase(f.leadRepo, repository.NewLeadInteractionRepository(store), f.enquiryRepo, f.ids, log)
	f.leads.now = clock
	f.enquiries = NewEnquiryUseCase(f.enquiryRepo, f.leads, f.ids, log)
	f.enquiries.now = clock
	f.quotations = NewQuotationUseCase(f.quotationRepo, f.orderRepo, f.enquiryRepo, f.ids, log)
	f.quotations.now = clock
	f.orders = NewSalesOrderUseCase(f.orderRepo, f.equipmentRepo, log)
	f.orders.now = clock
	f.audit = NewAuditUseCase(f.auditRepo, log)
	f.audit.now = clock
	f.contracts = NewContractUseCase(f.contractRepo, f.orderRepo, f.invoiceRepo, f.audit, f.ids, DefaultBillingPolicy(), log)
	f.contracts.now = clock
	f.inventory = NewInventoryUseCase(f.equipmentRepo, f.historyRepo, f.pendingRepo, f.unitRepo, f.returnRepo, f.enquiryRepo, log)
	f.inventory.now = clock
	f.warehouse = NewWarehouseUseCase(f.orderRepo, f.dispatchRepo, f.inventory, f.ids, log)
	f.warehouse.now = clock
	return f
}
