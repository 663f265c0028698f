package repository

import (
	"context"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type contractItem struct {
	ID              string     `dynamodbav:"id"`
	ContractID      string     `dynamodbav:"contract_id"`
	SalesOrderID    string     `dynamodbav:"sales_order_id"`
	QuotationID     string     `dynamodbav:"quotation_id"`
	CustomerID      string     `dynamodbav:"customer_id"`
	CustomerName    string     `dynamodbav:"customer_name"`
	Company         string     `dynamodbav:"company"`
	Project         string     `dynamodbav:"project"`
	Items           []lineItem `dynamodbav:"items"`
	Amount          string     `dynamodbav:"amount"`
	Status          string     `dynamodbav:"status"`
	ApprovalStatus  string     `dynamodbav:"approval_status"`
	StartDate       string     `dynamodbav:"start_date"`
	EndDate         string     `dynamodbav:"end_date"`
	StockChecked    bool       `dynamodbav:"stock_checked"`
	StockAvailable  bool       `dynamodbav:"stock_available"`
	InvoiceKey      string     `dynamodbav:"invoice_key"`
	DecidedBy       string     `dynamodbav:"decided_by"`
	DecidedAt       string     `dynamodbav:"decided_at"`
	RejectionReason string     `dynamodbav:"rejection_reason"`
	CreatedBy       string     `dynamodbav:"created_by"`
	CreatedAt       string     `dynamodbav:"created_at"`
	UpdatedAt       string     `dynamodbav:"updated_at"`
}

// ContractRepository stores contracts. Approval decisions are conditional on
// approval_status still being pending.
type ContractRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.IContractRepository = (*ContractRepository)(nil)

func NewContractRepository(store docstore.Store) *ContractRepository {
	coll := store.Collection(CollectionContracts)
	return &ContractRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "contract_id"},
	}
}

func (r *ContractRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := insertOne(ctx, r.coll, toContractItem(c)); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromContractItem)
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (entities.Contract, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("contract_id", contractID)), fromContractItem)
}

// GetBySalesOrderID returns the pending or approved contract of a sales
// order. Rejected contracts are ignored.
func (r *ContractRepository) GetBySalesOrderID(ctx context.Context, salesOrderID string) (entities.Contract, error) {
	f := docstore.Where(
		docstore.Eq("sales_order_id", salesOrderID),
		docstore.In("approval_status", entities.ApprovalStatusPending, entities.ApprovalStatusApproved),
	)
	return findOne(ctx, r.coll, f, fromContractItem)
}

func (r *ContractRepository) List(ctx context.Context, approval entities.ApprovalStatus) ([]entities.Contract, error) {
	return findAll(ctx, r.coll, statusFilter("approval_status", approval), fromContractItem)
}

func (r *ContractRepository) Approve(ctx context.Context, id string, t interfaces.Transition, invoiceKey string) (entities.Contract, error) {
	u := docstore.NewUpdate().
		Set("approval_status", entities.ApprovalStatusApproved).
		Set("status", entities.ContractStatusActive).
		Set("invoice_key", invoiceKey).
		Set("decided_by", t.By).
		Set("decided_at", formatTime(t.At)).
		Set("updated_at", formatTime(t.At))
	return updateOne(ctx, r.coll, r.pending(id), u, fromContractItem)
}

func (r *ContractRepository) Reject(ctx context.Context, id string, t interfaces.Transition) (entities.Contract, error) {
	u := docstore.NewUpdate().
		Set("approval_status", entities.ApprovalStatusRejected).
		Set("status", entities.ContractStatusRejected).
		Set("decided_by", t.By).
		Set("decided_at", formatTime(t.At)).
		Set("rejection_reason", t.Reason).
		Set("updated_at", formatTime(t.At))
	return updateOne(ctx, r.coll, r.pending(id), u, fromContractItem)
}

func (r *ContractRepository) pending(id string) docstore.Filter {
	return docstore.ByID(id).And(docstore.Eq("approval_status", entities.ApprovalStatusPending))
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:              c.ID,
		ContractID:      c.ContractID,
		SalesOrderID:    c.SalesOrderID,
		QuotationID:     c.QuotationID,
		CustomerID:      c.CustomerID,
		CustomerName:    c.CustomerName,
		Company:         c.Company,
		Project:         c.Project,
		Items:           toLineItems(c.Items),
		Amount:          formatMoney(c.Amount),
		Status:          string(c.Status),
		ApprovalStatus:  string(c.ApprovalStatus),
		StartDate:       formatTime(c.StartDate),
		EndDate:         formatTime(c.EndDate),
		StockChecked:    c.StockChecked,
		StockAvailable:  c.StockAvailable,
		InvoiceKey:      c.InvoiceKey,
		DecidedBy:       c.DecidedBy,
		DecidedAt:       formatTime(c.DecidedAt),
		RejectionReason: c.RejectionReason,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:              it.ID,
		ContractID:      it.ContractID,
		SalesOrderID:    it.SalesOrderID,
		QuotationID:     it.QuotationID,
		CustomerID:      it.CustomerID,
		CustomerName:    it.CustomerName,
		Company:         it.Company,
		Project:         it.Project,
		Items:           fromLineItems(it.Items),
		Amount:          parseMoney(it.Amount),
		Status:          entities.ContractStatus(it.Status),
		ApprovalStatus:  entities.ApprovalStatus(it.ApprovalStatus),
		StartDate:       parseTime(it.StartDate),
		EndDate:         parseTime(it.EndDate),
		StockChecked:    it.StockChecked,
		StockAvailable:  it.StockAvailable,
		InvoiceKey:      it.InvoiceKey,
		DecidedBy:       it.DecidedBy,
		DecidedAt:       parseTime(it.DecidedAt),
		RejectionReason: it.RejectionReason,
		CreatedBy:       it.CreatedBy,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
