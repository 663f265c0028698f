package usecase

import (
	"context"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"go.uber.org/zap"
)

var (
	ErrSalesOrderNotFound      = pkg.Kind(pkg.ErrNotFound, "sales order not found")
	ErrInvalidSalesOrderID     = pkg.Kind(pkg.ErrValidation, "invalid sales order id")
	ErrInvalidSalesOrderStatus = pkg.Kind(pkg.ErrValidation, "invalid sales order status")
)

type ISalesOrderUseCase interface {
	List(ctx context.Context, p entities.Principal, status entities.SalesOrderStatus) ([]entities.SalesOrder, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.SalesOrder, error)
	CheckStock(ctx context.Context, p entities.Principal, id string) (entities.SalesOrder, entities.StockReport, error)
}

type SalesOrderUseCase struct {
	repo      interfaces.ISalesOrderRepository
	equipment interfaces.IEquipmentRepository
	log       *zap.Logger
	now       func() time.Time
}

var _ ISalesOrderUseCase = (*SalesOrderUseCase)(nil)

func NewSalesOrderUseCase(repo interfaces.ISalesOrderRepository, equipment interfaces.IEquipmentRepository, log *zap.Logger) *SalesOrderUseCase {
	return &SalesOrderUseCase{repo: repo, equipment: equipment, log: log.Named("pipeline"), now: time.Now}
}

func (u *SalesOrderUseCase) List(ctx context.Context, p entities.Principal, status entities.SalesOrderStatus) ([]entities.SalesOrder, error) {
	if err := authorize(p, entities.RoleSales, entities.RoleWarehouse, entities.RoleFinance); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.SalesOrderStatusDraft, entities.SalesOrderStatusPendingApproval, entities.SalesOrderStatusApproved,
		entities.SalesOrderStatusProcessing, entities.SalesOrderStatusDispatched, entities.SalesOrderStatusPendingContractApproval,
		entities.SalesOrderStatusCompleted, entities.SalesOrderStatusCancelled:
	default:
		return nil, ErrInvalidSalesOrderStatus
	}
	return u.repo.List(ctx, status)
}

func (u *SalesOrderUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.SalesOrder, error) {
	if err := authorize(p, entities.RoleSales, entities.RoleWarehouse, entities.RoleFinance); err != nil {
		return entities.SalesOrder{}, err
	}
	return findSalesOrder(ctx, u.repo, id)
}

// CheckStock compares every order line with the available quantity of the
// matching equipment. Nothing is reserved.
func (u *SalesOrderUseCase) CheckStock(ctx context.Context, p entities.Principal, id string) (entities.SalesOrder, entities.StockReport, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.SalesOrder{}, entities.StockReport{}, err
	}
	so, err := findSalesOrder(ctx, u.repo, id)
	if err != nil {
		return entities.SalesOrder{}, entities.StockReport{}, err
	}
	stock, err := u.equipment.List(ctx)
	if err != nil {
		return entities.SalesOrder{}, entities.StockReport{}, err
	}

	report := BuildStockReport(so, stock)
	updated, err := u.repo.MarkStockChecked(ctx, so.ID, report.StockAvailable)
	if err != nil {
		return entities.SalesOrder{}, entities.StockReport{}, err
	}
	if updated.ID == "" {
		return entities.SalesOrder{}, entities.StockReport{}, ErrSalesOrderNotFound
	}
	u.log.Info("stock checked", zap.String("sales_order_id", so.SalesOrderID), zap.Bool("available", report.StockAvailable))
	return updated, report, nil
}

// BuildStockReport matches order lines to equipment by item code first and
// description second, case-insensitively. Unmatched lines are insufficient.
func BuildStockReport(so entities.SalesOrder, stock []entities.Equipment) entities.StockReport {
	byCode := make(map[string]entities.Equipment, len(stock))
	byDescription := make(map[string]entities.Equipment, len(stock))
	for _, e := range stock {
		if code := strings.ToLower(strings.TrimSpace(e.ItemCode)); code != "" {
			byCode[code] = e
		}
		if desc := strings.ToLower(strings.TrimSpace(e.Description)); desc != "" {
			if _, dup := byDescription[desc]; !dup {
				byDescription[desc] = e
			}
		}
	}

	report := entities.StockReport{SalesOrderID: so.SalesOrderID, StockAvailable: len(so.Items) > 0}
	for _, it := range so.Items {
		name := strings.ToLower(strings.TrimSpace(it.Equipment))
		line := entities.StockLine{Equipment: it.Equipment, Requested: it.RequestedQuantity()}

		e, ok := byCode[name]
		if !ok {
			e, ok = byDescription[name]
		}
		if ok {
			line.EquipmentID = e.ID
			line.Available = e.QuantityAvailable
			line.Sufficient = e.QuantityAvailable >= line.Requested
		}
		if !line.Sufficient {
			report.StockAvailable = false
		}
		report.Lines = append(report.Lines, line)
	}
	return report
}

// findSalesOrder resolves a sales order by store key or SO business id.
func findSalesOrder(ctx context.Context, repo interfaces.ISalesOrderRepository, id string) (entities.SalesOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SalesOrder{}, ErrInvalidSalesOrderID
	}
	so, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if so.ID == "" {
		if so, err = repo.GetBySalesOrderID(ctx, id); err != nil {
			return entities.SalesOrder{}, err
		}
	}
	if so.ID == "" {
		return entities.SalesOrder{}, ErrSalesOrderNotFound
	}
	return so, nil
}
