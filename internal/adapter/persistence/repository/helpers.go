package repository

import (
	"context"
	"errors"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Collection names.
const (
	CollectionRentals            = "rentals"
	CollectionEnquiries          = "enquiries"
	CollectionQuotations         = "quotations"
	CollectionSalesOrders        = "sales_orders"
	CollectionContracts          = "contracts"
	CollectionInvoices           = "invoices"
	CollectionPayments           = "payments"
	CollectionEquipment          = "equipment"
	CollectionEquipmentHistory   = "equipment_history"
	CollectionEquipmentDispatch  = "equipment_dispatch"
	CollectionEquipmentReturns   = "equipment_returns"
	CollectionPendingAdjustments = "pending_adjustments"
	CollectionDispatches         = "dispatches"
	CollectionLeads              = "leads"
	CollectionLeadNotes          = "lead_notes"
	CollectionLeadCalls          = "lead_calls"
	CollectionLeadTasks          = "lead_tasks"
	CollectionLeadEmails         = "lead_emails"
	CollectionAuditLog           = "audit_log"
)

// AllCollections lists every collection the repositories use.
func AllCollections() []string {
	return []string{
		CollectionRentals, CollectionEnquiries, CollectionQuotations, CollectionSalesOrders,
		CollectionContracts, CollectionInvoices, CollectionPayments, CollectionEquipment,
		CollectionEquipmentHistory, CollectionEquipmentDispatch, CollectionEquipmentReturns,
		CollectionPendingAdjustments, CollectionDispatches, CollectionLeads, CollectionLeadNotes,
		CollectionLeadCalls, CollectionLeadTasks, CollectionLeadEmails, CollectionAuditLog,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatMoney(d decimal.Decimal) string {
	return d.String()
}

func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// findOne decodes the first match of f and converts it; the zero value is
// returned when nothing matches.
func findOne[I any, E any](ctx context.Context, coll docstore.Collection, f docstore.Filter, conv func(I) E) (E, error) {
	var (
		it   I
		zero E
	)
	found, err := coll.FindOne(ctx, f, &it)
	if err != nil || !found {
		return zero, err
	}
	return conv(it), nil
}

func findAll[I any, E any](ctx context.Context, coll docstore.Collection, f docstore.Filter, conv func(I) E) ([]E, error) {
	var items []I
	if err := coll.Find(ctx, f, &items); err != nil {
		return nil, err
	}
	out := make([]E, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return out, nil
}

func insertOne(ctx context.Context, coll docstore.Collection, item any) error {
	err := coll.InsertOne(ctx, item)
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

// updateOne applies u when f holds and returns the updated document, or the
// zero value when the condition failed.
func updateOne[I any, E any](ctx context.Context, coll docstore.Collection, f docstore.Filter, u *docstore.Update, conv func(I) E) (E, error) {
	var (
		it   I
		zero E
	)
	err := coll.UpdateOne(ctx, f, u, &it)
	if errors.Is(err, docstore.ErrNoMatch) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return conv(it), nil
}

// businessIDs implements interfaces.IBusinessIDSource over one attribute.
type businessIDs struct {
	colls []docstore.Collection
	field string
}

func (b businessIDs) ListBusinessIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, coll := range b.colls {
		var rows []map[string]any
		if err := coll.Find(ctx, nil, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if s, ok := row[b.field].(string); ok && s != "" {
				ids = append(ids, s)
			}
		}
	}
	return ids, nil
}

func (b businessIDs) BusinessIDExists(ctx context.Context, id string) (bool, error) {
	for _, coll := range b.colls {
		n, err := coll.CountDocuments(ctx, docstore.Where(docstore.Eq(b.field, id)))
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func statusFilter[S ~string](field string, status S) docstore.Filter {
	if status == "" {
		return nil
	}
	return docstore.Where(docstore.Eq(field, status))
}
