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
	ErrEnquiryNotFound      = pkg.Kind(pkg.ErrNotFound, "enquiry not found")
	ErrInvalidEnquiryID     = pkg.Kind(pkg.ErrValidation, "invalid enquiry id")
	ErrInvalidEnquiryStatus = pkg.Kind(pkg.ErrValidation, "invalid enquiry status")
	ErrInvalidEnquiryDates  = pkg.Kind(pkg.ErrValidation, "end date must not be before start date")
	ErrEnquiryNotExtendable = pkg.Kind(pkg.ErrConflict, "enquiry cannot be extended in its current status")
)

// IEnquiryUseCase covers customer enquiries and rentals.
type IEnquiryUseCase interface {
	Create(ctx context.Context, p entities.Principal, e entities.Enquiry) (entities.Enquiry, error)
	List(ctx context.Context, p entities.Principal, status entities.EnquiryStatus) ([]entities.Enquiry, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Enquiry, error)
	UpdateStatus(ctx context.Context, p entities.Principal, id string, status entities.EnquiryStatus, assigneeID, assigneeName string) (entities.Enquiry, error)
	Extend(ctx context.Context, p entities.Principal, id string, endDate time.Time, reason string) (entities.Enquiry, error)
}

type EnquiryUseCase struct {
	repo  interfaces.IEnquiryRepository
	leads ILeadSyncer
	ids   IIDMinter
	log   *zap.Logger
	now   func() time.Time
}

var _ IEnquiryUseCase = (*EnquiryUseCase)(nil)

func NewEnquiryUseCase(repo interfaces.IEnquiryRepository, leads ILeadSyncer, ids IIDMinter, log *zap.Logger) *EnquiryUseCase {
	return &EnquiryUseCase{repo: repo, leads: leads, ids: ids, log: log.Named("pipeline"), now: time.Now}
}

// Create stores a new enquiry and makes sure it has a CRM lead. Lead sync
// failures are logged and never fail the enquiry.
func (u *EnquiryUseCase) Create(ctx context.Context, p entities.Principal, e entities.Enquiry) (entities.Enquiry, error) {
	if err := authorize(p, entities.RoleCustomer, entities.RoleSales); err != nil {
		return entities.Enquiry{}, err
	}
	e.EquipmentName = strings.TrimSpace(e.EquipmentName)
	if e.EquipmentName == "" || e.Quantity <= 0 {
		return entities.Enquiry{}, pkg.NewValidationError("equipment_name and a positive quantity are required")
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() || e.EndDate.Before(e.StartDate) {
		return entities.Enquiry{}, ErrInvalidEnquiryDates
	}

	if p.Role == entities.RoleCustomer {
		e.CustomerID = p.ID
		e.CustomerEmail = firstNonEmpty(e.CustomerEmail, p.Email)
		e.CustomerName = firstNonEmpty(e.CustomerName, p.Name)
	}

	enquiryID, err := u.ids.Next(ctx, PrefixEnquiry)
	if err != nil {
		return entities.Enquiry{}, err
	}

	now := u.now().UTC()
	e.ID = newKey()
	e.EnquiryID = enquiryID
	e.Status = entities.EnquiryStatusSubmittedByCustomer
	e.CreatedBy = p.Actor()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Enquiry{}, err
	}
	u.log.Info("enquiry created", zap.String("enquiry_id", created.EnquiryID), zap.String("by", p.Actor()))

	if u.leads != nil {
		if _, _, err := u.leads.EnsureLead(ctx, created); err != nil {
			u.log.Warn("lead sync failed", zap.String("enquiry_id", created.EnquiryID), zap.Error(err))
		}
	}
	return created, nil
}

// List returns enquiries; customers only see their own.
func (u *EnquiryUseCase) List(ctx context.Context, p entities.Principal, status entities.EnquiryStatus) ([]entities.Enquiry, error) {
	if err := authorize(p, entities.RoleCustomer, entities.RoleSales); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidEnquiryStatus
	}
	f := interfaces.EnquiryFilter{Status: status}
	if p.Role == entities.RoleCustomer {
		f.CustomerID = p.ID
	}
	return u.repo.List(ctx, f)
}

func (u *EnquiryUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Enquiry, error) {
	if err := authorize(p, entities.RoleCustomer, entities.RoleSales); err != nil {
		return entities.Enquiry{}, err
	}
	return u.find(ctx, p, id)
}

func (u *EnquiryUseCase) UpdateStatus(ctx context.Context, p entities.Principal, id string, status entities.EnquiryStatus, assigneeID, assigneeName string) (entities.Enquiry, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Enquiry{}, err
	}
	if !status.Valid() {
		return entities.Enquiry{}, ErrInvalidEnquiryStatus
	}
	e, err := u.find(ctx, p, id)
	if err != nil {
		return entities.Enquiry{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, e.ID, status, strings.TrimSpace(assigneeID), strings.TrimSpace(assigneeName))
	if err != nil {
		return entities.Enquiry{}, err
	}
	if updated.ID == "" {
		return entities.Enquiry{}, ErrEnquiryNotFound
	}
	return updated, nil
}

// Extend moves the end date of a running rental.
func (u *EnquiryUseCase) Extend(ctx context.Context, p entities.Principal, id string, endDate time.Time, reason string) (entities.Enquiry, error) {
	if err := authorize(p, entities.RoleCustomer, entities.RoleSales); err != nil {
		return entities.Enquiry{}, err
	}
	e, err := u.find(ctx, p, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	switch e.Status {
	case entities.EnquiryStatusRejected, entities.EnquiryStatusCancelled, entities.EnquiryStatusCompleted:
		return entities.Enquiry{}, ErrEnquiryNotExtendable
	}
	if endDate.IsZero() || endDate.Before(e.StartDate) {
		return entities.Enquiry{}, ErrInvalidEnquiryDates
	}

	updated, err := u.repo.Extend(ctx, e.ID, endDate.UTC(), strings.TrimSpace(reason))
	if err != nil {
		return entities.Enquiry{}, err
	}
	if updated.ID == "" {
		return entities.Enquiry{}, ErrEnquiryNotFound
	}
	u.log.Info("rental extended", zap.String("enquiry_id", updated.EnquiryID), zap.Time("end_date", updated.EndDate))
	return updated, nil
}

func (u *EnquiryUseCase) find(ctx context.Context, p entities.Principal, id string) (entities.Enquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Enquiry{}, ErrInvalidEnquiryID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	if e.ID == "" {
		if e, err = u.repo.GetByEnquiryID(ctx, id); err != nil {
			return entities.Enquiry{}, err
		}
	}
	if e.ID == "" {
		return entities.Enquiry{}, ErrEnquiryNotFound
	}
	if p.Role == entities.RoleCustomer && e.CustomerID != p.ID {
		return entities.Enquiry{}, ErrEnquiryNotFound
	}
	return e, nil
}
