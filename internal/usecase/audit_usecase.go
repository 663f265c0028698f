package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Audit actions.
const (
	AuditContractRequested = "contract_requested"
	AuditContractApproved  = "contract_approved"
	AuditContractRejected  = "contract_rejected"
)

// IAuditRecorder appends audit entries. Recording never fails the caller.
type IAuditRecorder interface {
	Record(ctx context.Context, p entities.Principal, action, entityType, entityID string, details map[string]string)
}

type IAuditUseCase interface {
	IAuditRecorder
	List(ctx context.Context, p entities.Principal, entityType, entityID string) ([]entities.AuditEntry, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository, log *zap.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, log: log.Named("audit"), now: time.Now}
}

func (u *AuditUseCase) Record(ctx context.Context, p entities.Principal, action, entityType, entityID string, details map[string]string) {
	if u == nil || u.repo == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:          newKey(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		PerformedBy: p.Actor(),
		Role:        p.Role,
		Details:     details,
		Timestamp:   u.now().UTC(),
	}
	if err := u.repo.Append(ctx, entry); err != nil {
		u.log.Warn("audit append failed", zap.String("action", action), zap.String("entity_id", entityID), zap.Error(err))
	}
}

// List returns matching entries, newest first. Admin only.
func (u *AuditUseCase) List(ctx context.Context, p entities.Principal, entityType, entityID string) ([]entities.AuditEntry, error) {
	if err := authorize(p); err != nil {
		return nil, err
	}
	entries, err := u.repo.List(ctx, strings.TrimSpace(entityType), strings.TrimSpace(entityID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
