package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"go.uber.org/zap"
)

var (
	ErrLeadNotFound          = pkg.Kind(pkg.ErrNotFound, "lead not found")
	ErrInvalidLeadID         = pkg.Kind(pkg.ErrValidation, "invalid lead id")
	ErrInvalidLeadStatus     = pkg.Kind(pkg.ErrValidation, "invalid lead status")
	ErrInvalidInteraction    = pkg.Kind(pkg.ErrValidation, "invalid lead interaction")
	ErrLeadAlreadyConverted  = pkg.Kind(pkg.ErrConflict, "lead already converted to a deal")
	errLeadSyncNotConfigured = errors.New("lead synchroniser not configured")
)

const leadSourceEnquiry = "Enquiry"

var (
	canonicalEnquiryIDPattern = regexp.MustCompile(`^ENQ-\d{4}-\d{4,}$`)
	legacyRentalIDPattern     = regexp.MustCompile(`^RC-(\d{4})-(\d+)$`)
)

// CanonicalEnquiryID is the enquiry id a lead refers to. ENQ ids are kept,
// legacy RC-YYYY-NNN ids are rewritten to ENQ-YYYY-NNNN and anything else is
// synthesised from the creation year and the store key.
func CanonicalEnquiryID(e entities.Enquiry, now time.Time) string {
	id := strings.TrimSpace(e.EnquiryID)
	if canonicalEnquiryIDPattern.MatchString(id) {
		return id
	}
	if m := legacyRentalIDPattern.FindStringSubmatch(id); m != nil {
		year, _ := strconv.Atoi(m[1])
		seq, _ := strconv.ParseInt(m[2], 10, 64)
		return FormatBusinessID(PrefixEnquiry, year, seq)
	}

	year := now.Year()
	if !e.CreatedAt.IsZero() {
		year = e.CreatedAt.Year()
	}
	key := e.ID
	if len(key) > 4 {
		key = key[:4]
	}
	return fmt.Sprintf("%s-%d-%s", PrefixEnquiry, year, key)
}

// LeadSyncReport summarises a reconciliation sweep.
type LeadSyncReport struct {
	Scanned  int `json:"scanned"`
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// ILeadSyncer keeps exactly one lead per enquiry.
type ILeadSyncer interface {
	// EnsureLead returns the lead of e, creating it when missing. Enquiries
	// without an email are skipped and yield a zero lead.
	EnsureLead(ctx context.Context, e entities.Enquiry) (lead entities.Lead, created bool, err error)
}

type ILeadUseCase interface {
	ILeadSyncer
	SyncLeadsForEnquiries(ctx context.Context, p entities.Principal) (LeadSyncReport, error)
	List(ctx context.Context, p entities.Principal, status entities.LeadStatus) ([]entities.Lead, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Lead, error)
	UpdateStatus(ctx context.Context, p entities.Principal, id string, status entities.LeadStatus) (entities.Lead, error)
	ConvertToDeal(ctx context.Context, p entities.Principal, id string) (entities.Lead, error)
	AddInteraction(ctx context.Context, p entities.Principal, leadID string, in entities.LeadInteraction) (entities.LeadInteraction, error)
	ListInteractions(ctx context.Context, p entities.Principal, leadID string, kind entities.InteractionKind) ([]entities.LeadInteraction, error)
	Delete(ctx context.Context, p entities.Principal, id string) error
}

type LeadUseCase struct {
	leads        interfaces.ILeadRepository
	interactions interfaces.ILeadInteractionRepository
	enquiries    interfaces.IEnquiryRepository
	ids          IIDMinter
	log          *zap.Logger
	now          func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	leads interfaces.ILeadRepository,
	interactions interfaces.ILeadInteractionRepository,
	enquiries interfaces.IEnquiryRepository,
	ids IIDMinter,
	log *zap.Logger,
) *LeadUseCase {
	return &LeadUseCase{
		leads:        leads,
		interactions: interactions,
		enquiries:    enquiries,
		ids:          ids,
		log:          log.Named("leads"),
		now:          time.Now,
	}
}

func (u *LeadUseCase) EnsureLead(ctx context.Context, e entities.Enquiry) (entities.Lead, bool, error) {
	if u == nil || u.leads == nil {
		return entities.Lead{}, false, errLeadSyncNotConfigured
	}
	email := strings.TrimSpace(e.LeadEmail())
	if email == "" {
		return entities.Lead{}, false, nil
	}

	now := u.now().UTC()
	enquiryID := CanonicalEnquiryID(e, now)
	existing, err := u.leads.GetByEnquiryID(ctx, enquiryID)
	if err != nil {
		return entities.Lead{}, false, err
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	leadID, err := u.ids.Next(ctx, PrefixLead)
	if err != nil {
		return entities.Lead{}, false, err
	}

	first, last := splitName(firstNonEmpty(e.CustomerName, e.ContactPerson, email))
	by := firstNonEmpty(e.CreatedBy, "system")
	lead := entities.Lead{
		ID:           documentKey(keyLead, enquiryID),
		LeadID:       leadID,
		EnquiryID:    enquiryID,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Mobile:       firstNonEmpty(e.CustomerPhone, e.ContactPhone),
		Organization: e.Company,
		Source:       leadSourceEnquiry,
		Status:       entities.LeadStatusNew,
		Activities: []entities.LeadActivity{{
			Type:        entities.LeadActivityCreated,
			Description: fmt.Sprintf("Lead created from enquiry %s", enquiryID),
			By:          by,
			Timestamp:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.leads.Create(ctx, lead)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		// Someone else created it first.
		winner, err := u.leads.GetByID(ctx, lead.ID)
		return winner, false, err
	}
	if err != nil {
		return entities.Lead{}, false, err
	}
	u.log.Info("lead created", zap.String("lead_id", created.LeadID), zap.String("enquiry_id", enquiryID))
	return created, true, nil
}

// SyncLeadsForEnquiries walks every enquiry and creates the missing leads.
// It is safe to run repeatedly and alongside enquiry creation.
func (u *LeadUseCase) SyncLeadsForEnquiries(ctx context.Context, p entities.Principal) (LeadSyncReport, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return LeadSyncReport{}, err
	}

	enquiries, err := u.enquiries.List(ctx, interfaces.EnquiryFilter{})
	if err != nil {
		return LeadSyncReport{}, err
	}

	var report LeadSyncReport
	for _, e := range enquiries {
		report.Scanned++
		lead, created, err := u.EnsureLead(ctx, e)
		switch {
		case err != nil:
			report.Failed++
			u.log.Warn("lead sync failed", zap.String("enquiry", e.ID), zap.Error(err))
		case created:
			report.Created++
		case lead.ID == "":
			report.Skipped++
		default:
			report.Existing++
		}
	}
	u.log.Info("lead sync finished",
		zap.Int("scanned", report.Scanned),
		zap.Int("created", report.Created),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (u *LeadUseCase) List(ctx context.Context, p entities.Principal, status entities.LeadStatus) ([]entities.Lead, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidLeadStatus
	}
	return u.leads.List(ctx, status)
}

func (u *LeadUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Lead, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Lead{}, err
	}
	return u.find(ctx, id)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, p entities.Principal, id string, status entities.LeadStatus) (entities.Lead, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Lead{}, err
	}
	if !status.Valid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}
	lead, err := u.find(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	activity := entities.LeadActivity{
		Type:        entities.LeadActivityStatusChange,
		Description: fmt.Sprintf("Status changed from %s to %s", lead.Status, status),
		By:          p.Actor(),
		Timestamp:   u.now().UTC(),
	}
	updated, err := u.leads.UpdateStatus(ctx, lead.ID, status, activity)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

func (u *LeadUseCase) ConvertToDeal(ctx context.Context, p entities.Principal, id string) (entities.Lead, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Lead{}, err
	}
	lead, err := u.find(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ConvertedToDeal {
		return entities.Lead{}, ErrLeadAlreadyConverted
	}

	now := u.now().UTC()
	activity := entities.LeadActivity{
		Type:        entities.LeadActivityConversion,
		Description: "Lead converted to deal",
		By:          p.Actor(),
		Timestamp:   now,
	}
	converted, err := u.leads.Convert(ctx, lead.ID, now, activity)
	if err != nil {
		return entities.Lead{}, err
	}
	if converted.ID == "" {
		return entities.Lead{}, ErrLeadAlreadyConverted
	}
	u.log.Info("lead converted", zap.String("lead_id", converted.LeadID), zap.String("by", p.Actor()))
	return converted, nil
}

// AddInteraction logs a note, call, task or email and records it on the
// lead's activity log.
func (u *LeadUseCase) AddInteraction(ctx context.Context, p entities.Principal, leadID string, in entities.LeadInteraction) (entities.LeadInteraction, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.LeadInteraction{}, err
	}
	if !in.Kind.Valid() {
		return entities.LeadInteraction{}, ErrInvalidInteraction
	}
	in.Subject = strings.TrimSpace(in.Subject)
	in.Content = strings.TrimSpace(in.Content)
	if in.Subject == "" && in.Content == "" {
		return entities.LeadInteraction{}, ErrInvalidInteraction
	}
	lead, err := u.find(ctx, leadID)
	if err != nil {
		return entities.LeadInteraction{}, err
	}

	now := u.now().UTC()
	in.ID = newKey()
	in.LeadID = lead.LeadID
	in.CreatedBy = p.Actor()
	in.CreatedAt = now
	created, err := u.interactions.Create(ctx, in)
	if err != nil {
		return entities.LeadInteraction{}, err
	}

	activity := entities.LeadActivity{
		Type:        string(in.Kind),
		Description: firstNonEmpty(in.Subject, in.Content),
		By:          p.Actor(),
		Timestamp:   now,
	}
	if _, err := u.leads.AppendActivity(ctx, lead.ID, activity); err != nil {
		u.log.Warn("lead activity append failed", zap.String("lead_id", lead.LeadID), zap.Error(err))
	}
	return created, nil
}

func (u *LeadUseCase) ListInteractions(ctx context.Context, p entities.Principal, leadID string, kind entities.InteractionKind) ([]entities.LeadInteraction, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, ErrInvalidInteraction
	}
	lead, err := u.find(ctx, leadID)
	if err != nil {
		return nil, err
	}
	return u.interactions.ListByLead(ctx, kind, lead.LeadID)
}

func (u *LeadUseCase) Delete(ctx context.Context, p entities.Principal, id string) error {
	if err := authorize(p); err != nil {
		return err
	}
	lead, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := u.leads.Delete(ctx, lead.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}

// find resolves a lead by store key or LEAD business id.
func (u *LeadUseCase) find(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		if lead, err = u.leads.GetByLeadID(ctx, id); err != nil {
			return entities.Lead{}, err
		}
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
