package repository

import (
	"context"
	"fmt"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type leadActivityItem struct {
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	By          string `dynamodbav:"by"`
	Timestamp   string `dynamodbav:"timestamp"`
}

type leadItem struct {
	ID              string             `dynamodbav:"id"`
	LeadID          string             `dynamodbav:"lead_id"`
	EnquiryID       string             `dynamodbav:"enquiry_id"`
	FirstName       string             `dynamodbav:"first_name"`
	LastName        string             `dynamodbav:"last_name"`
	Email           string             `dynamodbav:"email"`
	Mobile          string             `dynamodbav:"mobile"`
	Organization    string             `dynamodbav:"organization"`
	Source          string             `dynamodbav:"source"`
	Status          string             `dynamodbav:"status"`
	ConvertedToDeal bool               `dynamodbav:"converted_to_deal"`
	ConvertedAt     string             `dynamodbav:"converted_at"`
	Activities      []leadActivityItem `dynamodbav:"activities"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// LeadRepository stores CRM leads with their activity log inline.
type LeadRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func NewLeadRepository(store docstore.Store) *LeadRepository {
	coll := store.Collection(CollectionLeads)
	return &LeadRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "lead_id"},
	}
}

func (r *LeadRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if err := insertOne(ctx, r.coll, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromLeadItem)
}

func (r *LeadRepository) GetByLeadID(ctx context.Context, leadID string) (entities.Lead, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("lead_id", leadID)), fromLeadItem)
}

func (r *LeadRepository) GetByEnquiryID(ctx context.Context, enquiryID string) (entities.Lead, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("enquiry_id", enquiryID)), fromLeadItem)
}

func (r *LeadRepository) List(ctx context.Context, status entities.LeadStatus) ([]entities.Lead, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromLeadItem)
}

func (r *LeadRepository) CountByEnquiryID(ctx context.Context, enquiryID string) (int, error) {
	return r.coll.CountDocuments(ctx, docstore.Where(docstore.Eq("enquiry_id", enquiryID)))
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, activity entities.LeadActivity) (entities.Lead, error) {
	u := docstore.NewUpdate().
		Set("status", status).
		Set("updated_at", formatTime(activity.Timestamp)).
		Push("activities", toLeadActivityItem(activity))
	return updateOne(ctx, r.coll, docstore.ByID(id), u, fromLeadItem)
}

func (r *LeadRepository) AppendActivity(ctx context.Context, id string, activity entities.LeadActivity) (entities.Lead, error) {
	u := docstore.NewUpdate().
		Set("updated_at", formatTime(activity.Timestamp)).
		Push("activities", toLeadActivityItem(activity))
	return updateOne(ctx, r.coll, docstore.ByID(id), u, fromLeadItem)
}

func (r *LeadRepository) Convert(ctx context.Context, id string, at time.Time, activity entities.LeadActivity) (entities.Lead, error) {
	u := docstore.NewUpdate().
		Set("converted_to_deal", true).
		Set("converted_at", formatTime(at)).
		Set("status", entities.LeadStatusQualified).
		Set("updated_at", formatTime(at)).
		Push("activities", toLeadActivityItem(activity))
	f := docstore.ByID(id).And(docstore.Eq("converted_to_deal", false))
	return updateOne(ctx, r.coll, f, u, fromLeadItem)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.DeleteOne(ctx, docstore.ByID(id))
}

func toLeadActivityItem(a entities.LeadActivity) leadActivityItem {
	return leadActivityItem{
		Type:        a.Type,
		Description: a.Description,
		By:          a.By,
		Timestamp:   formatTime(a.Timestamp),
	}
}

func toLeadItem(l entities.Lead) leadItem {
	activities := make([]leadActivityItem, 0, len(l.Activities))
	for _, a := range l.Activities {
		activities = append(activities, toLeadActivityItem(a))
	}
	return leadItem{
		ID:              l.ID,
		LeadID:          l.LeadID,
		EnquiryID:       l.EnquiryID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Mobile:          l.Mobile,
		Organization:    l.Organization,
		Source:          l.Source,
		Status:          string(l.Status),
		ConvertedToDeal: l.ConvertedToDeal,
		ConvertedAt:     formatTime(l.ConvertedAt),
		Activities:      activities,
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	activities := make([]entities.LeadActivity, 0, len(it.Activities))
	for _, a := range it.Activities {
		activities = append(activities, entities.LeadActivity{
			Type:        a.Type,
			Description: a.Description,
			By:          a.By,
			Timestamp:   parseTime(a.Timestamp),
		})
	}
	return entities.Lead{
		ID:              it.ID,
		LeadID:          it.LeadID,
		EnquiryID:       it.EnquiryID,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Email:           it.Email,
		Mobile:          it.Mobile,
		Organization:    it.Organization,
		Source:          it.Source,
		Status:          entities.LeadStatus(it.Status),
		ConvertedToDeal: it.ConvertedToDeal,
		ConvertedAt:     parseTime(it.ConvertedAt),
		Activities:      activities,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

type leadInteractionItem struct {
	ID        string `dynamodbav:"id"`
	LeadID    string `dynamodbav:"lead_id"`
	Kind      string `dynamodbav:"kind"`
	Subject   string `dynamodbav:"subject"`
	Content   string `dynamodbav:"content"`
	Status    string `dynamodbav:"status"`
	DueDate   string `dynamodbav:"due_date"`
	CreatedBy string `dynamodbav:"created_by"`
	CreatedAt string `dynamodbav:"created_at"`
}

// LeadInteractionRepository keeps each interaction kind in its own collection.
type LeadInteractionRepository struct {
	colls map[entities.InteractionKind]docstore.Collection
}

var _ interfaces.ILeadInteractionRepository = (*LeadInteractionRepository)(nil)

func NewLeadInteractionRepository(store docstore.Store) *LeadInteractionRepository {
	return &LeadInteractionRepository{colls: map[entities.InteractionKind]docstore.Collection{
		entities.InteractionNote:  store.Collection(CollectionLeadNotes),
		entities.InteractionCall:  store.Collection(CollectionLeadCalls),
		entities.InteractionTask:  store.Collection(CollectionLeadTasks),
		entities.InteractionEmail: store.Collection(CollectionLeadEmails),
	}}
}

func (r *LeadInteractionRepository) collection(kind entities.InteractionKind) (docstore.Collection, error) {
	coll, ok := r.colls[kind]
	if !ok {
		return nil, fmt.Errorf("unknown interaction kind %q", kind)
	}
	return coll, nil
}

func (r *LeadInteractionRepository) Create(ctx context.Context, i entities.LeadInteraction) (entities.LeadInteraction, error) {
	coll, err := r.collection(i.Kind)
	if err != nil {
		return entities.LeadInteraction{}, err
	}
	err = insertOne(ctx, coll, leadInteractionItem{
		ID:        i.ID,
		LeadID:    i.LeadID,
		Kind:      string(i.Kind),
		Subject:   i.Subject,
		Content:   i.Content,
		Status:    i.Status,
		DueDate:   formatTime(i.DueDate),
		CreatedBy: i.CreatedBy,
		CreatedAt: formatTime(i.CreatedAt),
	})
	if err != nil {
		return entities.LeadInteraction{}, err
	}
	return i, nil
}

func (r *LeadInteractionRepository) ListByLead(ctx context.Context, kind entities.InteractionKind, leadID string) ([]entities.LeadInteraction, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	return findAll(ctx, coll, docstore.Where(docstore.Eq("lead_id", leadID)), func(it leadInteractionItem) entities.LeadInteraction {
		return entities.LeadInteraction{
			ID:        it.ID,
			LeadID:    it.LeadID,
			Kind:      entities.InteractionKind(it.Kind),
			Subject:   it.Subject,
			Content:   it.Content,
			Status:    it.Status,
			DueDate:   parseTime(it.DueDate),
			CreatedBy: it.CreatedBy,
			CreatedAt: parseTime(it.CreatedAt),
		}
	})
}
