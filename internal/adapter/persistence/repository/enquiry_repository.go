package repository

import (
	"context"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type enquiryItem struct {
	ID                      string `dynamodbav:"id"`
	EnquiryID               string `dynamodbav:"enquiry_id"`
	CustomerID              string `dynamodbav:"customer_id"`
	CustomerName            string `dynamodbav:"customer_name"`
	CustomerEmail           string `dynamodbav:"customer_email"`
	CustomerPhone           string `dynamodbav:"customer_phone"`
	Company                 string `dynamodbav:"company"`
	EquipmentName           string `dynamodbav:"equipment_name"`
	Quantity                int    `dynamodbav:"quantity"`
	StartDate               string `dynamodbav:"start_date"`
	EndDate                 string `dynamodbav:"end_date"`
	DeliveryAddress         string `dynamodbav:"delivery_address"`
	ContactPerson           string `dynamodbav:"contact_person"`
	ContactEmail            string `dynamodbav:"contact_email"`
	ContactPhone            string `dynamodbav:"contact_phone"`
	SpecialInstructions     string `dynamodbav:"special_instructions"`
	Status                  string `dynamodbav:"status"`
	TotalAmount             string `dynamodbav:"total_amount"`
	AssignedSalespersonID   string `dynamodbav:"assigned_salesperson_id"`
	AssignedSalespersonName string `dynamodbav:"assigned_salesperson_name"`
	ExtensionReason         string `dynamodbav:"extension_reason"`
	CreatedBy               string `dynamodbav:"created_by"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// EnquiryRepository stores enquiries as rental documents. Documents left in
// the legacy enquiries collection stay readable and updatable.
type EnquiryRepository struct {
	rentals docstore.Collection
	legacy  docstore.Collection
	businessIDs
}

var _ interfaces.IEnquiryRepository = (*EnquiryRepository)(nil)

func NewEnquiryRepository(store docstore.Store) *EnquiryRepository {
	rentals := store.Collection(CollectionRentals)
	legacy := store.Collection(CollectionEnquiries)
	return &EnquiryRepository{
		rentals:     rentals,
		legacy:      legacy,
		businessIDs: businessIDs{colls: []docstore.Collection{rentals, legacy}, field: "enquiry_id"},
	}
}

func (r *EnquiryRepository) collections() []docstore.Collection {
	return []docstore.Collection{r.rentals, r.legacy}
}

func (r *EnquiryRepository) Create(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error) {
	if err := insertOne(ctx, r.rentals, toEnquiryItem(e)); err != nil {
		return entities.Enquiry{}, err
	}
	return e, nil
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (entities.Enquiry, error) {
	return r.first(ctx, docstore.ByID(id))
}

func (r *EnquiryRepository) GetByEnquiryID(ctx context.Context, enquiryID string) (entities.Enquiry, error) {
	return r.first(ctx, docstore.Where(docstore.Eq("enquiry_id", enquiryID)))
}

func (r *EnquiryRepository) first(ctx context.Context, f docstore.Filter) (entities.Enquiry, error) {
	for _, coll := range r.collections() {
		e, err := findOne(ctx, coll, f, fromEnquiryItem)
		if err != nil || e.ID != "" {
			return e, err
		}
	}
	return entities.Enquiry{}, nil
}

func (r *EnquiryRepository) List(ctx context.Context, f interfaces.EnquiryFilter) ([]entities.Enquiry, error) {
	var filter docstore.Filter
	if f.Status != "" {
		filter = filter.And(docstore.Eq("status", f.Status))
	}
	if f.CustomerID != "" {
		filter = filter.And(docstore.Eq("customer_id", f.CustomerID))
	}

	var out []entities.Enquiry
	for _, coll := range r.collections() {
		items, err := findAll(ctx, coll, filter, fromEnquiryItem)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// CountEndingBy counts rentals in one of statuses whose end date is at or
// before by. Rentals without an end date are skipped.
func (r *EnquiryRepository) CountEndingBy(ctx context.Context, statuses []entities.EnquiryStatus, by time.Time) (int, error) {
	f := docstore.Where(
		docstore.In("status", statuses...),
		docstore.Gte("end_date", "0"),
		docstore.Lte("end_date", formatTime(by)),
	)
	total := 0
	for _, coll := range r.collections() {
		n, err := coll.CountDocuments(ctx, f)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id string, status entities.EnquiryStatus, assigneeID, assigneeName string) (entities.Enquiry, error) {
	u := docstore.NewUpdate().
		Set("status", status).
		Set("updated_at", formatTime(time.Now()))
	if assigneeID != "" {
		u.Set("assigned_salesperson_id", assigneeID).Set("assigned_salesperson_name", assigneeName)
	}
	return r.update(ctx, id, u)
}

func (r *EnquiryRepository) Extend(ctx context.Context, id string, endDate time.Time, reason string) (entities.Enquiry, error) {
	u := docstore.NewUpdate().
		Set("end_date", formatTime(endDate)).
		Set("status", entities.EnquiryStatusExtended).
		Set("extension_reason", reason).
		Set("updated_at", formatTime(time.Now()))
	return r.update(ctx, id, u)
}

func (r *EnquiryRepository) update(ctx context.Context, id string, u *docstore.Update) (entities.Enquiry, error) {
	for _, coll := range r.collections() {
		e, err := updateOne(ctx, coll, docstore.ByID(id), u, fromEnquiryItem)
		if err != nil || e.ID != "" {
			return e, err
		}
	}
	return entities.Enquiry{}, nil
}

func toEnquiryItem(e entities.Enquiry) enquiryItem {
	return enquiryItem{
		ID:                      e.ID,
		EnquiryID:               e.EnquiryID,
		CustomerID:              e.CustomerID,
		CustomerName:            e.CustomerName,
		CustomerEmail:           e.CustomerEmail,
		CustomerPhone:           e.CustomerPhone,
		Company:                 e.Company,
		EquipmentName:           e.EquipmentName,
		Quantity:                e.Quantity,
		StartDate:               formatTime(e.StartDate),
		EndDate:                 formatTime(e.EndDate),
		DeliveryAddress:         e.DeliveryAddress,
		ContactPerson:           e.ContactPerson,
		ContactEmail:            e.ContactEmail,
		ContactPhone:            e.ContactPhone,
		SpecialInstructions:     e.SpecialInstructions,
		Status:                  string(e.Status),
		TotalAmount:             formatMoney(e.TotalAmount),
		AssignedSalespersonID:   e.AssignedSalespersonID,
		AssignedSalespersonName: e.AssignedSalespersonName,
		ExtensionReason:         e.ExtensionReason,
		CreatedBy:               e.CreatedBy,
		CreatedAt:               formatTime(e.CreatedAt),
		UpdatedAt:               formatTime(e.UpdatedAt),
	}
}

func fromEnquiryItem(it enquiryItem) entities.Enquiry {
	return entities.Enquiry{
		ID:                      it.ID,
		EnquiryID:               it.EnquiryID,
		CustomerID:              it.CustomerID,
		CustomerName:            it.CustomerName,
		CustomerEmail:           it.CustomerEmail,
		CustomerPhone:           it.CustomerPhone,
		Company:                 it.Company,
		EquipmentName:           it.EquipmentName,
		Quantity:                it.Quantity,
		StartDate:               parseTime(it.StartDate),
		EndDate:                 parseTime(it.EndDate),
		DeliveryAddress:         it.DeliveryAddress,
		ContactPerson:           it.ContactPerson,
		ContactEmail:            it.ContactEmail,
		ContactPhone:            it.ContactPhone,
		SpecialInstructions:     it.SpecialInstructions,
		Status:                  entities.EnquiryStatus(it.Status),
		TotalAmount:             parseMoney(it.TotalAmount),
		AssignedSalespersonID:   it.AssignedSalespersonID,
		AssignedSalespersonName: it.AssignedSalespersonName,
		ExtensionReason:         it.ExtensionReason,
		CreatedBy:               it.CreatedBy,
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
