package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalEnquiryID(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		in   entities.Enquiry
		want string
	}{
		{"canonical kept", entities.Enquiry{ID: "abcdef", EnquiryID: "ENQ-2025-0042"}, "ENQ-2025-0042"},
		{"legacy rental padded", entities.Enquiry{ID: "abcdef", EnquiryID: "RC-2025-007"}, "ENQ-2025-0007"},
		{"synthesised from created_at", entities.Enquiry{ID: "9f8e7d6c", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}, "ENQ-2024-9f8e"},
		{"synthesised without created_at", entities.Enquiry{ID: "xy"}, "ENQ-2026-xy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanonicalEnquiryID(tc.in, now))
		})
	}
}

func newEnquiry(email string) entities.Enquiry {
	return entities.Enquiry{
		CustomerName:  "Alice Buyer",
		CustomerEmail: email,
		Company:       "Buyer LLC",
		EquipmentName: "Steel Prop",
		Quantity:      10,
		StartDate:     testNow.AddDate(0, 0, 1),
		EndDate:       testNow.AddDate(0, 1, 0),
	}
}

func TestEnquiryCreate_CreatesExactlyOneLead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e, err := f.enquiries.Create(ctx, salesUser, newEnquiry("a@b.com"))
	require.NoError(t, err)
	assert.Equal(t, "ENQ-2026-0001", e.EnquiryID)
	assert.Equal(t, entities.EnquiryStatusSubmittedByCustomer, e.Status)

	leads, err := f.leads.List(ctx, salesUser, "")
	require.NoError(t, err)
	require.Len(t, leads, 1)

	lead := leads[0]
	assert.Equal(t, e.EnquiryID, lead.EnquiryID)
	assert.Equal(t, "a@b.com", lead.Email)
	assert.Equal(t, "Alice", lead.FirstName)
	assert.Equal(t, "Buyer", lead.LastName)
	assert.Equal(t, entities.LeadStatusNew, lead.Status)
	assert.Equal(t, "LEAD-2026-0001", lead.LeadID)
	require.Len(t, lead.Activities, 1)
	assert.Equal(t, entities.LeadActivityCreated, lead.Activities[0].Type)
}

func TestEnquiryCreate_WithoutEmailSkipsLead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.enquiries.Create(ctx, salesUser, newEnquiry(""))
	require.NoError(t, err)

	leads, err := f.leads.List(ctx, salesUser, "")
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestEnquiryCreate_CustomerFillsOwnDetails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := newEnquiry("")
	in.CustomerName = ""
	e, err := f.enquiries.Create(ctx, customerUser, in)
	require.NoError(t, err)
	assert.Equal(t, customerUser.ID, e.CustomerID)
	assert.Equal(t, customerUser.Email, e.CustomerEmail)
	assert.Equal(t, customerUser.Name, e.CustomerName)

	other := entities.Principal{ID: "c-2", Email: "z@b.com", Role: entities.RoleCustomer}
	_, err = f.enquiries.Get(ctx, other, e.ID)
	assert.ErrorIs(t, err, ErrEnquiryNotFound)

	mine, err := f.enquiries.List(ctx, customerUser, "")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestEnquiryCreate_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := newEnquiry("a@b.com")
	in.EndDate = in.StartDate.AddDate(0, 0, -1)
	_, err := f.enquiries.Create(ctx, salesUser, in)
	assert.ErrorIs(t, err, ErrInvalidEnquiryDates)

	in = newEnquiry("a@b.com")
	in.Quantity = 0
	_, err = f.enquiries.Create(ctx, salesUser, in)
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = f.enquiries.Create(ctx, warehouseUser, newEnquiry("a@b.com"))
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = f.enquiries.Create(ctx, entities.Principal{}, newEnquiry("a@b.com"))
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestEnquiryExtend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e, err := f.enquiries.Create(ctx, salesUser, newEnquiry("a@b.com"))
	require.NoError(t, err)

	_, err = f.enquiries.Extend(ctx, salesUser, e.EnquiryID, e.StartDate.AddDate(0, 0, -1), "too early")
	assert.ErrorIs(t, err, ErrInvalidEnquiryDates)

	newEnd := e.EndDate.AddDate(0, 0, 14)
	extended, err := f.enquiries.Extend(ctx, salesUser, e.EnquiryID, newEnd, "project delayed")
	require.NoError(t, err)
	assert.True(t, extended.EndDate.Equal(newEnd))

	_, err = f.enquiries.UpdateStatus(ctx, salesUser, e.ID, entities.EnquiryStatusCancelled, "", "")
	require.NoError(t, err)
	_, err = f.enquiries.Extend(ctx, salesUser, e.ID, newEnd.AddDate(0, 0, 1), "again")
	assert.ErrorIs(t, err, ErrEnquiryNotExtendable)
}

func TestSyncLeadsForEnquiries_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Stored directly so no lead exists yet.
	for i, email := range []string{"one@x.com", "two@x.com", ""} {
		e := newEnquiry(email)
		e.ID = []string{"e-1", "e-2", "e-3"}[i]
		e.EnquiryID = []string{"ENQ-2026-0001", "RC-2026-002", "ENQ-2026-0003"}[i]
		e.CreatedAt = testNow
		_, err := f.enquiryRepo.Create(ctx, e)
		require.NoError(t, err)
	}

	first, err := f.leads.SyncLeadsForEnquiries(ctx, salesUser)
	require.NoError(t, err)
	assert.Equal(t, LeadSyncReport{Scanned: 3, Created: 2, Skipped: 1}, first)

	second, err := f.leads.SyncLeadsForEnquiries(ctx, salesUser)
	require.NoError(t, err)
	assert.Equal(t, LeadSyncReport{Scanned: 3, Existing: 2, Skipped: 1}, second)

	for _, id := range []string{"ENQ-2026-0001", "ENQ-2026-0002"} {
		n, err := f.leadRepo.CountByEnquiryID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, n, id)
	}
}

func TestEnsureLead_ConcurrentCallsConverge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e := newEnquiry("race@x.com")
	e.ID = "e-race"
	e.EnquiryID = "ENQ-2026-0100"

	const workers = 20
	var wg sync.WaitGroup
	ids := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lead, _, err := f.leads.EnsureLead(ctx, e)
			assert.NoError(t, err)
			ids[i] = lead.ID
		}(i)
	}
	wg.Wait()

	n, err := f.leadRepo.CountByEnquiryID(ctx, "ENQ-2026-0100")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestLeadLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.enquiries.Create(ctx, salesUser, newEnquiry("a@b.com"))
	require.NoError(t, err)
	leads, err := f.leads.List(ctx, salesUser, entities.LeadStatusNew)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	leadID := leads[0].LeadID

	updated, err := f.leads.UpdateStatus(ctx, salesUser, leadID, entities.LeadStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, entities.LeadStatusContacted, updated.Status)
	assert.Equal(t, entities.LeadActivityStatusChange, updated.Activities[len(updated.Activities)-1].Type)

	_, err = f.leads.UpdateStatus(ctx, salesUser, leadID, "Hot")
	assert.ErrorIs(t, err, ErrInvalidLeadStatus)

	note, err := f.leads.AddInteraction(ctx, salesUser, leadID, entities.LeadInteraction{Kind: entities.InteractionNote, Content: "called back"})
	require.NoError(t, err)
	assert.Equal(t, leadID, note.LeadID)

	notes, err := f.leads.ListInteractions(ctx, salesUser, leadID, entities.InteractionNote)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	converted, err := f.leads.ConvertToDeal(ctx, salesUser, leadID)
	require.NoError(t, err)
	assert.True(t, converted.ConvertedToDeal)
	assert.Equal(t, entities.LeadStatusQualified, converted.Status)
	assert.Equal(t, entities.LeadActivityConversion, converted.Activities[len(converted.Activities)-1].Type)

	_, err = f.leads.ConvertToDeal(ctx, salesUser, leadID)
	assert.ErrorIs(t, err, ErrLeadAlreadyConverted)

	assert.ErrorIs(t, f.leads.Delete(ctx, salesUser, leadID), ErrRoleNotAllowed)
	require.NoError(t, f.leads.Delete(ctx, adminUser, leadID))
	_, err = f.leads.Get(ctx, salesUser, leadID)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
