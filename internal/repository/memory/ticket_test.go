package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

func TestTicketCreateAssignsIDAndTimestamps(t *testing.T) {
	store := NewStore()
	repo := NewTicketRepository(store)
	ctx := context.Background()

	first := &domain.Ticket{Subject: "Camera offline", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityMedium, CustomerID: 1}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second := &domain.Ticket{Subject: "Thermostat stuck", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityLow, CustomerID: 2}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestTicketPatchAppliesOnlyPresentFields(t *testing.T) {
	store := NewStore()
	repo := NewTicketRepository(store)
	ctx := context.Background()

	ticket := &domain.Ticket{Subject: "Camera offline", Description: "goes dark at night", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityMedium, CustomerID: 1}
	require.NoError(t, repo.Create(ctx, ticket))

	resolved := domain.TicketStatusResolved
	zoho := "ZD-1042"
	require.NoError(t, repo.Patch(ctx, ticket.ID, repository.TicketPatch{
		Status:           &resolved,
		ZohoDeskTicketID: &zoho,
	}))

	loaded, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, loaded.Status)
	require.NotNil(t, loaded.ZohoDeskTicketID)
	assert.Equal(t, "ZD-1042", *loaded.ZohoDeskTicketID)
	assert.Equal(t, "Camera offline", loaded.Subject, "absent fields stay untouched")
	assert.Equal(t, "goes dark at night", loaded.Description)
	assert.True(t, loaded.UpdatedAt.After(loaded.CreatedAt) || loaded.UpdatedAt.Equal(loaded.CreatedAt))
}

func TestTicketPatchUnknownID(t *testing.T) {
	store := NewStore()
	repo := NewTicketRepository(store)

	subject := "renamed"
	err := repo.Patch(context.Background(), 42, repository.TicketPatch{Subject: &subject})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppendEventPositionsAndUpdatedAt(t *testing.T) {
	store := NewStore()
	repo := NewTicketRepository(store)
	ctx := context.Background()

	ticket := &domain.Ticket{Subject: "Camera offline", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityMedium, CustomerID: 1}
	require.NoError(t, repo.Create(ctx, ticket))

	base := time.Now()
	for i := 1; i <= 3; i++ {
		event := &domain.TicketEvent{
			Date:    base.Add(time.Duration(i) * time.Minute),
			Type:    domain.EventTypeNote,
			Content: "note",
			Agent:   "Mike Johnson",
		}
		require.NoError(t, repo.AppendEvent(ctx, ticket.ID, event))
		assert.Equal(t, int64(i), event.ID)
	}

	loaded, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Events, 3)
	assert.Equal(t, base.Add(3*time.Minute), loaded.UpdatedAt)
}

func TestAppendEventUnknownTicket(t *testing.T) {
	store := NewStore()
	repo := NewTicketRepository(store)

	err := repo.AppendEvent(context.Background(), 42, &domain.TicketEvent{Type: domain.EventTypeNote})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTicketListNewestFirstAndIsolated(t *testing.T) {
	store := NewStore()
	require.NoError(t, Seed(store, 4))
	repo := NewTicketRepository(store)
	ctx := context.Background()

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.True(t, tickets[0].CreatedAt.After(tickets[1].CreatedAt))

	// Mutating a returned ticket must not leak into the store.
	tickets[0].Events = append(tickets[0].Events, domain.TicketEvent{Type: domain.EventTypeNote})
	reloaded, err := repo.GetByID(ctx, tickets[0].ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Events, len(tickets[0].Events)-1)
}

func TestSeedDataset(t *testing.T) {
	store := NewStore()
	require.NoError(t, Seed(store, 4))
	ctx := context.Background()

	customers, err := NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 10)

	products, err := NewProductRepository(store).ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, products, 4)

	serials := make([]string, 0, len(products))
	for _, product := range products {
		serials = append(serials, product.SerialNumber)
	}
	assert.ElementsMatch(t, []string{"DB2349857", "CAM6782341", "TH8762140", "MS4523789"}, serials)

	requests, err := NewRequestRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 10)

	agent, err := NewAgentRepository(store).GetByEmail(ctx, "mike.johnson@console.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Mike Johnson", agent.Name)
	assert.NotEmpty(t, agent.PasswordHash)
}

func TestChatAppendAssignsSequentialIDs(t *testing.T) {
	store := NewStore()
	require.NoError(t, Seed(store, 4))
	repo := NewChatRepository(store)
	ctx := context.Background()

	before, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)

	msg := &domain.ChatMessage{CustomerID: 1, Message: "any update?", CreatedAt: time.Now()}
	require.NoError(t, repo.Append(ctx, msg))
	assert.Positive(t, msg.ID)

	after, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, "any update?", after[len(after)-1].Message)
}
