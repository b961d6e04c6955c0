package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/repository"
	"github.com/spec-kit/agent-console/internal/repository/memory"
)

func newTicketFixture(t *testing.T) *TicketService {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(store, 4))

	tickets := memory.NewTicketRepository(store)
	agents := memory.NewAgentRepository(store)

	dispatcher := events.NewInMemoryDispatcher()
	NewTimelineProjector(tickets, agents, zap.NewNop()).RegisterHandlers(dispatcher)

	return NewTicketService(tickets, dispatcher, zap.NewNop())
}

func TestTicketCreateRequiresSubjectAndCustomer(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input TicketCreateInput
	}{
		{"missing subject", TicketCreateInput{CustomerID: 1}},
		{"blank subject", TicketCreateInput{Subject: "   ", CustomerID: 1}},
		{"missing customer", TicketCreateInput{Subject: "Camera offline"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			assert.Error(t, err)
		})
	}

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "rejected creates must not insert rows")
}

func TestTicketCreateDefaultsAndCreatedEvent(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	chat := domain.ChannelChat
	created, err := svc.Create(ctx, TicketCreateInput{
		Subject:    "Camera offline",
		CustomerID: 1,
		Channel:    &chat,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusOpen, created.Status)
	assert.Equal(t, domain.TicketPriorityMedium, created.Priority)

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Events, 1)
	assert.Equal(t, domain.EventTypeCreated, loaded.Events[0].Type)
	assert.Equal(t, int64(1), loaded.Events[0].ID)
	assert.Equal(t, "Ticket created via chat", loaded.Events[0].Content)
	assert.Equal(t, "System", loaded.Events[0].Agent)
}

func TestTicketGetUnknown(t *testing.T) {
	svc := newTicketFixture(t)

	_, err := svc.Get(context.Background(), 999)
	assert.Error(t, err)
}

func TestAppendNotesGrowsTimelineAndBumpsUpdatedAt(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketCreateInput{Subject: "Thermostat unresponsive", CustomerID: 1})
	require.NoError(t, err)

	base := time.Now()
	const appends = 5
	for i := 0; i < appends; i++ {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }

		before, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)

		event, err := svc.AppendNote(ctx, created.ID, "Mike Johnson", "checked signal strength", i%2 == 0)
		require.NoError(t, err)

		after, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)

		assert.Len(t, after.Events, len(before.Events)+1)
		assert.Equal(t, int64(len(after.Events)), event.ID, "event id is its sequence position")
		assert.Equal(t, event.Date, after.UpdatedAt, "append sets updated_at to the event date")
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt), "updated_at is monotonic non-decreasing")
	}
}

func TestAppendNoteValidation(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	_, err := svc.AppendNote(ctx, 1, "Mike Johnson", "   ", false)
	assert.Error(t, err)

	_, err = svc.AppendNote(ctx, 999, "Mike Johnson", "orphan note", false)
	assert.Error(t, err)
}

func TestPatchEmptyRejected(t *testing.T) {
	svc := newTicketFixture(t)

	err := svc.Patch(context.Background(), 1, repository.TicketPatch{}, "Mike Johnson")
	assert.Error(t, err)
}

func TestPatchUnknownTicket(t *testing.T) {
	svc := newTicketFixture(t)

	subject := "renamed"
	err := svc.Patch(context.Background(), 999, repository.TicketPatch{Subject: &subject}, "Mike Johnson")
	assert.Error(t, err)
}

func TestPatchStatusAppendsTimelineEvent(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketCreateInput{Subject: "Camera offline", CustomerID: 1})
	require.NoError(t, err)

	resolved := domain.TicketStatusResolved
	require.NoError(t, svc.Patch(ctx, created.ID, repository.TicketPatch{Status: &resolved}, "Mike Johnson"))

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, loaded.Status)

	last := loaded.Events[len(loaded.Events)-1]
	assert.Equal(t, domain.EventTypeStatusChange, last.Type)
	assert.Equal(t, "Status changed to Resolved", last.Content)
	assert.Equal(t, "Mike Johnson", last.Agent)
	require.NotNil(t, last.Status)
	assert.Equal(t, domain.TicketStatusResolved, *last.Status)
}

func TestPatchSameStatusAppendsNothing(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketCreateInput{Subject: "Camera offline", CustomerID: 1})
	require.NoError(t, err)

	open := domain.TicketStatusOpen
	require.NoError(t, svc.Patch(ctx, created.ID, repository.TicketPatch{Status: &open}, "Mike Johnson"))

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Events, 1, "only the created event")
}

func TestPatchAssignmentAppendsTimelineEvent(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketCreateInput{Subject: "Camera offline", CustomerID: 1})
	require.NoError(t, err)

	agentID := int64(2)
	require.NoError(t, svc.Patch(ctx, created.ID, repository.TicketPatch{AgentID: &agentID}, "Mike Johnson"))

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)

	last := loaded.Events[len(loaded.Events)-1]
	assert.Equal(t, domain.EventTypeAssignmentChange, last.Type)
	assert.Equal(t, "Assigned to Taylor Reed", last.Content)
}

func TestListEventsFilters(t *testing.T) {
	svc := newTicketFixture(t)
	ctx := context.Background()

	// Seeded ticket 1 carries 8 events, 2 of them private notes.
	public, err := svc.ListEvents(ctx, 1, domain.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, public, 6)
	for _, event := range public {
		assert.False(t, event.Private)
	}

	all, err := svc.ListEvents(ctx, 1, domain.EventFilter{IncludePrivate: true})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	note := domain.EventTypeNote
	notes, err := svc.ListEvents(ctx, 1, domain.EventFilter{Type: &note, IncludePrivate: true})
	require.NoError(t, err)
	assert.Len(t, notes, 2)
	for _, event := range notes {
		assert.Equal(t, domain.EventTypeNote, event.Type)
	}

	notesPublic, err := svc.ListEvents(ctx, 1, domain.EventFilter{Type: &note})
	require.NoError(t, err)
	assert.Empty(t, notesPublic, "both seeded notes are private")
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := newTicketFixture(t)

	tickets, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tickets)

	for i := 1; i < len(tickets); i++ {
		assert.False(t, tickets[i-1].CreatedAt.Before(tickets[i].CreatedAt))
	}
}
