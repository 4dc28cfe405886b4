package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centuriesmutual/activity-ledger/internal/models"
)

func TestCreateClient(t *testing.T) {
	l := setupLedger(t)

	client, err := l.CreateClient(t.Context(), CreateClientInput{
		ClientID:  "client-001",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		FirstName: "Jane",
		LastName:  "Doe",
		Metadata:  map[string]interface{}{"plan": "gold"},
	}, Meta{IPAddress: "10.0.0.1", UserAgent: "test-agent"})
	require.NoError(t, err)
	assert.Equal(t, "client-001", client.ClientID)
	assert.True(t, client.IsActive)

	got, err := l.GetClient(t.Context(), "client-001")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)

	md, err := got.Metadata.AsMap()
	require.NoError(t, err)
	assert.Equal(t, "gold", md["plan"])

	events, err := l.ListAuditEvents(t.Context(), "client-001", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.AuditActionClientRegistered, events[0].Action)
	assert.Equal(t, "10.0.0.1", events[0].IPAddress)
}

func TestCreateClientValidation(t *testing.T) {
	l := setupLedger(t)

	cases := []struct {
		name string
		in   CreateClientInput
	}{
		{"short client_id", CreateClientInput{ClientID: "ab", Email: "a@b.co", FirstName: "A", LastName: "B"}},
		{"bad email", CreateClientInput{ClientID: "client-002", Email: "not-an-email", FirstName: "A", LastName: "B"}},
		{"missing name", CreateClientInput{ClientID: "client-002", Email: "a@b.co", FirstName: "", LastName: "B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.CreateClient(t.Context(), tc.in, Meta{})
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCreateClientDuplicate(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	_, err := l.CreateClient(t.Context(), CreateClientInput{
		ClientID:  "client-001",
		Email:     "other@example.com",
		FirstName: "Other",
		LastName:  "Person",
	}, Meta{})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Same email, different client_id
	_, err = l.CreateClient(t.Context(), CreateClientInput{
		ClientID:  "client-002",
		Email:     "client-001@example.com",
		FirstName: "Other",
		LastName:  "Person",
	}, Meta{})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGetClientNotFound(t *testing.T) {
	l := setupLedger(t)
	_, err := l.GetClient(t.Context(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClient(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	phone := "555-0199"
	first := "Janet"
	client, err := l.UpdateClient(t.Context(), "client-001", UpdateClientInput{
		Phone:     &phone,
		FirstName: &first,
	}, Meta{})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", client.Phone)
	assert.Equal(t, "Janet", client.FirstName)
	assert.Equal(t, "Client", client.LastName)

	empty := ""
	_, err = l.UpdateClient(t.Context(), "client-001", UpdateClientInput{FirstName: &empty}, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.UpdateClient(t.Context(), "missing", UpdateClientInput{Phone: &phone}, Meta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateClient(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	msg, err := l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "client-001",
		MessageType: models.MessageTypeClaimUpdate,
		Content:     "claim 42 approved",
	}, Meta{})
	require.NoError(t, err)

	client, err := l.DeactivateClient(t.Context(), "client-001", Meta{})
	require.NoError(t, err)
	assert.False(t, client.IsActive)

	// Deactivation does not cascade; existing records stay readable and
	// new activity is still accepted.
	_, err = l.GetMessage(t.Context(), msg.MessageID)
	assert.NoError(t, err)

	_, err = l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     "client-001",
		DocumentType: models.DocumentTypeClaimsForm,
		FilePath:     "/store/claims/42.pdf",
		FileSize:     1024,
	}, Meta{})
	assert.NoError(t, err)
}

func TestReactivateClient(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	_, err := l.DeactivateClient(t.Context(), "client-001", Meta{})
	require.NoError(t, err)

	client, err := l.ReactivateClient(t.Context(), "client-001", Meta{})
	require.NoError(t, err)
	assert.True(t, client.IsActive)

	events, err := l.ListAuditEvents(t.Context(), "client-001", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, models.AuditActionClientReactivated, events[0].Action)
	assert.Equal(t, models.AuditActionClientDeactivated, events[1].Action)

	_, err = l.ReactivateClient(t.Context(), "ghost", Meta{})
	assert.ErrorIs(t, err, ErrNotFound)
}
