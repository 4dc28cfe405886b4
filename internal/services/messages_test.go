package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centuriesmutual/activity-ledger/internal/models"
)

func mustCreateMessage(t *testing.T, l *Ledger, clientID string) *models.Message {
	t.Helper()
	msg, err := l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    clientID,
		MessageType: models.MessageTypeSystemAlert,
		Content:     "test content",
	}, Meta{})
	if err != nil {
		t.Fatalf("Failed to create message: %v", err)
	}
	return msg
}

func TestCreateMessage(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	msg, err := l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "client-001",
		MessageType: models.MessageTypeDocumentRequest,
		Content:     "please upload your enrollment form",
	}, Meta{})
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusPending, msg.Status)
	assert.NotEmpty(t, msg.MessageID)
	assert.Nil(t, msg.DeliveredAt)

	_, err = l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "client-001",
		MessageType: "carrier_pigeon",
		Content:     "x",
	}, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "ghost",
		MessageType: models.MessageTypeSystemAlert,
		Content:     "x",
	}, Meta{})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	_, err = l.CreateMessage(t.Context(), CreateMessageInput{
		MessageID:   msg.MessageID,
		ClientID:    "client-001",
		MessageType: models.MessageTypeSystemAlert,
		Content:     "x",
	}, Meta{})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDailyMessageLimit(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	for i := 0; i < l.Config().DailyMessageLimit; i++ {
		_, err := l.CreateMessage(t.Context(), CreateMessageInput{
			ClientID:    "client-001",
			MessageType: models.MessageTypePaymentReminder,
			Content:     fmt.Sprintf("reminder %d", i),
		}, Meta{})
		require.NoError(t, err)
	}

	_, err := l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "client-001",
		MessageType: models.MessageTypePaymentReminder,
		Content:     "one too many",
	}, Meta{})
	assert.ErrorIs(t, err, ErrRateLimited)

	// The limit is per client
	mustCreateClient(t, l, "client-002")
	_, err = l.CreateMessage(t.Context(), CreateMessageInput{
		ClientID:    "client-002",
		MessageType: models.MessageTypePaymentReminder,
		Content:     "fine for another client",
	}, Meta{})
	assert.NoError(t, err)
}

func TestTransitionMessage(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.MessageStatusPending, models.MessageStatusSent, true},
		{models.MessageStatusPending, models.MessageStatusFailed, true},
		{models.MessageStatusPending, models.MessageStatusDelivered, false},
		{models.MessageStatusSent, models.MessageStatusDelivered, true},
		{models.MessageStatusSent, models.MessageStatusFailed, true},
		{models.MessageStatusSent, models.MessageStatusPending, false},
		{models.MessageStatusDelivered, models.MessageStatusFailed, false},
		{models.MessageStatusDelivered, models.MessageStatusSent, false},
		{models.MessageStatusFailed, models.MessageStatusSent, false},
		{models.MessageStatusFailed, models.MessageStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			msg := mustCreateMessage(t, l, "client-001")

			// Walk the message to the starting status
			switch tc.from {
			case models.MessageStatusSent:
				_, err := l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusSent, Meta{})
				require.NoError(t, err)
			case models.MessageStatusDelivered:
				_, err := l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusSent, Meta{})
				require.NoError(t, err)
				_, err = l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusDelivered, Meta{})
				require.NoError(t, err)
			case models.MessageStatusFailed:
				_, err := l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusFailed, Meta{})
				require.NoError(t, err)
			}

			got, err := l.TransitionMessage(t.Context(), msg.MessageID, tc.to, Meta{})
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, got.Status)
				if tc.to == models.MessageStatusDelivered {
					assert.NotNil(t, got.DeliveredAt)
				} else {
					assert.Nil(t, got.DeliveredAt)
				}
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)

				// The message is unchanged after a refused transition
				cur, err := l.GetMessage(t.Context(), msg.MessageID)
				require.NoError(t, err)
				assert.Equal(t, tc.from, cur.Status)
			}
		})
	}
}

func TestTransitionMessageUnknownStatus(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	msg := mustCreateMessage(t, l, "client-001")

	_, err := l.TransitionMessage(t.Context(), msg.MessageID, "teleported", Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.TransitionMessage(t.Context(), "missing", models.MessageStatusSent, Meta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeliveredAtOnlyOnDelivery(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	msg := mustCreateMessage(t, l, "client-001")

	sent, err := l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusSent, Meta{})
	require.NoError(t, err)
	assert.Nil(t, sent.DeliveredAt)

	delivered, err := l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusDelivered, Meta{})
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)
	assert.False(t, delivered.DeliveredAt.Before(delivered.CreatedAt))
}

// TestConcurrentTransitions drives many goroutines at the same pending
// message; exactly one may win each edge of the lattice.
func TestConcurrentTransitions(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	msg := mustCreateMessage(t, l, "client-001")

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.TransitionMessage(t.Context(), msg.MessageID, models.MessageStatusSent, Meta{})
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, won, "exactly one transition should succeed")

	got, err := l.GetMessage(t.Context(), msg.MessageID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, got.Status)

	// One message_transition audit event, not twenty
	events, err := l.ListAuditEvents(t.Context(), "client-001", 0)
	require.NoError(t, err)
	var transitions int
	for _, e := range events {
		if e.Action == models.AuditActionMessageTransition {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
}

func TestListClientMessages(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	for i := 0; i < 3; i++ {
		mustCreateMessage(t, l, "client-001")
	}

	msgs, err := l.ListClientMessages(t.Context(), "client-001")
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	_, err = l.ListClientMessages(t.Context(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
