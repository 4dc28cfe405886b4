package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centuriesmutual/activity-ledger/internal/models"
)

func mustCreateDocument(t *testing.T, l *Ledger, clientID string) *models.Document {
	t.Helper()
	doc, err := l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     clientID,
		DocumentType: models.DocumentTypeEnrollmentForm,
		FilePath:     "/store/enrollment/form.pdf",
		FileSize:     2048,
	}, Meta{})
	if err != nil {
		t.Fatalf("Failed to create document: %v", err)
	}
	return doc
}

func TestCreateDocument(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")

	doc := mustCreateDocument(t, l, "client-001")
	assert.NotEmpty(t, doc.DocumentID)
	assert.Equal(t, int64(0), doc.AccessCount)
	assert.Empty(t, doc.SharedLink)
	assert.Nil(t, doc.ExpiresAt)

	_, err := l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     "client-001",
		DocumentType: "napkin_sketch",
		FilePath:     "/x",
		FileSize:     1,
	}, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     "client-001",
		DocumentType: models.DocumentTypePolicyDocument,
		FilePath:     "/x",
		FileSize:     0,
	}, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     "client-001",
		DocumentType: models.DocumentTypePolicyDocument,
		FilePath:     "/x",
		FileSize:     l.Config().MaxFileSizeMB*1024*1024 + 1,
	}, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateDocument(t.Context(), CreateDocumentInput{
		ClientID:     "ghost",
		DocumentType: models.DocumentTypePolicyDocument,
		FilePath:     "/x",
		FileSize:     1,
	}, Meta{})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestCreateShareLink(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	doc := mustCreateDocument(t, l, "client-001")

	shared, err := l.CreateShareLink(t.Context(), doc.DocumentID, time.Hour, Meta{})
	require.NoError(t, err)
	assert.NotEmpty(t, shared.SharedLink)
	require.NotNil(t, shared.ExpiresAt)
	assert.True(t, shared.ShareActive(time.Now().UTC()))

	// A second share replaces the first link entirely
	reshared, err := l.CreateShareLink(t.Context(), doc.DocumentID, 2*time.Hour, Meta{})
	require.NoError(t, err)
	assert.NotEqual(t, shared.SharedLink, reshared.SharedLink)
	assert.True(t, reshared.ExpiresAt.After(*shared.ExpiresAt))

	_, err = l.CreateShareLink(t.Context(), doc.DocumentID, 0, Meta{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateShareLink(t.Context(), "missing", time.Hour, Meta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordAccess(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	doc := mustCreateDocument(t, l, "client-001")

	got, err := l.RecordAccess(t.Context(), doc.DocumentID, Meta{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AccessCount)

	got, err = l.RecordAccess(t.Context(), doc.DocumentID, Meta{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.AccessCount)

	_, err = l.RecordAccess(t.Context(), "missing", Meta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordAccessExpiredLink(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	doc := mustCreateDocument(t, l, "client-001")

	_, err := l.CreateShareLink(t.Context(), doc.DocumentID, time.Millisecond, Meta{})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = l.RecordAccess(t.Context(), doc.DocumentID, Meta{})
	assert.ErrorIs(t, err, ErrLinkExpired)

	// The refused access leaves the count untouched
	got, err := l.GetDocument(t.Context(), doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AccessCount)
}

// TestConcurrentAccess checks that no access is lost when many goroutines
// count retrievals of the same document.
func TestConcurrentAccess(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	doc := mustCreateDocument(t, l, "client-001")

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.RecordAccess(t.Context(), doc.DocumentID, Meta{}); err != nil {
				t.Errorf("RecordAccess failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := l.GetDocument(t.Context(), doc.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.AccessCount)

	events, err := l.ListAuditEvents(t.Context(), "client-001", 0)
	require.NoError(t, err)
	var accesses int
	for _, e := range events {
		if e.Action == models.AuditActionDocumentAccessed {
			accesses++
		}
	}
	assert.Equal(t, workers, accesses)
}

func TestListClientDocuments(t *testing.T) {
	l := setupLedger(t)
	mustCreateClient(t, l, "client-001")
	mustCreateDocument(t, l, "client-001")
	mustCreateDocument(t, l, "client-001")

	docs, err := l.ListClientDocuments(t.Context(), "client-001")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = l.ListClientDocuments(t.Context(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
