package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	j, err := NewJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(j.JSON))

	j, err = NewJSON(map[string]interface{}{"k": "v", "n": 2})
	require.NoError(t, err)
	m, err := j.AsMap()
	require.NoError(t, err)
	assert.Equal(t, "v", m["k"])
	assert.Equal(t, float64(2), m["n"])
}

func TestJSONAsMapEmpty(t *testing.T) {
	var j JSON
	m, err := j.AsMap()
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestShareActive(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	d := Document{}
	assert.False(t, d.ShareActive(now), "no link means no active share")

	d = Document{SharedLink: "https://x/1", ExpiresAt: &future}
	assert.True(t, d.ShareActive(now))

	d = Document{SharedLink: "https://x/1", ExpiresAt: &past}
	assert.False(t, d.ShareActive(now))

	// Expiry boundary counts as lapsed
	d = Document{SharedLink: "https://x/1", ExpiresAt: &now}
	assert.False(t, d.ShareActive(now))
}

func TestValidMessageType(t *testing.T) {
	assert.True(t, ValidMessageType(MessageTypeDocumentRequest))
	assert.True(t, ValidMessageType(MessageTypeBeneficiaryUpdate))
	assert.False(t, ValidMessageType("smoke_signal"))
	assert.False(t, ValidMessageType(""))
}

func TestValidDocumentType(t *testing.T) {
	assert.True(t, ValidDocumentType(DocumentTypePaymentReceipt))
	assert.False(t, ValidDocumentType("napkin"))
}
