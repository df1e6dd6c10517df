package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "github.com/jn0w/Lindsey/pkg/errors"
)

// Malformed identifiers must be rejected before the store is dialed, so
// these paths need no running MongoDB.
func TestMemoryRepository_RejectsMalformedID(t *testing.T) {
	repo := NewMemoryRepository("mongodb://localhost:27017", "ourmemories", "memories", zap.NewNop(), nil)
	ctx := context.Background()

	for _, id := range []string{"not-an-id", "", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := repo.FindByID(ctx, id)
		require.Error(t, err, "FindByID(%q)", id)
		assert.True(t, pkgerrors.IsValidation(err), "FindByID(%q)", id)

		_, err = repo.Replace(ctx, id, nil)
		require.Error(t, err, "Replace(%q)", id)
		assert.True(t, pkgerrors.IsValidation(err), "Replace(%q)", id)

		err = repo.Delete(ctx, id)
		require.Error(t, err, "Delete(%q)", id)
		assert.True(t, pkgerrors.IsValidation(err), "Delete(%q)", id)
	}
}

func TestParseID_AcceptsHexObjectID(t *testing.T) {
	oid, err := parseID("68b1f2a4c9e77d0012345678")
	require.NoError(t, err)
	assert.Equal(t, "68b1f2a4c9e77d0012345678", oid.Hex())
}

func TestDocumentMapping_RoundTrip(t *testing.T) {
	doc := &memoryDocument{
		Title:       "T",
		Description: "D",
		ImageURL:    "U",
		Tags:        []string{"a", "b"},
	}

	m := doc.toDomain()
	assert.Equal(t, []string{"a", "b"}, m.Tags)

	back := fromDomain(m)
	assert.Equal(t, doc.Title, back.Title)
	assert.Equal(t, doc.Tags, back.Tags)
}

func TestDocumentMapping_NilTags(t *testing.T) {
	doc := &memoryDocument{Title: "T"}
	m := doc.toDomain()
	require.NotNil(t, m.Tags)
	assert.Empty(t, m.Tags)
}
