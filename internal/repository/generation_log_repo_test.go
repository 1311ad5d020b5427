package repository

import (
	"context"
	"testing"

	"gymdesk/internal/database"
	"gymdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T) *GenerationLogRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewGenerationLogRepository(db)
}

func TestGenerationLog_RecordAndFind(t *testing.T) {
	repo := setupLedger(t)
	ctx := context.Background()

	entry := domain.GenerationLogEntry{
		OrganizationID: 1,
		TemplateID:     7,
		GeneratedDate:  "2024-01-03",
		InstanceID:     100,
	}
	require.NoError(t, repo.Record(ctx, &entry))
	assert.NotZero(t, entry.ID)

	generated, err := repo.FindGenerated(ctx, 7, []string{"2024-01-03", "2024-01-10"})
	require.NoError(t, err)
	assert.True(t, generated["2024-01-03"])
	assert.False(t, generated["2024-01-10"])
}

func TestGenerationLog_DuplicateSlotRejectedByUniqueIndex(t *testing.T) {
	repo := setupLedger(t)
	ctx := context.Background()

	first := domain.GenerationLogEntry{
		OrganizationID: 1,
		TemplateID:     7,
		GeneratedDate:  "2024-01-03",
		InstanceID:     100,
	}
	require.NoError(t, repo.Record(ctx, &first))

	// same slot written by a "concurrent" run
	second := domain.GenerationLogEntry{
		OrganizationID: 1,
		TemplateID:     7,
		GeneratedDate:  "2024-01-03",
		InstanceID:     101,
	}
	err := repo.Record(ctx, &second)
	assert.ErrorIs(t, err, ErrDuplicateGeneration)

	// the winning row is untouched
	generated, err := repo.FindGenerated(ctx, 7, []string{"2024-01-03"})
	require.NoError(t, err)
	assert.True(t, generated["2024-01-03"])
}

func TestGenerationLog_LedgerKeyIncludesTemplate(t *testing.T) {
	repo := setupLedger(t)
	ctx := context.Background()

	// two templates sharing the same date must not collide
	for i, templateID := range []int64{7, 8} {
		entry := domain.GenerationLogEntry{
			OrganizationID: 1,
			TemplateID:     templateID,
			GeneratedDate:  "2024-01-03",
			InstanceID:     int64(200 + i),
		}
		require.NoError(t, repo.Record(ctx, &entry))
	}

	for _, templateID := range []int64{7, 8} {
		generated, err := repo.FindGenerated(ctx, templateID, []string{"2024-01-03"})
		require.NoError(t, err)
		assert.True(t, generated["2024-01-03"])
	}
}

func TestGenerationLog_FindGeneratedEmptyInput(t *testing.T) {
	repo := setupLedger(t)

	generated, err := repo.FindGenerated(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Empty(t, generated)
}
