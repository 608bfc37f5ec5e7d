package leads

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreAppendAndReadBack(t *testing.T) {
	ctx := context.Background()
	s := FileStore{Dir: t.TempDir()}

	saved, err := s.Append(ctx, Lead{Name: "Siân Davies", Email: "sian@example.com", School: "Ysgol y Garn"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "id should be generated")
	assert.Equal(t, "pdf", saved.PlanType, "plan type defaults to pdf")
	assert.False(t, saved.SavedAt.IsZero())

	_, err = s.Append(ctx, Lead{Name: "Rhys Morgan", Email: "rhys@example.com", PlanType: "ai"})
	require.NoError(t, err)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Siân Davies", all[0].Name)
	assert.Equal(t, "ai", all[1].PlanType)
}

func TestFileStoreAllowsDuplicateEmails(t *testing.T) {
	ctx := context.Background()
	s := FileStore{Dir: t.TempDir()}

	for i := 0; i < 3; i++ {
		_, err := s.Append(ctx, Lead{Name: "Same Person", Email: "same@example.com"})
		require.NoError(t, err)
	}
	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "store is append-only, no dedup")
}

func TestFileStoreMissingFileReadsEmpty(t *testing.T) {
	s := FileStore{Dir: filepath.Join(t.TempDir(), "never-written")}
	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "leads.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	saved, err := s.Append(ctx, Lead{Name: "Elin Haf", Email: "elin@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Elin Haf", all[0].Name)
	assert.Equal(t, saved.ID, all[0].ID)
}
