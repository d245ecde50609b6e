package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthassist/internal/testutil"
)

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	transcripts := NewSQLiteTranscriptRepo(db)
	profiles := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	session := testutil.NewTestSession()
	require.NoError(t, transcripts.CreateSession(ctx, session))

	profile := testutil.NewTestProfile()
	require.NoError(t, profiles.Upsert(ctx, session.ID, profile))

	fetched, err := profiles.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, profile, fetched)
}

func TestProfileRepo_UpsertOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	transcripts := NewSQLiteTranscriptRepo(db)
	profiles := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	session := testutil.NewTestSession()
	require.NoError(t, transcripts.CreateSession(ctx, session))

	profile := testutil.NewTestProfile()
	require.NoError(t, profiles.Upsert(ctx, session.ID, profile))

	profile.Age = 31
	profile.CurrentMedications = "ibuprofen"
	require.NoError(t, profiles.Upsert(ctx, session.ID, profile))

	fetched, err := profiles.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 31, fetched.Age)
	assert.Equal(t, "ibuprofen", fetched.CurrentMedications)
}

func TestProfileRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	profiles := NewSQLiteProfileRepo(db)

	_, err := profiles.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}
