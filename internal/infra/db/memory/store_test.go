package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanpyx/finsight/internal/domain/analysis"
	"github.com/aryanpyx/finsight/internal/domain/files"
	"github.com/aryanpyx/finsight/internal/domain/proposal"
	"github.com/aryanpyx/finsight/internal/domain/users"
)

func TestFileRepositoryInsertionOrder(t *testing.T) {
	repo := NewFileRepository(NewStore())
	ctx := context.Background()

	for _, f := range []*files.UploadedFile{
		{ID: "f1", OriginalName: "a.txt", Type: files.TypeContract},
		{ID: "f2", OriginalName: "b.csv", Type: files.TypeWorklog},
		{ID: "f3", OriginalName: "c.csv", Type: files.TypeWorklog},
	} {
		require.NoError(t, repo.Save(ctx, f))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, files.FileID("f1"), list[0].ID)
	assert.Equal(t, files.FileID("f2"), list[1].ID)
	assert.Equal(t, files.FileID("f3"), list[2].ID)

	logs, err := repo.ListByType(ctx, files.TypeWorklog)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, files.FileID("f2"), logs[0].ID)
	assert.Equal(t, files.FileID("f3"), logs[1].ID)

	none, err := repo.ListByType(ctx, files.TypeLicense)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileRepositorySaveOverwritesInPlace(t *testing.T) {
	repo := NewFileRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &files.UploadedFile{ID: "f1", OriginalName: "a.txt"}))
	require.NoError(t, repo.Save(ctx, &files.UploadedFile{ID: "f2", OriginalName: "b.txt"}))
	require.NoError(t, repo.Save(ctx, &files.UploadedFile{ID: "f1", OriginalName: "a2.txt"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, files.FileID("f1"), list[0].ID)
	assert.Equal(t, "a2.txt", list[0].OriginalName)
}

func TestFileRepositoryUpdateContent(t *testing.T) {
	repo := NewFileRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &files.UploadedFile{ID: "f1", Content: "old"}))

	updated, err := repo.UpdateContent(ctx, "f1", "new", true)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.True(t, updated.Processed)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", list[0].Content)

	_, err = repo.UpdateContent(ctx, "missing", "x", true)
	assert.ErrorIs(t, err, files.ErrNotFound)
}

func TestFileRepositoryReturnsCopies(t *testing.T) {
	repo := NewFileRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &files.UploadedFile{ID: "f1", Content: "original"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Content = "mutated by caller"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestAnalysisRepositoryListByType(t *testing.T) {
	repo := NewAnalysisRepository(NewStore())
	ctx := context.Background()

	for _, r := range []*analysis.Result{
		{ID: "r1", Type: analysis.TypeRevenueLeak, Bucket: analysis.BucketUnbilledWork},
		{ID: "r2", Type: analysis.TypeCostWaste, Bucket: analysis.BucketUnusedLicenses},
		{ID: "r3", Type: analysis.TypeRevenueLeak, Bucket: analysis.BucketSLABreaches},
	} {
		require.NoError(t, repo.Save(ctx, r))
	}

	leaks, err := repo.ListByType(ctx, analysis.TypeRevenueLeak)
	require.NoError(t, err)
	require.Len(t, leaks, 2)
	assert.Equal(t, analysis.ResultID("r1"), leaks[0].ID)
	assert.Equal(t, analysis.ResultID("r3"), leaks[1].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProposalRepositoryLatest(t *testing.T) {
	repo := NewProposalRepository(NewStore())
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest, "empty store has no latest proposal")

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// inserted out of order on purpose, Latest keys on CreatedAt
	require.NoError(t, repo.Save(ctx, &proposal.Proposal{ID: "p2", CreatedAt: t2}))
	require.NoError(t, repo.Save(ctx, &proposal.Proposal{ID: "p1", CreatedAt: t1}))

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, proposal.ProposalID("p2"), latest.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, proposal.ProposalID("p2"), list[0].ID)
}

func TestUserRepositoryUsernameUniqueness(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &users.User{ID: "u1", Username: "alice", Password: "hash1"}))

	err := repo.Save(ctx, &users.User{ID: "u2", Username: "alice", Password: "hash2"})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)

	u, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, users.UserID("u1"), u.ID)

	u, err = repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)
}
