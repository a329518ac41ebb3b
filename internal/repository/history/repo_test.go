package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/shopsearch/internal/db"
	"github.com/kailas-cloud/shopsearch/internal/db/memory"
)

func TestNew_Key(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.Equal(t, "shopsearch:searchHistory", repo.Key())

	assert.Equal(t, "shopsearch:recent", New(&mockStore{}, "recent").Key())
}

func TestLoad_Missing(t *testing.T) {
	repo, _ := newTestRepo(t)

	terms, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}

func TestLoad_Decodes(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		assert.Equal(t, "shopsearch:searchHistory", key)
		return []byte(`["yoga mat","smart watch"]`), nil
	}

	terms, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"yoga mat", "smart watch"}, terms)
}

func TestLoad_NullIsEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(context.Context, string) ([]byte, error) { return []byte(`null`), nil }

	terms, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, terms)
}

func TestLoad_CorruptValue(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(context.Context, string) ([]byte, error) { return []byte(`{not json`), nil }

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestLoad_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	cause := &db.Error{Op: db.OpGet, Err: errors.New("connection reset")}
	ms.getFn = func(context.Context, string) ([]byte, error) { return nil, cause }

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestSave_Encodes(t *testing.T) {
	repo, ms := newTestRepo(t)
	var stored string
	ms.setFn = func(_ context.Context, _ string, value []byte) error {
		stored = string(value)
		return nil
	}

	require.NoError(t, repo.Save(context.Background(), []string{"a", "b"}))
	assert.Equal(t, `["a","b"]`, stored)

	require.NoError(t, repo.Save(context.Background(), nil))
	assert.Equal(t, `[]`, stored)
}

func TestSave_Error(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.setFn = func(context.Context, string, []byte) error { return errors.New("quota exceeded") }

	require.Error(t, repo.Save(context.Background(), []string{"a"}))
}

func TestSaveIfAbsent(t *testing.T) {
	repo, ms := newTestRepo(t)

	ok, err := repo.SaveIfAbsent(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, ok)

	ms.setNXFn = func(context.Context, string, []byte) error { return db.ErrKeyExists }
	ok, err = repo.SaveIfAbsent(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.False(t, ok)

	ms.setNXFn = func(context.Context, string, []byte) error { return errors.New("boom") }
	_, err = repo.SaveIfAbsent(context.Background(), []string{"a"})
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	repo, ms := newTestRepo(t)
	var deleted string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = key
		return nil
	}

	require.NoError(t, repo.Delete(context.Background()))
	assert.Equal(t, "shopsearch:searchHistory", deleted)

	ms.delFn = func(context.Context, string) error { return errors.New("boom") }
	require.Error(t, repo.Delete(context.Background()))
}

func TestRepo_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewStore(), "")

	require.NoError(t, repo.Save(ctx, []string{"gaming mouse"}))
	terms, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gaming mouse"}, terms)

	ok, err := repo.SaveIfAbsent(ctx, []string{"ignored"})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Delete(ctx))
	terms, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}
