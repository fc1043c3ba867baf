package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddAssignsIDAndTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fixedNow(t, at)
	f := newMemoryFixture(t)

	exp := mustAddExperience(t, f, "Acme")
	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, at, exp.CreatedAt)
	assert.Equal(t, "Acme", exp.Company)
}

func TestCatalog_ListKeepsInsertionOrder(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	empty, err := f.catalog.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, c := range []string{"Acme", "Globex", "Initech"} {
		mustAddExperience(t, f, c)
	}

	first, err := f.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "Acme", first[0].Company)
	assert.Equal(t, "Globex", first[1].Company)
	assert.Equal(t, "Initech", first[2].Company)

	second, err := f.catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalog_AddDoesNotValidateFields(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Add(ctx, models.Experience{})
	require.NoError(t, err)

	list, err := f.catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCatalog_Get(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()
	exp := mustAddExperience(t, f, "Acme")

	got, err := f.catalog.Get(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, exp.Company, got.Company)

	_, err = f.catalog.Get(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
