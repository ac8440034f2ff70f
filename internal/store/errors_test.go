package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrTaskNotFoundIsNotFound(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(store.ErrTaskNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("get task 7: %w", store.ErrTaskNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrInvalidEntity))
	assert.Equal(t, "entity not found: task", store.ErrTaskNotFound.Error())
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := store.NewStoreError("task", "list", cause)

	assert.Equal(t, "list task: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	invalid := fmt.Errorf("get: %w", store.NewStoreError("task", "create", store.ErrInvalidEntity))
	assert.ErrorIs(t, invalid, store.ErrInvalidEntity)
	assert.False(t, store.IsNotFoundError(invalid))

	var storeErr *store.StoreError
	require.ErrorAs(t, invalid, &storeErr)
	assert.Equal(t, "task", storeErr.Entity)
	assert.Equal(t, "create", storeErr.Operation)
}
