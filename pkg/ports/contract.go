package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	digest := "contract-test-" + time.Now().Format("20060102150405")

	sample := func() *domain.Result {
		return &domain.Result{
			Mode:     domain.ModeCube,
			FaceSize: 4,
			Final: domain.Pose{
				Face:   domain.Position{X: 1, Y: 1},
				Offset: domain.Position{X: 2, Y: 0},
				Facing: domain.Up,
			},
			Password: 5031,
			Steps:    31,
			Crossed:  6,
			Visited:  []domain.Position{{X: 2, Y: 0}, {X: 2, Y: 1}},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, digest, sample())
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, digest)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sample().Final, loaded.Final)
		assert.Equal(t, 5031, loaded.Password)
		assert.Equal(t, domain.ModeCube, loaded.Mode)
		assert.Equal(t, sample().Visited, loaded.Visited)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+digest)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		r := sample()
		r.Password = 6032
		require.NoError(t, store.Save(ctx, digest, r))

		loaded, err := store.Load(ctx, digest)
		require.NoError(t, err)
		assert.Equal(t, 6032, loaded.Password)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, digest, sample())
		require.NoError(t, err)

		err = store.Delete(ctx, digest)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, digest)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")

		assert.NoError(t, store.Delete(ctx, digest), "deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := digest + "-1"
		id2 := digest + "-2"
		_ = store.Save(ctx, id1, sample())
		_ = store.Save(ctx, id2, sample())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		digests, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, digests, id1)
		assert.Contains(t, digests, id2)
	})
}
