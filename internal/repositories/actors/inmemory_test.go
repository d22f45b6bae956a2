package actors_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{newRepo: actors.NewInMemoryRepository})
}

func TestInMemoryRepository_AssignsSequentialItemIDs(t *testing.T) {
	repo := actors.NewInMemoryRepositoryWithIDs(uuid.NewSequenceGenerator("item"))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testActor("a1")))

	created, err := repo.CreateItems(ctx, "a1", []*entities.Item{
		{Name: "a", Type: entities.ItemTypeTag},
		{Name: "b", Type: entities.ItemTypeTag},
	})
	require.NoError(t, err)

	assert.Equal(t, "item-1", created[0].ID)
	assert.Equal(t, "item-2", created[1].ID)
}

func TestInMemoryRepository_ConcurrentCounterUpdates(t *testing.T) {
	repo := actors.NewInMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testActor("a1")))
	created, err := repo.CreateItems(ctx, "a1", []*entities.Item{
		{ID: "flare", Name: "Flare", Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{}},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = repo.UpdateItem(ctx, "a1", "flare", entities.ItemPatch{Quantity: &n})
		}(i)
	}
	wg.Wait()

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Items[0].Equipment.Quantity, 1)
	assert.LessOrEqual(t, got.Items[0].Equipment.Quantity, 20)
}
