//go:build integration
// +build integration

package actors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/testutils"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

func TestRedisRepository_Integration(t *testing.T) {
	// Starts a throwaway Redis container; skipped when Docker is unavailable
	client := testutils.CreateRedisContainerClientOrSkip(t)

	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() actors.Repository {
			testutils.FlushRedis(t, client)
			return actors.NewRedisRepository(&actors.RedisRepoConfig{
				Client:        client,
				UUIDGenerator: uuid.NewSequenceGenerator("item"),
			})
		},
	})
}
