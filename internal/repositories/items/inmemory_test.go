package items_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/items"
	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo items.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = items.NewInMemoryRepository(uuid.NewSequenceGenerator("world"))
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_AssignsIDAndNormalizes() {
	created, err := s.repo.Create(s.ctx, &entities.Item{Name: "Quickdraw", Type: entities.ItemTypeMove})

	s.Require().NoError(err)
	s.Equal("world-1", created.ID)
	s.Require().NotNil(created.Move)
	s.Equal(1, created.Move.RequiresLevel)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_RejectsUnknownType() {
	_, err := s.repo.Create(s.ctx, &entities.Item{Name: "Fireball", Type: "spell"})
	s.True(pwerr.IsValidation(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Duplicate() {
	item := &entities.Item{ID: "x", Name: "Rope", Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{}}
	_, err := s.repo.Create(s.ctx, item)
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, item)
	s.True(pwerr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestList_FiltersByTypeAndSortsByName() {
	for _, item := range []*entities.Item{
		{Name: "Tail", Type: entities.ItemTypeMove},
		{Name: "Ambush", Type: entities.ItemTypeMove},
		{Name: "Rope", Type: entities.ItemTypeEquipment},
	} {
		_, err := s.repo.Create(s.ctx, item)
		s.Require().NoError(err)
	}

	moves, err := s.repo.List(s.ctx, entities.ItemTypeMove)
	s.Require().NoError(err)
	s.Require().Len(moves, 2)
	s.Equal("Ambush", moves[0].Name)
	s.Equal("Tail", moves[1].Name)

	all, err := s.repo.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *InMemoryRepositoryTestSuite) TestGetAndDelete() {
	created, err := s.repo.Create(s.ctx, &entities.Item{Name: "Kai", Type: entities.ItemTypeBond})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Kai", got.Name)

	s.Require().NoError(s.repo.Delete(s.ctx, created.ID))
	_, err = s.repo.Get(s.ctx, created.ID)
	s.True(pwerr.IsNotFound(err))
	s.True(pwerr.IsNotFound(s.repo.Delete(s.ctx, created.ID)))
}
