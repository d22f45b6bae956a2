package compendium_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	mockcompendium "github.com/KirkDiggler/paranoidworld/internal/repositories/compendium/mock"
)

type EquipmentCacheTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	library *mockcompendium.MockLibrary
	world   *mockcompendium.MockWorldItems
	cache   *compendium.EquipmentCache
	ctx     context.Context
}

func (s *EquipmentCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.library = mockcompendium.NewMockLibrary(s.ctrl)
	s.world = mockcompendium.NewMockWorldItems(s.ctrl)
	s.cache = compendium.NewEquipmentCache(s.library, s.world, nil)
	s.ctx = context.Background()
}

func (s *EquipmentCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEquipmentCacheSuite(t *testing.T) {
	suite.Run(t, new(EquipmentCacheTestSuite))
}

func gear(id, name string) *entities.Item {
	return &entities.Item{ID: id, Name: name, Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{Quantity: 1}}
}

func (s *EquipmentCacheTestSuite) expectLoad() {
	s.world.EXPECT().List(gomock.Any(), entities.ItemTypeEquipment).
		Return([]*entities.Item{gear("pistol", "Custom Pistol")}, nil)
	s.library.EXPECT().Packs(gomock.Any()).Return([]string{"gear", "moves"}, nil)
	s.library.EXPECT().Pack(gomock.Any(), "gear").
		Return([]*entities.Item{gear("pistol", "Pistol"), gear("rope", "Rope")}, nil)
	s.library.EXPECT().Pack(gomock.Any(), "moves").
		Return([]*entities.Item{{ID: "m", Name: "Tail", Type: entities.ItemTypeMove, Move: &entities.MoveData{}}}, nil)
}

func (s *EquipmentCacheTestSuite) TestEquipment_WorldFirstAndCached() {
	s.expectLoad()

	items, err := s.cache.Equipment(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("Custom Pistol", items[0].Name)
	s.Equal("rope", items[1].ID)

	// Second call is served from the cache
	again, err := s.cache.Equipment(s.ctx, false)
	s.Require().NoError(err)
	s.Len(again, 2)
}

func (s *EquipmentCacheTestSuite) TestEquipment_ForceReload() {
	s.expectLoad()
	_, err := s.cache.Equipment(s.ctx, false)
	s.Require().NoError(err)

	s.expectLoad()
	_, err = s.cache.Equipment(s.ctx, true)
	s.Require().NoError(err)
}

func (s *EquipmentCacheTestSuite) TestInvalidate() {
	s.expectLoad()
	_, err := s.cache.Equipment(s.ctx, false)
	s.Require().NoError(err)

	s.cache.Invalidate()

	s.expectLoad()
	_, err = s.cache.Equipment(s.ctx, false)
	s.Require().NoError(err)
}

func (s *EquipmentCacheTestSuite) TestResolve_KeepsOrderAndSkipsUnknown() {
	s.expectLoad()

	items, err := s.cache.Resolve(s.ctx, []string{"rope", "missing", "pistol"})
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("rope", items[0].ID)
	s.Equal("pistol", items[1].ID)
}

func (s *EquipmentCacheTestSuite) TestEquipment_LibraryError() {
	s.world.EXPECT().List(gomock.Any(), entities.ItemTypeEquipment).Return(nil, nil)
	s.library.EXPECT().Packs(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.cache.Equipment(s.ctx, false)
	s.Error(err)
}
