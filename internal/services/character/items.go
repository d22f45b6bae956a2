package character

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/events"
)

// CreateWorldItem stores a world item and announces it, which makes the
// equipment cache reload on its next read
func (s *service) CreateWorldItem(ctx context.Context, item *entities.Item) (*entities.Item, error) {
	if s.world == nil {
		return nil, pwerr.Internalf("world item store is not configured")
	}

	created, err := s.world.Create(ctx, item)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to create world item")
	}

	s.logger.Info("created world item",
		zap.String("item_id", created.ID),
		zap.String("type", string(created.Type)),
	)
	s.emit(events.NewItemCreatedEvent(created.Clone()))

	return created, nil
}
