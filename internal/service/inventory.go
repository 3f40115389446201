package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

type inventoryService struct {
	logger  *slog.Logger
	catalog Catalog
}

func NewInventoryService(logger *slog.Logger, catalog Catalog) *inventoryService {
	return &inventoryService{
		logger:  logger.With(slog.String("service", "inventory")),
		catalog: catalog,
	}
}

// GetProduct exposes the stock counters of a product to operators.
func (s *inventoryService) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return entities.Product{}, err
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}
