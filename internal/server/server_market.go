package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"margin_engine/internal/domain/entity"
	"margin_engine/pkg/errcodes"
	"margin_engine/pkg/httpx/reply"
)

type positioningService interface {
	Products(context.Context, entity.ProductFilter) ([]entity.Product, error)
	Position(context.Context, entity.ProductFilter) (entity.Positioning, error)
}

type MarketServer struct {
	positioningService positioningService
}

func NewMarketServer(positioningService positioningService) MarketServer {
	return MarketServer{
		positioningService: positioningService,
	}
}

func (s MarketServer) getV1MarketProducts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	filter, err := newDomainProductFilter(r.URL.Query())
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainProductFilter: %w", err),
			failure.WithCode(errcodes.InvalidPriceRange),
			failure.WithDescription(err.Error()),
		)
	}

	products, err := s.positioningService.Products(ctx, filter)
	if err != nil {
		return fmt.Errorf("positioningService.Products: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProducts(products))

	return nil
}

func (s MarketServer) getV1MarketPositioning(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	filter, err := newDomainProductFilter(r.URL.Query())
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainProductFilter: %w", err),
			failure.WithCode(errcodes.InvalidPriceRange),
			failure.WithDescription(err.Error()),
		)
	}

	positioning, err := s.positioningService.Position(ctx, filter)
	if err != nil {
		return fmt.Errorf("positioningService.Position: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPositioning(positioning))

	return nil
}
