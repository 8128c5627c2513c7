package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/errcodes"
	"margin_engine/pkg/httpx/reply"
	"margin_engine/pkg/httpx/req"
	"margin_engine/pkg/rest"
)

type quoteService interface {
	Optimize(context.Context, entity.QuoteRequest) (entity.Quote, error)
	ObserveValidationFailure()
}

type policySource interface {
	Policies() map[value.Segment]value.SegmentPolicy
}

type PricingServer struct {
	quoteService quoteService
	policies     policySource
}

func NewPricingServer(quoteService quoteService, policies policySource) PricingServer {
	return PricingServer{
		quoteService: quoteService,
		policies:     policies,
	}
}

func (s PricingServer) postV1PricingOptimize(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.OptimizeRequest

	if err := req.Read(r, &request); err != nil {
		s.quoteService.ObserveValidationFailure()
		return fmt.Errorf("req.Read: %w", err)
	}

	quoteRequest, err := newDomainQuoteRequest(request)
	if err != nil {
		s.quoteService.ObserveValidationFailure()

		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainQuoteRequest: %w", err),
			failure.WithCode(errcodes.InvalidInput),
			failure.WithDescription(err.Error()),
		)
	}

	quote, err := s.quoteService.Optimize(ctx, quoteRequest)
	if errors.Is(err, domain.ErrInvalidInput) {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("quoteService.Optimize: %w", err),
			failure.WithCode(errcodes.InvalidInput),
			failure.WithDescription(err.Error()),
		)
	}

	if err != nil {
		return fmt.Errorf("quoteService.Optimize: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTOptimizeResponse(quote))

	return nil
}

func (s PricingServer) getV1PricingSegments(w http.ResponseWriter, r *http.Request) error {
	policies := s.policies.Policies()

	response := make([]rest.SegmentPolicy, 0, len(policies))
	for _, segment := range value.Segments() {
		p := policies[segment]

		response = append(response, rest.SegmentPolicy{
			Segment:      segment.String(),
			TargetMargin: p.TargetMargin,
			Elasticity:   p.Elasticity,
		})
	}

	reply.JSON(r.Context(), w, http.StatusOK, response)

	return nil
}

func (s PricingServer) getV1PricingSeasons(w http.ResponseWriter, r *http.Request) error {
	seasons := value.Seasons()

	response := make([]rest.SeasonFactor, 0, len(seasons))
	for _, season := range seasons {
		factor, _ := season.Factor()

		response = append(response, rest.SeasonFactor{
			Season: season.String(),
			Factor: factor,
		})
	}

	reply.JSON(r.Context(), w, http.StatusOK, response)

	return nil
}
