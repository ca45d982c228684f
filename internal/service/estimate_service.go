package service

import (
	"context"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/estimation"
)

type estimateService struct {
	models ModelSource
}

// NewEstimateService previews estimates against the current model without
// persisting anything.
func NewEstimateService(models ModelSource) EstimateService {
	return &estimateService{models: models}
}

func (s *estimateService) Estimate(ctx context.Context, req contract.EstimateRequest) (*contract.EstimateResponse, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	var errs []error
	errs = append(errs, scoreErrors(role, req.Scores)...)
	if err := overrideError(role, req.FocusOverride); err != nil {
		errs = append(errs, err)
	}
	intake, err := parseIntakeSource(req.IntakeSource)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	m, _, err := s.models.Model(ctx)
	if err != nil {
		return nil, err
	}
	res, ok := m.Resolve(role, req.Scores, req.FocusOverride, intake)
	if !ok {
		res = m.Estimate(role, req.Scores)
	}
	return &contract.EstimateResponse{
		Role:         role,
		EffortResult: res,
		Scored:       estimation.HasValidScore(req.Scores, m.Factors(role)),
	}, nil
}
