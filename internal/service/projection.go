package service

import (
	"context"

	"github.com/faturo/faturo/internal/domain/assignment"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
)

// Projection is the live, recomputed estimate of what a period would bill now.
// It is derived fresh on every resolution request and never persisted.
type Projection struct {
	ServiceItems []types.BillableLine
	ProductItems []types.BillableLine
	Totals       types.Totals
}

// Lines returns service items followed by product items.
func (p *Projection) Lines() []types.BillableLine {
	return append(append([]types.BillableLine{}, p.ServiceItems...), p.ProductItems...)
}

// ProjectionBuilderService computes projections from the current, mutable
// contract configuration.
type ProjectionBuilderService interface {
	BuildProjection(ctx context.Context, contractID string) (*Projection, error)
}

type projectionBuilderService struct {
	ServiceParams
}

func NewProjectionBuilderService(params ServiceParams) ProjectionBuilderService {
	return &projectionBuilderService{
		ServiceParams: params,
	}
}

// BuildProjection loads the contract's active, billing-eligible service and
// product assignments and aggregates them with the canonical line arithmetic.
// Either read degrades to an empty list with a warning; a projection never
// hard-fails on a single bad assignment query.
func (s *projectionBuilderService) BuildProjection(ctx context.Context, contractID string) (*Projection, error) {
	services, err := s.AssignmentRepo.ListActiveServices(ctx, contractID)
	if err != nil {
		s.Logger.Warnw("failed to load service assignments, projecting without them",
			"contract_id", contractID,
			"error", err,
		)
		services = nil
	}

	products, err := s.AssignmentRepo.ListActiveProducts(ctx, contractID)
	if err != nil {
		s.Logger.Warnw("failed to load product assignments, projecting without them",
			"contract_id", contractID,
			"error", err,
		)
		products = nil
	}

	proj := &Projection{
		ServiceItems: toBillableLines(services),
		ProductItems: toBillableLines(products),
	}
	proj.Totals = Aggregate(proj.Lines())
	return proj, nil
}

func toBillableLines(assignments []*assignment.ContractLineAssignment) []types.BillableLine {
	billable := lo.Filter(assignments, func(a *assignment.ContractLineAssignment, _ int) bool {
		return a.IsBillable()
	})
	return lo.Map(billable, func(a *assignment.ContractLineAssignment, _ int) types.BillableLine {
		return a.ToBillableLine()
	})
}
