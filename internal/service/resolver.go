package service

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/faturo/faturo/internal/api/dto"
	"github.com/faturo/faturo/internal/domain/period"
	"github.com/faturo/faturo/internal/domain/snapshot"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
)

// PeriodResolverService determines a billing period's lifecycle state and
// resolves its authoritative order view: frozen snapshot data for BILLED/PAID
// periods, a live projection otherwise.
type PeriodResolverService interface {
	Resolve(ctx context.Context, periodID string) (*dto.BillingOrderResponse, error)
}

type periodResolverService struct {
	ServiceParams
	snapshots   SnapshotReaderService
	projections ProjectionBuilderService
}

func NewPeriodResolverService(params ServiceParams) PeriodResolverService {
	return &periodResolverService{
		ServiceParams: params,
		snapshots:     NewSnapshotReaderService(params),
		projections:   NewProjectionBuilderService(params),
	}
}

// linearBackOff waits step, 2*step, 3*step... between attempts. Transient
// reads after long idle sessions recover within a few hundred milliseconds,
// so a short linear ramp beats an exponential one here.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.step
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

func (s *periodResolverService) Resolve(ctx context.Context, periodID string) (*dto.BillingOrderResponse, error) {
	if periodID == "" {
		return nil, ierr.NewError("period id is required").
			WithHint("Provide the billing period to resolve").
			Mark(ierr.ErrValidation)
	}

	p, err := s.lookupPeriodWithRetry(ctx, periodID)
	if err != nil {
		if ierr.IsNotFound(err) {
			// Recoverable: the row may land after a refresh, so surfaced as
			// retryable rather than structural.
			return nil, ierr.WithError(err).
				WithHint("Billing period not found, reload and try again").
				WithReportableDetails(map[string]any{
					"period_id": periodID,
				}).
				Mark(ierr.ErrPeriodNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Could not load the billing period").
			Mark(ierr.ErrDatabase)
	}

	// Standalone periods are delegated, not resolved here: the caller
	// redirects to the standalone-specific path.
	if p.IsStandalone {
		return nil, ierr.NewError("period is standalone").
			WithHint("Standalone periods are handled by the standalone order flow").
			WithReportableDetails(map[string]any{
				"period_id": periodID,
			}).
			Mark(ierr.ErrStandalonePeriod)
	}

	// A contract or customer row that is genuinely missing is a structural
	// data integrity problem no retry can fix. A failed read is not missing
	// data and stays retryable.
	c, err := s.ContractRepo.Get(ctx, lo.FromPtr(p.ContractID))
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("The period's contract no longer exists").
				WithReportableDetails(map[string]any{
					"period_id":   periodID,
					"contract_id": lo.FromPtr(p.ContractID),
				}).
				Mark(ierr.ErrContractNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Could not load the period's contract").
			Mark(ierr.ErrDatabase)
	}

	cust, err := s.CustomerRepo.Get(ctx, c.CustomerID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("The contract's customer no longer exists").
				WithReportableDetails(map[string]any{
					"contract_id": c.ID,
					"customer_id": c.CustomerID,
				}).
				Mark(ierr.ErrCustomerNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Could not load the contract's customer").
			Mark(ierr.ErrDatabase)
	}

	order := &dto.BillingOrderResponse{
		PeriodID:      p.ID,
		ContractID:    c.ID,
		CustomerName:  cust.Name,
		OrderNumber:   orderNumber(p),
		PeriodStart:   p.PeriodStart,
		PeriodEnd:     p.PeriodEnd,
		PeriodStatus:  p.PeriodStatus,
		AmountPlanned: p.AmountPlanned,
		AmountBilled:  p.AmountBilled,
		PaymentMethod: p.PaymentMethod,
	}

	if p.IsFrozen() {
		snap, err := s.snapshots.LoadSnapshot(ctx, c.ID, p.ID, p.PeriodStart, p.PeriodEnd)
		if err != nil {
			return nil, err
		}
		if snap != nil {
			fillFromSnapshot(order, snap)
			return order, nil
		}
		// Transitional state: the period is marked billed but its snapshot
		// has not landed yet. Fall through to a live projection.
		s.Logger.Warnw("frozen period has no snapshot yet, falling back to projection",
			"period_id", p.ID,
			"contract_id", c.ID,
			"period_status", p.PeriodStatus,
		)
	}

	proj, err := s.projections.BuildProjection(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	fillFromProjection(order, proj)
	return order, nil
}

// lookupPeriodWithRetry retries transient period lookups with a bounded linear
// backoff. A not-found result is never retried: retrying cannot make the row
// appear.
func (s *periodResolverService) lookupPeriodWithRetry(ctx context.Context, periodID string) (*period.BillingPeriod, error) {
	attempt := 0
	operation := func() (*period.BillingPeriod, error) {
		attempt++
		p, err := s.PeriodRepo.Get(ctx, periodID)
		if err != nil {
			if ierr.IsNotFound(err) {
				return nil, backoff.Permanent(err)
			}
			s.Logger.Warnw("transient period lookup failure",
				"period_id", periodID,
				"attempt", attempt,
				"error", err,
			)
			return nil, err
		}
		return p, nil
	}

	// Guard the unsigned subtraction: a zero MaxAttempts still means one
	// attempt, not an unbounded retry loop.
	maxAttempts := s.Config.Resolver.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 1
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			&linearBackOff{step: s.Config.Resolver.BackoffStep},
			uint64(maxAttempts-1),
		),
		ctx,
	)
	return backoff.RetryWithData(operation, policy)
}

func orderNumber(p *period.BillingPeriod) string {
	if p.OrderNumber != "" {
		return p.OrderNumber
	}
	return types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER)
}

func fillFromSnapshot(order *dto.BillingOrderResponse, snap *snapshot.BillingSnapshot) {
	totals := AggregateSnapshot(snap.LineItems)
	order.IsFrozen = true
	order.TotalServices = totals.Services
	order.TotalProducts = totals.Products
	order.TotalDiscounts = totals.Discounts
	order.TotalTaxes = totals.Taxes
	order.InstallmentNumber = snap.InstallmentNumber
	order.TotalInstallments = snap.TotalInstallments
	if snap.PaymentMethod != "" {
		order.PaymentMethod = snap.PaymentMethod
	}
	if order.AmountBilled == nil {
		order.AmountBilled = lo.ToPtr(snap.NetAmount)
	}
	order.Items = lo.Map(snap.LineItems, func(item *snapshot.SnapshotLineItem, _ int) dto.OrderLineItem {
		return dto.OrderLineItem{
			Description:    item.Description,
			Origin:         item.Origin,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			DiscountAmount: item.DiscountAmount,
			TaxAmount:      item.TaxAmount,
			TotalAmount:    item.TotalAmount,
		}
	})
}

func fillFromProjection(order *dto.BillingOrderResponse, proj *Projection) {
	order.IsFrozen = false
	order.TotalServices = proj.Totals.Services
	order.TotalProducts = proj.Totals.Products
	order.TotalDiscounts = proj.Totals.Discounts
	order.TotalTaxes = proj.Totals.Taxes
	if order.AmountPlanned.IsZero() {
		order.AmountPlanned = proj.Totals.Net
	}
	order.Items = lo.Map(proj.Lines(), func(line types.BillableLine, _ int) dto.OrderLineItem {
		c := ComputeLine(line)
		return dto.OrderLineItem{
			Description:    line.Description,
			Origin:         line.Origin,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			DiscountAmount: c.Discount,
			TaxAmount:      c.Tax,
			TotalAmount:    c.LineTotal,
		}
	})
}
