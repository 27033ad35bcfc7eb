package service

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/api/dto"
	"github.com/faturo/faturo/internal/cache"
	"github.com/faturo/faturo/internal/domain/contract"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
)

// LifecycleBoardService builds the four-bucket pipeline view of a tenant's
// contracts and applies charge status updates against it.
type LifecycleBoardService interface {
	LoadBoard(ctx context.Context) (*dto.BoardResponse, error)
	UpdateChargeStatus(ctx context.Context, req dto.UpdateChargeStatusRequest) (*dto.BoardResponse, error)
}

type lifecycleBoardService struct {
	ServiceParams
	now func() time.Time
}

func NewLifecycleBoardService(params ServiceParams) LifecycleBoardService {
	return NewLifecycleBoardServiceWithClock(params, time.Now)
}

// NewLifecycleBoardServiceWithClock allows tests to pin today's date, since
// bucket membership depends on the current day of month.
func NewLifecycleBoardServiceWithClock(params ServiceParams, now func() time.Time) LifecycleBoardService {
	return &lifecycleBoardService{
		ServiceParams: params,
		now:           now,
	}
}

// LoadBoard runs the four bucket queries concurrently. Each bucket degrades to
// an empty list on its own failure so one bad query cannot blank the board.
// Boards are cached per tenant for a short TTL; status updates invalidate.
func (s *lifecycleBoardService) LoadBoard(ctx context.Context) (*dto.BoardResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Tenant context is required to load the board").
			Mark(ierr.ErrPermissionDenied)
	}

	cacheKey := s.boardCacheKey(ctx)
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if board, ok := cached.(*dto.BoardResponse); ok {
			return board, nil
		}
	}

	today := s.now().UTC()
	board := &dto.BoardResponse{}

	var wg conc.WaitGroup
	wg.Go(func() {
		board.ToInvoiceToday = s.bucket(ctx, "to_invoice_today", func() ([]*contract.Contract, error) {
			return s.listUncharged(ctx, today, false)
		})
	})
	wg.Go(func() {
		board.Pending = s.bucket(ctx, "pending", func() ([]*contract.Contract, error) {
			return s.listUncharged(ctx, today, true)
		})
	})
	wg.Go(func() {
		board.InvoicedThisMonth = s.bucket(ctx, "invoiced_this_month", func() ([]*contract.Contract, error) {
			contracts, err := s.ContractRepo.ListWithChargesInMonth(ctx, types.CurrentMonthWindow(today))
			if err != nil {
				return nil, err
			}
			// A contract with several charges this month appears once.
			return lo.UniqBy(contracts, func(c *contract.Contract) string { return c.ID }), nil
		})
	})
	wg.Go(func() {
		board.ToRenew = s.bucket(ctx, "to_renew", func() ([]*contract.Contract, error) {
			states := []types.ContractStatus{types.ContractStatusActive, types.ContractStatusExpired}
			return s.ContractRepo.ListPastFinalDate(ctx, today, states)
		})
	})
	wg.Wait()

	s.Cache.Set(ctx, cacheKey, board, s.Config.Board.CacheTTL)
	return board, nil
}

// UpdateChargeStatus flips the charge's payment status, then invalidates the
// tenant's cached board so the next load recomputes membership from the source
// queries. Buckets are derived, not stored; a full reload keeps them
// consistent where an incremental patch could not.
func (s *lifecycleBoardService) UpdateChargeStatus(ctx context.Context, req dto.UpdateChargeStatusRequest) (*dto.BoardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.ChargeRepo.UpdateStatus(ctx, req.ChargeID, req.Status); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not update the charge status").
			WithReportableDetails(map[string]any{
				"charge_id": req.ChargeID,
				"status":    req.Status,
			}).
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("charge status updated",
		"contract_id", req.ContractID,
		"charge_id", req.ChargeID,
		"status", req.Status,
	)

	s.Cache.Delete(ctx, s.boardCacheKey(ctx))
	return s.LoadBoard(ctx)
}

// bucket runs one bucket query, mapping failure to an empty list with a
// logged warning instead of propagating.
func (s *lifecycleBoardService) bucket(ctx context.Context, name string, query func() ([]*contract.Contract, error)) []dto.BoardCard {
	contracts, err := query()
	if err != nil {
		s.Logger.Warnw("board bucket query failed, returning empty bucket",
			"bucket", name,
			"tenant_id", types.GetTenantID(ctx),
			"error", err,
		)
		return []dto.BoardCard{}
	}
	return lo.Map(contracts, func(c *contract.Contract, _ int) dto.BoardCard {
		return dto.NewBoardCard(c)
	})
}

// listUncharged lists active contracts whose billing day matches today
// (beforeDay=false) or has already passed this month (beforeDay=true),
// excluding any contract that already has a charge record this month.
func (s *lifecycleBoardService) listUncharged(ctx context.Context, today time.Time, beforeDay bool) ([]*contract.Contract, error) {
	day := types.DayOfMonth(today)
	states := []types.ContractStatus{types.ContractStatusActive}
	contracts, err := s.ContractRepo.ListByBillingDay(ctx, day, beforeDay, states, today)
	if err != nil {
		return nil, err
	}

	window := types.CurrentMonthWindow(today)
	uncharged := make([]*contract.Contract, 0, len(contracts))
	for _, c := range contracts {
		exists, err := s.ChargeRepo.ExistsInWindow(ctx, c.ID, window)
		if err != nil {
			return nil, err
		}
		if !exists {
			uncharged = append(uncharged, c)
		}
	}
	return uncharged, nil
}

func (s *lifecycleBoardService) boardCacheKey(ctx context.Context) string {
	return cache.PrefixBoard + types.GetTenantID(ctx)
}
