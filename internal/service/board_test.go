package service

import (
	"context"
	"testing"
	"time"

	"github.com/faturo/faturo/internal/api/dto"
	"github.com/faturo/faturo/internal/domain/charge"
	"github.com/faturo/faturo/internal/domain/contract"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/testutil"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type LifecycleBoardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LifecycleBoardService
	today   time.Time
}

func TestLifecycleBoardService(t *testing.T) {
	suite.Run(t, new(LifecycleBoardServiceSuite))
}

func (s *LifecycleBoardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	// Mid-month so there is room on both sides of the billing day.
	s.today = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	stores := s.GetStores()
	params := ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		Cache:          s.GetCache(),
		PeriodRepo:     stores.PeriodRepo,
		ContractRepo:   stores.ContractRepo,
		CustomerRepo:   stores.CustomerRepo,
		SnapshotRepo:   stores.SnapshotRepo,
		AssignmentRepo: stores.AssignmentRepo,
		ChargeRepo:     stores.ChargeRepo,
	}
	s.service = NewLifecycleBoardServiceWithClock(params, func() time.Time { return s.today })
}

func (s *LifecycleBoardServiceSuite) seedContract(id string, billingDay int, state types.ContractStatus, finalDate *time.Time) {
	c := &contract.Contract{
		ID:         id,
		CustomerID: "cust_1",
		BillingDay: billingDay,
		State:      state,
		FinalDate:  finalDate,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ContractRepo.(*testutil.InMemoryContractStore).Create(s.GetContext(), c))
}

func (s *LifecycleBoardServiceSuite) seedCharge(id, contractID string, createdAt time.Time) {
	base := types.GetDefaultBaseModel(s.GetContext())
	base.CreatedAt = createdAt

	c := &charge.ChargeRecord{
		ID:           id,
		ContractID:   contractID,
		ChargeStatus: types.ChargeStatusIssued,
		BaseModel:    base,
	}
	s.NoError(s.GetStores().ChargeRepo.(*testutil.InMemoryChargeStore).Create(s.GetContext(), c))
}

func cardIDs(cards []dto.BoardCard) []string {
	return lo.Map(cards, func(c dto.BoardCard, _ int) string { return c.ContractID })
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardBucketMembership() {
	s.seedContract("contract_today", 15, types.ContractStatusActive, nil)
	s.seedContract("contract_pending", 10, types.ContractStatusActive, nil)
	s.seedContract("contract_future", 25, types.ContractStatusActive, nil)
	s.seedContract("contract_charged", 10, types.ContractStatusActive, nil)
	s.seedCharge("charge_1", "contract_charged", s.today.Add(-24*time.Hour))
	s.seedContract("contract_renew", 5, types.ContractStatusActive, lo.ToPtr(s.today.Add(-24*time.Hour)))

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)

	s.Equal([]string{"contract_today"}, cardIDs(board.ToInvoiceToday))
	s.Equal([]string{"contract_pending"}, cardIDs(board.Pending))
	s.Equal([]string{"contract_charged"}, cardIDs(board.InvoicedThisMonth))
	s.Equal([]string{"contract_renew"}, cardIDs(board.ToRenew))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardChargedContractLeavesPending() {
	s.seedContract("contract_1", 10, types.ContractStatusActive, nil)

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Equal([]string{"contract_1"}, cardIDs(board.Pending))
	s.Empty(board.InvoicedThisMonth)

	s.seedCharge("charge_1", "contract_1", s.today)

	// A stale cached board would still show the old membership.
	s.GetCache().Flush(context.Background())

	board, err = s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Empty(board.Pending)
	s.Equal([]string{"contract_1"}, cardIDs(board.InvoicedThisMonth))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardChargeOutsideMonthDoesNotCount() {
	s.seedContract("contract_1", 10, types.ContractStatusActive, nil)
	s.seedCharge("charge_old", "contract_1", s.today.AddDate(0, -1, 0))

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Equal([]string{"contract_1"}, cardIDs(board.Pending))
	s.Empty(board.InvoicedThisMonth)
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardInvoicedDeduplicatesContracts() {
	s.seedContract("contract_1", 5, types.ContractStatusActive, nil)
	s.seedCharge("charge_1", "contract_1", s.today.Add(-48*time.Hour))
	s.seedCharge("charge_2", "contract_1", s.today.Add(-24*time.Hour))

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Equal([]string{"contract_1"}, cardIDs(board.InvoicedThisMonth))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardExcludesExpiredFromInvoiceBuckets() {
	yesterday := s.today.Add(-24 * time.Hour)
	s.seedContract("contract_1", 15, types.ContractStatusActive, lo.ToPtr(yesterday))

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Empty(board.ToInvoiceToday)
	s.Empty(board.Pending)
	s.Equal([]string{"contract_1"}, cardIDs(board.ToRenew))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardRenewIncludesExpiredState() {
	s.seedContract("contract_1", 5, types.ContractStatusExpired, lo.ToPtr(s.today.AddDate(0, -2, 0)))
	s.seedContract("contract_2", 5, types.ContractStatusCancelled, lo.ToPtr(s.today.AddDate(0, -2, 0)))

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Equal([]string{"contract_1"}, cardIDs(board.ToRenew))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardOneFailingBucketDoesNotBlankOthers() {
	s.seedContract("contract_1", 15, types.ContractStatusActive, nil)
	s.seedContract("contract_renew", 5, types.ContractStatusActive, lo.ToPtr(s.today.Add(-24*time.Hour)))

	dbErr := ierr.NewError("query failed").Mark(ierr.ErrDatabase)
	s.GetStores().ContractRepo.(*testutil.InMemoryContractStore).FailList("past_final_date", dbErr)

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Equal([]string{"contract_1"}, cardIDs(board.ToInvoiceToday))
	s.Empty(board.ToRenew)
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardRequiresTenant() {
	_, err := s.service.LoadBoard(context.Background())
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *LifecycleBoardServiceSuite) TestLoadBoardServesCachedCopy() {
	s.seedContract("contract_1", 15, types.ContractStatusActive, nil)

	board, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Len(board.ToInvoiceToday, 1)

	// New data is invisible until the cache entry expires or is invalidated.
	s.seedContract("contract_2", 15, types.ContractStatusActive, nil)

	board, err = s.service.LoadBoard(s.GetContext())
	s.NoError(err)
	s.Len(board.ToInvoiceToday, 1)
}

func (s *LifecycleBoardServiceSuite) TestUpdateChargeStatusReloadsBoard() {
	s.seedContract("contract_1", 10, types.ContractStatusActive, nil)
	s.seedCharge("charge_1", "contract_1", s.today)

	// Prime the cache.
	_, err := s.service.LoadBoard(s.GetContext())
	s.NoError(err)

	s.seedContract("contract_2", 15, types.ContractStatusActive, nil)

	board, err := s.service.UpdateChargeStatus(s.GetContext(), dto.UpdateChargeStatusRequest{
		ContractID: "contract_1",
		ChargeID:   "charge_1",
		Status:     types.ChargeStatusPaid,
	})
	s.NoError(err)

	// The update invalidated the cached board, so the reload sees the
	// contract added after priming.
	s.Equal([]string{"contract_2"}, cardIDs(board.ToInvoiceToday))

	updated, err := s.GetStores().ChargeRepo.(*testutil.InMemoryChargeStore).Get(s.GetContext(), "charge_1")
	s.NoError(err)
	s.Equal(types.ChargeStatusPaid, updated.ChargeStatus)
}

func (s *LifecycleBoardServiceSuite) TestUpdateChargeStatusValidation() {
	_, err := s.service.UpdateChargeStatus(s.GetContext(), dto.UpdateChargeStatusRequest{
		ContractID: "contract_1",
		ChargeID:   "",
		Status:     types.ChargeStatusPaid,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.UpdateChargeStatus(s.GetContext(), dto.UpdateChargeStatusRequest{
		ContractID: "contract_1",
		ChargeID:   "charge_1",
		Status:     types.ChargeStatus("UNKNOWN"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LifecycleBoardServiceSuite) TestUpdateChargeStatusMissingCharge() {
	_, err := s.service.UpdateChargeStatus(s.GetContext(), dto.UpdateChargeStatusRequest{
		ContractID: "contract_1",
		ChargeID:   "charge_missing",
		Status:     types.ChargeStatusPaid,
	})
	s.Error(err)
}
