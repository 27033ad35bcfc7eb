package service

import (
	"testing"
	"time"

	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/testutil"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SnapshotReaderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     SnapshotReaderService
	periodStart time.Time
	periodEnd   time.Time
}

func TestSnapshotReaderService(t *testing.T) {
	suite.Run(t, new(SnapshotReaderServiceSuite))
}

func (s *SnapshotReaderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewSnapshotReaderService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		Cache:          s.GetCache(),
		PeriodRepo:     stores.PeriodRepo,
		ContractRepo:   stores.ContractRepo,
		CustomerRepo:   stores.CustomerRepo,
		SnapshotRepo:   stores.SnapshotRepo,
		AssignmentRepo: stores.AssignmentRepo,
		ChargeRepo:     stores.ChargeRepo,
	})

	s.periodStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.periodEnd = s.periodStart.AddDate(0, 1, 0)
}

func (s *SnapshotReaderServiceSuite) seedSnapshot(id string, periodID *string, createdAt time.Time, net int64) {
	base := types.GetDefaultBaseModel(s.GetContext())
	base.CreatedAt = createdAt

	snap := &snapshot.BillingSnapshot{
		ID:                 id,
		ContractID:         "contract_1",
		PeriodID:           periodID,
		ReferencePeriod:    types.ReferencePeriodKey(s.periodStart),
		ReferenceStartDate: s.periodStart,
		ReferenceEndDate:   s.periodEnd,
		DueDate:            s.periodStart.AddDate(0, 0, 9),
		IssueDate:          s.periodStart,
		NetAmount:          decimal.NewFromInt(net),
		BaseModel:          base,
	}
	s.NoError(s.GetStores().SnapshotRepo.(*testutil.InMemorySnapshotStore).Create(s.GetContext(), snap))
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotByPeriodID() {
	s.seedSnapshot("snap_1", lo.ToPtr("period_1"), s.GetNow(), 500)

	snap, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.NotNil(snap)
	s.Equal("snap_1", snap.ID)
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotFallsBackToReferenceMatch() {
	s.seedSnapshot("snap_1", nil, s.GetNow(), 500)

	snap, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.NotNil(snap)
	s.Equal("snap_1", snap.ID)
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotMissingReturnsNil() {
	snap, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.Nil(snap)
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotPrefersExplicitLink() {
	s.seedSnapshot("snap_linked", lo.ToPtr("period_1"), s.GetNow().Add(-time.Hour), 100)
	s.seedSnapshot("snap_unlinked", nil, s.GetNow(), 900)

	snap, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.NotNil(snap)
	s.Equal("snap_linked", snap.ID)
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotAmbiguousReferenceUsesMostRecent() {
	s.seedSnapshot("snap_old", nil, s.GetNow().Add(-2*time.Hour), 100)
	s.seedSnapshot("snap_new", nil, s.GetNow(), 900)

	snap, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.NotNil(snap)
	s.Equal("snap_new", snap.ID)
}

func (s *SnapshotReaderServiceSuite) TestLoadSnapshotIgnoresOtherMonths() {
	base := types.GetDefaultBaseModel(s.GetContext())
	otherStart := s.periodStart.AddDate(0, -1, 0)
	snap := &snapshot.BillingSnapshot{
		ID:                 "snap_feb",
		ContractID:         "contract_1",
		ReferencePeriod:    types.ReferencePeriodKey(otherStart),
		ReferenceStartDate: otherStart,
		ReferenceEndDate:   s.periodStart,
		DueDate:            otherStart,
		IssueDate:          otherStart,
		NetAmount:          decimal.NewFromInt(100),
		BaseModel:          base,
	}
	s.NoError(s.GetStores().SnapshotRepo.(*testutil.InMemorySnapshotStore).Create(s.GetContext(), snap))

	got, err := s.service.LoadSnapshot(s.GetContext(), "contract_1", "period_1", s.periodStart, s.periodEnd)
	s.NoError(err)
	s.Nil(got)
}
