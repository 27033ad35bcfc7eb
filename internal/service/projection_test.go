package service

import (
	"testing"

	"github.com/faturo/faturo/internal/domain/assignment"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/testutil"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProjectionBuilderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProjectionBuilderService
}

func TestProjectionBuilderService(t *testing.T) {
	suite.Run(t, new(ProjectionBuilderServiceSuite))
}

func (s *ProjectionBuilderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewProjectionBuilderService(ServiceParams{
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
}

func (s *ProjectionBuilderServiceSuite) seedAssignment(id string, origin types.LineOrigin, price int64, active, generate bool) {
	a := &assignment.ContractLineAssignment{
		ID:              id,
		ContractID:      "contract_1",
		Origin:          origin,
		Description:     "line " + id,
		Quantity:        decimal.NewFromInt(1),
		UnitPrice:       decimal.NewFromInt(price),
		IsActive:        active,
		GenerateBilling: generate,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().AssignmentRepo.(*testutil.InMemoryAssignmentStore).Create(s.GetContext(), a))
}

func (s *ProjectionBuilderServiceSuite) TestBuildProjection() {
	s.seedAssignment("assign_1", types.LineOriginService, 200, true, true)
	s.seedAssignment("assign_2", types.LineOriginProduct, 75, true, true)

	proj, err := s.service.BuildProjection(s.GetContext(), "contract_1")
	s.NoError(err)
	s.Len(proj.ServiceItems, 1)
	s.Len(proj.ProductItems, 1)
	s.Equal("200", proj.Totals.Services.String())
	s.Equal("75", proj.Totals.Products.String())
	s.Equal("275", proj.Totals.Net.String())
}

func (s *ProjectionBuilderServiceSuite) TestBuildProjectionSkipsNonBillableAssignments() {
	s.seedAssignment("assign_1", types.LineOriginService, 200, true, true)
	s.seedAssignment("assign_2", types.LineOriginService, 300, false, true)
	s.seedAssignment("assign_3", types.LineOriginService, 400, true, false)

	proj, err := s.service.BuildProjection(s.GetContext(), "contract_1")
	s.NoError(err)
	s.Len(proj.ServiceItems, 1)
	s.Equal("200", proj.Totals.Net.String())
}

func (s *ProjectionBuilderServiceSuite) TestBuildProjectionEmptyContract() {
	proj, err := s.service.BuildProjection(s.GetContext(), "contract_without_lines")
	s.NoError(err)
	s.Empty(proj.Lines())
	s.True(proj.Totals.Net.IsZero())
}

func (s *ProjectionBuilderServiceSuite) TestBuildProjectionDegradesOnFailedServiceRead() {
	s.seedAssignment("assign_1", types.LineOriginService, 200, true, true)
	s.seedAssignment("assign_2", types.LineOriginProduct, 75, true, true)

	dbErr := ierr.NewError("read failed").Mark(ierr.ErrDatabase)
	s.GetStores().AssignmentRepo.(*testutil.InMemoryAssignmentStore).FailServices(dbErr)

	proj, err := s.service.BuildProjection(s.GetContext(), "contract_1")
	s.NoError(err)
	s.Empty(proj.ServiceItems)
	s.Len(proj.ProductItems, 1)
	s.Equal("75", proj.Totals.Net.String())
}

func (s *ProjectionBuilderServiceSuite) TestBuildProjectionDegradesOnFailedProductRead() {
	s.seedAssignment("assign_1", types.LineOriginService, 200, true, true)

	dbErr := ierr.NewError("read failed").Mark(ierr.ErrDatabase)
	s.GetStores().AssignmentRepo.(*testutil.InMemoryAssignmentStore).FailProducts(dbErr)

	proj, err := s.service.BuildProjection(s.GetContext(), "contract_1")
	s.NoError(err)
	s.Len(proj.ServiceItems, 1)
	s.Empty(proj.ProductItems)
	s.Equal("200", proj.Totals.Net.String())
}
