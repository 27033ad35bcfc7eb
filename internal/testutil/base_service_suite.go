package testutil

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/cache"
	"github.com/faturo/faturo/internal/config"
	"github.com/faturo/faturo/internal/domain/assignment"
	"github.com/faturo/faturo/internal/domain/charge"
	"github.com/faturo/faturo/internal/domain/contract"
	"github.com/faturo/faturo/internal/domain/customer"
	"github.com/faturo/faturo/internal/domain/period"
	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/types"
	"github.com/faturo/faturo/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	PeriodRepo     period.Repository
	ContractRepo   contract.Repository
	CustomerRepo   customer.Repository
	SnapshotRepo   snapshot.Repository
	AssignmentRepo assignment.Repository
	ChargeRepo     charge.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	// Initialize logger with test config
	cfg := config.GetDefaultConfig()
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	chargeStore := NewInMemoryChargeStore()
	s.stores = Stores{
		PeriodRepo:     NewInMemoryPeriodStore(),
		ContractRepo:   NewInMemoryContractStore(chargeStore),
		CustomerRepo:   NewInMemoryCustomerStore(),
		SnapshotRepo:   NewInMemorySnapshotStore(),
		AssignmentRepo: NewInMemoryAssignmentStore(),
		ChargeRepo:     chargeStore,
	}
	s.cache = cache.NewInMemoryCache(s.config)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.PeriodRepo.(*InMemoryPeriodStore).Clear()
	s.stores.ContractRepo.(*InMemoryContractStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.SnapshotRepo.(*InMemorySnapshotStore).Clear()
	s.stores.AssignmentRepo.(*InMemoryAssignmentStore).Clear()
	s.stores.ChargeRepo.(*InMemoryChargeStore).Clear()
	s.cache.Flush(context.Background())
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetTenantID returns the tenant id carried by the test context
func (s *BaseServiceTestSuite) GetTenantID() string {
	return types.GetTenantID(s.ctx)
}
