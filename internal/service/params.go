package service

import (
	"github.com/faturo/faturo/internal/cache"
	"github.com/faturo/faturo/internal/config"
	"github.com/faturo/faturo/internal/domain/assignment"
	"github.com/faturo/faturo/internal/domain/charge"
	"github.com/faturo/faturo/internal/domain/contract"
	"github.com/faturo/faturo/internal/domain/customer"
	"github.com/faturo/faturo/internal/domain/period"
	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	PeriodRepo     period.Repository
	ContractRepo   contract.Repository
	CustomerRepo   customer.Repository
	SnapshotRepo   snapshot.Repository
	AssignmentRepo assignment.Repository
	ChargeRepo     charge.Repository
}

// NewServiceParams builds the common service dependency bundle
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	periodRepo period.Repository,
	contractRepo contract.Repository,
	customerRepo customer.Repository,
	snapshotRepo snapshot.Repository,
	assignmentRepo assignment.Repository,
	chargeRepo charge.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		Cache:          cache,
		PeriodRepo:     periodRepo,
		ContractRepo:   contractRepo,
		CustomerRepo:   customerRepo,
		SnapshotRepo:   snapshotRepo,
		AssignmentRepo: assignmentRepo,
		ChargeRepo:     chargeRepo,
	}
}
