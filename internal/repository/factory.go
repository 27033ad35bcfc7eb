package repository

import (
	"github.com/faturo/faturo/internal/domain/assignment"
	"github.com/faturo/faturo/internal/domain/charge"
	"github.com/faturo/faturo/internal/domain/contract"
	"github.com/faturo/faturo/internal/domain/customer"
	"github.com/faturo/faturo/internal/domain/period"
	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
)

func NewPeriodRepository(db *postgres.DB, log *logger.Logger) period.Repository {
	return &periodRepository{db: db, log: log}
}

func NewContractRepository(db *postgres.DB, log *logger.Logger) contract.Repository {
	return &contractRepository{db: db, log: log}
}

func NewCustomerRepository(db *postgres.DB, log *logger.Logger) customer.Repository {
	return &customerRepository{db: db, log: log}
}

func NewSnapshotRepository(db *postgres.DB, log *logger.Logger) snapshot.Repository {
	return &snapshotRepository{db: db, log: log}
}

func NewAssignmentRepository(db *postgres.DB, log *logger.Logger) assignment.Repository {
	return &assignmentRepository{db: db, log: log}
}

func NewChargeRepository(db *postgres.DB, log *logger.Logger) charge.Repository {
	return &chargeRepository{db: db, log: log}
}
