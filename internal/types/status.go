package types

import (
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/samber/lo"
)

// Status is a type for the soft-delete lifecycle of a resource in the database.
// This is used to determine if a row should be included in queries.
// Any changes to this type should be reflected in the database schema by running migrations
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

// PeriodStatus represents the billing lifecycle state of a billing period.
// The status fully determines the authoritative data source for the period:
// BILLED/PAID periods read from an immutable snapshot, PENDING/OVERDUE
// periods are projected live from the current contract configuration.
type PeriodStatus string

const (
	PeriodStatusPending PeriodStatus = "PENDING"
	PeriodStatusBilled  PeriodStatus = "BILLED"
	PeriodStatusPaid    PeriodStatus = "PAID"
	PeriodStatusOverdue PeriodStatus = "OVERDUE"
)

func (s PeriodStatus) String() string {
	return string(s)
}

// IsFrozen reports whether the period's authoritative data is an immutable
// snapshot rather than a live projection.
func (s PeriodStatus) IsFrozen() bool {
	return s == PeriodStatusBilled || s == PeriodStatusPaid
}

func (s PeriodStatus) Validate() error {
	allowed := []PeriodStatus{
		PeriodStatusPending,
		PeriodStatusBilled,
		PeriodStatusPaid,
		PeriodStatusOverdue,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid period status").
			WithHint("Please provide a valid period status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusSuspended ContractStatus = "SUSPENDED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) Validate() error {
	allowed := []ContractStatus{
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusSuspended,
		ContractStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid contract status").
			WithHint("Please provide a valid contract status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ChargeStatus represents the payment state of an issued charge record.
type ChargeStatus string

const (
	ChargeStatusIssued  ChargeStatus = "ISSUED"
	ChargeStatusPaid    ChargeStatus = "PAID"
	ChargeStatusOverdue ChargeStatus = "OVERDUE"
)

func (s ChargeStatus) String() string {
	return string(s)
}

func (s ChargeStatus) Validate() error {
	allowed := []ChargeStatus{
		ChargeStatusIssued,
		ChargeStatusPaid,
		ChargeStatusOverdue,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid charge status").
			WithHint("Please provide a valid charge status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
