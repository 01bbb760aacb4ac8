package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPeriodExists    = errors.New("payroll for this user and period already exists")
)
