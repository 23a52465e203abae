package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrImbalanced indicates that an entry's debit and credit totals differ beyond tolerance.
var ErrImbalanced = errors.New("journal entry debits and credits do not balance")

// ErrUnknownAccount indicates that a line references an account that does not exist for the tenant.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInactiveAccount indicates that a line references a deactivated account.
var ErrInactiveAccount = errors.New("inactive account")

// ErrClosedPeriod indicates that the posting date falls inside a closed accounting period.
var ErrClosedPeriod = errors.New("posting date is in a closed accounting period")

// ErrSourceAlreadyPosted indicates that a source document already produced a journal
// entry with different line content. Identical retries are answered idempotently and
// never surface this error.
var ErrSourceAlreadyPosted = errors.New("source document already posted with different lines")

// ErrNotPosted indicates that an operation requires a POSTED entry.
var ErrNotPosted = errors.New("journal entry is not posted")

// ErrAlreadyReversed indicates that the entry has already been reversed.
var ErrAlreadyReversed = errors.New("journal entry is already reversed")
