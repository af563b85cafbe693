package utils

import "errors"

var (
	ErrScheduleNotFound        = errors.New("schedule not found")
	ErrActivityNotFound        = errors.New("activity not found")
	ErrChatNotFound            = errors.New("chat not found")
	ErrBackendUnavailable      = errors.New("planner backend unavailable")
	ErrInvalidInput            = errors.New("invalid input")
	ErrGeneratorUnavailable    = errors.New("plan generator not configured")
	ErrUnexpectedBehaviorOfAI  = errors.New("unexpected behavior of AI")
	ErrDatabaseError           = errors.New("database error")
	ErrEmptySchedule           = errors.New("schedule has no activities")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
