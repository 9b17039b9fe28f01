package assistant

import "context"

type AssistantService interface {
	CareTips(ctx context.Context, petID string) (string, error)
	Welcome(ctx context.Context, petID string) (string, error)
	PreCheckSummary(ctx context.Context, bookingID, petID string) (string, error)
	CareNote(ctx context.Context, petID, rawDate string) (string, error)
	SearchPets(ctx context.Context, query string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
