package client

import (
	"context"

	"practice-coach/work-flows/models"
)

type Client interface {
	GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.PracticeResponse, error)
}
