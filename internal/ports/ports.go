package ports

import (
	"context"
	"image"
	"time"

	"svw.info/cube/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Moves    int
	Duration time.Duration
}

// Classifier maps one color sample to a palette color. Must be total.
type Classifier interface {
	Classify(s domain.Sample) domain.Color
}

// Sampler reads the 3x3 sticker grid out of one face image.
type Sampler interface {
	Sample(ctx context.Context, face domain.Face, img image.Image) (domain.FaceGrid, error)
}

// Validator checks structural plausibility of an assembled state.
type Validator interface {
	Validate(ctx context.Context, s domain.CubeState) (domain.Report, error)
}

// Engine is the external solving engine. facelets uses the URFDLB alphabet.
type Engine interface {
	Solve(ctx context.Context, facelets string) (domain.Solution, Stats, error)
}

// Explainer turns move tokens into instructions.
type Explainer interface {
	Explain(token string) string
}

// Storage persists solve attempts.
type Storage interface {
	Record(ctx context.Context, a *domain.Attempt) error
	Get(ctx context.Context, id string) (*domain.Attempt, error)
	List(ctx context.Context, limit int) ([]domain.Attempt, error)
}
