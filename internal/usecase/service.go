package usecase

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"svw.info/cube/internal/assembler"
	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/explain"
	"svw.info/cube/internal/ports"
)

// Service runs the acquisition pipeline: sample each face, assemble,
// validate, solve, explain. It stops at the first failing stage and never
// calls the engine with a state that failed validation.
type Service struct {
	Sampler   ports.Sampler
	Validator ports.Validator
	Engine    ports.Engine
	Explainer ports.Explainer
	Storage   ports.Storage
	Logger    *zap.Logger
}

func NewService(sm ports.Sampler, v ports.Validator, e ports.Engine, x ports.Explainer, st ports.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Sampler: sm, Validator: v, Engine: e, Explainer: x, Storage: st, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Result is everything a successful attempt produced.
type Result struct {
	AttemptID string
	Grids     map[domain.Face]domain.FaceGrid
	State     domain.CubeState
	Facelets  string
	Report    domain.Report
	Solution  domain.Solution
	Steps     []domain.Step
	Stats     ports.Stats
}

// Solve runs the full pipeline over one photo per face.
func (u *Service) Solve(ctx context.Context, faces map[domain.Face]image.Image) (*Result, error) {
	if u.Sampler == nil {
		return nil, errNotConfigured
	}
	run := u.begin()
	res := &Result{AttemptID: run.att.ID}

	if missing := assembler.Missing(faces); len(missing) > 0 {
		return nil, u.fail(ctx, run, domain.StageAcquire, &domain.IncompleteError{Missing: missing})
	}

	res.Grids = make(map[domain.Face]domain.FaceGrid, 6)
	for _, f := range assembler.Order {
		g, err := u.Sampler.Sample(ctx, f, faces[f])
		if err != nil {
			return nil, u.fail(ctx, run, domain.StageSample, err)
		}
		u.Logger.Debug("face sampled", zap.String("attempt", run.att.ID), zap.Stringer("face", f), zap.Stringer("grid", g))
		res.Grids[f] = g
	}

	st, err := assembler.Assemble(res.Grids)
	if err != nil {
		return nil, u.fail(ctx, run, domain.StageAssemble, err)
	}
	return u.finish(ctx, run, res, st)
}

// SolveState runs the pipeline from an already assembled state.
func (u *Service) SolveState(ctx context.Context, st domain.CubeState) (*Result, error) {
	run := u.begin()
	return u.finish(ctx, run, &Result{AttemptID: run.att.ID}, st)
}

// Validate checks a state without solving it.
func (u *Service) Validate(ctx context.Context, st domain.CubeState) (domain.Report, error) {
	if u.Validator == nil {
		return domain.Report{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, st)
}

// Explain numbers and explains a whitespace separated move list.
func (u *Service) Explain(moves string) []domain.Step {
	x := u.Explainer
	if x == nil {
		x = explain.New()
	}
	return explain.Steps(x, moves)
}

func (u *Service) History(ctx context.Context, limit int) ([]domain.Attempt, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx, limit)
}

func (u *Service) Attempt(ctx context.Context, id string) (*domain.Attempt, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Get(ctx, id)
}

func (u *Service) finish(ctx context.Context, run *attemptRun, res *Result, st domain.CubeState) (*Result, error) {
	if u.Validator == nil || u.Engine == nil {
		return nil, errNotConfigured
	}
	res.State = st
	run.att.State = st.String()

	rep, err := u.Validator.Validate(ctx, st)
	if err != nil {
		return nil, u.fail(ctx, run, domain.StageValidate, err)
	}
	res.Report = rep

	facelets, err := st.Facelets()
	if err != nil {
		return nil, u.fail(ctx, run, domain.StageValidate, err)
	}
	res.Facelets = facelets
	run.att.Facelets = facelets

	sol, stats, err := u.Engine.Solve(ctx, facelets)
	if err != nil {
		return nil, u.fail(ctx, run, domain.StageSolve, err)
	}
	res.Solution = sol
	res.Stats = stats
	res.Steps = u.Explain(sol.Raw)

	run.att.Status = domain.StatusSolved
	run.att.Stage = domain.StageExplain
	run.att.Solution = sol.Raw
	run.att.MoveCount = len(sol.Moves)
	u.record(ctx, run)
	u.Logger.Info("attempt solved",
		zap.String("attempt", run.att.ID),
		zap.Int("moves", len(sol.Moves)),
		zap.Duration("engine", stats.Duration),
		zap.Duration("dur", run.att.Duration),
	)
	return res, nil
}

type attemptRun struct {
	att   domain.Attempt
	start time.Time
}

func (u *Service) begin() *attemptRun {
	start := time.Now()
	return &attemptRun{
		att:   domain.Attempt{ID: uuid.New().String(), CreatedAt: start.UnixNano()},
		start: start,
	}
}

func (u *Service) fail(ctx context.Context, run *attemptRun, stage domain.Stage, err error) error {
	run.att.Stage = stage
	run.att.Status = domain.StatusFailed
	if errors.Is(err, domain.ErrSolverRejected) {
		run.att.Status = domain.StatusRejected
	}
	run.att.ErrorKind = domain.KindOf(err)
	run.att.Error = err.Error()
	u.record(ctx, run)
	u.Logger.Warn("attempt failed",
		zap.String("attempt", run.att.ID),
		zap.String("stage", string(stage)),
		zap.String("kind", run.att.ErrorKind),
		zap.Error(err),
	)
	return err
}

// record stores the attempt. Storage problems are logged, never returned:
// they must not change the outcome of a solve.
func (u *Service) record(ctx context.Context, run *attemptRun) {
	run.att.Duration = time.Since(run.start)
	if u.Storage == nil {
		return
	}
	if err := u.Storage.Record(context.WithoutCancel(ctx), &run.att); err != nil {
		u.Logger.Error("record attempt", zap.String("attempt", run.att.ID), zap.Error(err))
	}
}
