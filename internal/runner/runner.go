// Package runner executes operation plans step by step.
package runner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
)

// Executor dispatches one operation and always returns a result.
type Executor interface {
	Execute(ctx context.Context, op types.Operation) *types.Result
}

// Runner runs a plan strictly in order, one result per step. A failed
// step never short-circuits the remaining ones, so the caller always
// sees the full outcome of a multi-step command.
type Runner struct {
	exec Executor
	log  *logging.Logger
}

// New creates a runner.
func New(exec Executor, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.NewDefault()
	}
	return &Runner{exec: exec, log: log}
}

// Run executes every step of the plan and returns their results in
// plan order. An empty plan yields a single explanatory failure.
func (r *Runner) Run(ctx context.Context, plan types.Plan) []types.Result {
	if plan.Empty() {
		return []types.Result{{Message: "No valid operations found in the command."}}
	}

	runID := uuid.NewString()
	results := make([]types.Result, 0, len(plan.Operations))

	for i, op := range plan.Operations {
		result := r.exec.Execute(ctx, op)
		results = append(results, *result)

		r.log.Info("step finished",
			zap.String("run_id", runID),
			zap.Int("step", i+1),
			zap.Int("steps", len(plan.Operations)),
			zap.String("operation", string(op.Kind)),
			zap.Bool("success", result.Success))
	}

	return results
}
