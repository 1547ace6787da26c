package runner

import (
	"context"
	"testing"

	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor returns canned results keyed by operation kind and
// records the dispatch order.
type scriptedExecutor struct {
	results map[types.Kind]*types.Result
	calls   []types.Kind
}

func (s *scriptedExecutor) Execute(ctx context.Context, op types.Operation) *types.Result {
	s.calls = append(s.calls, op.Kind)
	if result, ok := s.results[op.Kind]; ok {
		return result
	}
	return &types.Result{Success: true, Message: "ok"}
}

func TestRunEmptyPlan(t *testing.T) {
	r := New(&scriptedExecutor{}, logging.NewNop())

	results := r.Run(context.Background(), types.Plan{})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "No valid operations found in the command.", results[0].Message)
}

func TestRunPreservesOrder(t *testing.T) {
	exec := &scriptedExecutor{}
	r := New(exec, logging.NewNop())

	plan := types.Plan{Operations: []types.Operation{
		{Kind: types.KindCreateFolder},
		{Kind: types.KindMove},
		{Kind: types.KindSearch},
	}}

	results := r.Run(context.Background(), plan)

	require.Len(t, results, 3)
	assert.Equal(t,
		[]types.Kind{types.KindCreateFolder, types.KindMove, types.KindSearch},
		exec.calls)
}

func TestRunContinuesPastFailure(t *testing.T) {
	exec := &scriptedExecutor{results: map[types.Kind]*types.Result{
		types.KindMove: {Success: false, Message: "Source does not exist: /x"},
	}}
	r := New(exec, logging.NewNop())

	plan := types.Plan{Operations: []types.Operation{
		{Kind: types.KindMove},
		{Kind: types.KindCreateFolder},
	}}

	results := r.Run(context.Background(), plan)

	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.True(t, results[1].Success, "failure must not stop later steps")
	assert.Len(t, exec.calls, 2)
}

func TestRunSingleOperation(t *testing.T) {
	exec := &scriptedExecutor{}
	r := New(exec, logging.NewNop())

	results := r.Run(context.Background(),
		types.Single(types.Operation{Kind: types.KindOpenLocation}))

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}
