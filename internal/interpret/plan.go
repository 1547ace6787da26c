package interpret

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

// Interpreter translates one natural-language command into a Plan.
type Interpreter interface {
	Interpret(ctx context.Context, command string) (types.Plan, error)
}

// planEnvelope is the wire shape the model service returns: either a
// single operation or a has_multiple_operations list.
type planEnvelope struct {
	Operation      string            `json:"operation"`
	Parameters     map[string]string `json:"parameters"`
	HasMultipleOps bool              `json:"has_multiple_operations"`
	Operations     []stepEnvelope    `json:"operations"`
}

type stepEnvelope struct {
	Operation  string            `json:"operation"`
	Parameters map[string]string `json:"parameters"`
}

// codeFence extracts the payload of a markdown code block.
var codeFence = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// DecodePlan parses a JSON plan, tolerating markdown fences around it.
// Unknown operation names map to the Unrecognized kind; only malformed
// JSON is an error.
func DecodePlan(content string) (types.Plan, error) {
	content = stripFences(content)

	var envelope planEnvelope
	if err := sonic.UnmarshalString(content, &envelope); err != nil {
		return types.Plan{}, fmt.Errorf("malformed plan: %w", err)
	}

	if envelope.HasMultipleOps {
		plan := types.Plan{Operations: make([]types.Operation, 0, len(envelope.Operations))}
		for _, step := range envelope.Operations {
			plan.Operations = append(plan.Operations, types.Operation{
				Kind:   types.ParseKind(step.Operation),
				Params: step.Parameters,
			})
		}
		return plan, nil
	}

	return types.Single(types.Operation{
		Kind:   types.ParseKind(envelope.Operation),
		Params: envelope.Parameters,
	}), nil
}

func stripFences(content string) string {
	if !strings.Contains(content, "```") {
		return strings.TrimSpace(content)
	}
	if m := codeFence.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}
