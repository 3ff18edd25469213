package review

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
)

// DecisionType is the action a reviewer takes on a field.
type DecisionType string

const (
	// DecisionApprove accepts the enriched value.
	DecisionApprove DecisionType = "approve"
	// DecisionDecline rejects the enriched value.
	DecisionDecline DecisionType = "decline"
)

// Decision is the validation input record for a single field.
type Decision struct {
	// Type is the action taken.
	Type DecisionType `json:"decisionType" yaml:"decision"`

	// FieldPath is the dot-joined path key the decision applies to.
	FieldPath string `json:"fieldPath" yaml:"field_path"`

	// OriginalValue is advisory only; the store keys solely on FieldPath.
	OriginalValue *document.Value `json:"originalValue,omitempty" yaml:"-"`

	// DecidedAt records when the decision was made.
	DecidedAt utc.Time `json:"decidedAt,omitzero" yaml:"decided_at,omitempty"`
}

// State maps the decision type to the stored validation state.
func (d Decision) State() (State, error) {
	switch d.Type {
	case DecisionApprove:
		return StateApproved, nil
	case DecisionDecline:
		return StateDeclined, nil
	}
	return StatePending, &errors.DecisionError{
		Field:   d.FieldPath,
		Value:   string(d.Type),
		Message: "unknown decision type",
	}
}

// Apply validates the decision and records it in the store.
func (s *Store) Apply(d Decision) error {
	if d.FieldPath == "" {
		return &errors.DecisionError{
			Field:   d.FieldPath,
			Message: "field path required",
		}
	}
	state, err := d.State()
	if err != nil {
		return err
	}
	s.Set(d.FieldPath, state)
	return nil
}
