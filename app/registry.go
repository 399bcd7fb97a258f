package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/BrugadaSyndrome/bslogger"
)

// Registry maps command names to actions. It is built once at startup.
type Registry struct {
	actions []Action
	byName  map[string]Action
	logger  bslogger.Logger
}

func NewRegistry(actions []Action) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Action, len(actions)),
		logger: bslogger.NewLogger("Registry", bslogger.Normal, nil),
	}
	for _, action := range actions {
		if _, ok := r.byName[action.Name]; ok {
			return nil, fmt.Errorf("duplicate action %q", action.Name)
		}
		r.byName[action.Name] = action
		r.actions = append(r.actions, action)
	}
	return r, nil
}

func (r *Registry) Get(name string) (Action, bool) {
	action, ok := r.byName[name]
	return action, ok
}

// Actions returns the actions grouped by category, in registration order
// within a category.
func (r *Registry) Actions() []Action {
	actions := make([]Action, len(r.actions))
	copy(actions, r.actions)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Category < actions[j].Category
	})
	return actions
}

// Run performs the named actions in order and stops at the first error.
func (r *Registry) Run(ctx context.Context, names ...string) error {
	for _, name := range names {
		action, ok := r.byName[name]
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		r.logger.Debug(fmt.Sprintf("Running %s", name))
		if err := action.Perform(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
