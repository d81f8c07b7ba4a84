package custombuild

import (
	"errors"
	"fmt"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/host"
)

// Start asks p for a node count and opens a session, alerting the user
// when the answer is out of range.
func Start(p host.Prompter, opts ...core.GraphOption) (*Session, error) {
	n, err := p.AskInt("Enter number of nodes:", DefaultNodes, MinNodes, MaxNodes)
	if err != nil {
		p.Alert("Invalid Input", "Please enter a valid number.")
		return nil, fmt.Errorf("custombuild: node count: %w", err)
	}
	s, err := NewSession(n, opts...)
	if err != nil {
		p.Alert("Invalid Input", fmt.Sprintf("Please enter between %d and %d nodes.", MinNodes, MaxNodes))
		return nil, err
	}

	return s, nil
}

// Connect runs one full click: Select(id) and, when that completes an
// edge, obtains the weight (asking p on weighted graphs) and commits.
// A rejected or failed weight prompt alerts and clears the selection.
func (s *Session) Connect(p host.Prompter, id core.NodeID) (Status, error) {
	st, err := s.Select(id)
	if err != nil || st != StatusEdgeReady {
		return st, err
	}

	weight := int64(1)
	if s.g.Weighted() {
		from, to, _ := s.PendingEdge()
		weight, err = p.AskWeight(from, to)
		if err != nil {
			s.Cancel()
			p.Alert("Invalid Input", "Please enter a valid number.")
			return st, fmt.Errorf("custombuild: weight: %w", err)
		}
	}
	if err = s.Commit(weight); err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			p.Alert("Invalid Weight", "Weight must be positive.")
		}
		return st, err
	}

	return st, nil
}
