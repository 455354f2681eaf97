package engine

import (
	"errors"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
)

// TrackingData returns the upstream of branch, or nil when it has none
func (e *Engine) TrackingData(branch string) (*git.TrackingBranch, error) {
	return e.repo.Tracking(branch)
}

// TrackingMap returns the upstream of every local branch that has one
func (e *Engine) TrackingMap() (map[string]*git.TrackingBranch, error) {
	branches, err := e.repo.LocalBranches()
	if err != nil {
		return nil, err
	}
	tracking := make(map[string]*git.TrackingBranch)
	for _, branch := range branches {
		t, err := e.repo.Tracking(branch)
		if err != nil {
			return nil, err
		}
		if t != nil {
			tracking[branch] = t
		}
	}
	return tracking, nil
}

// RemoteName resolves the remote to talk to: the remote tracked by the active
// branch, else the one tracked by trunk. The boolean is false when neither has one.
func (e *Engine) RemoteName(trunk string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	active, err := e.repo.CurrentBranch()
	switch {
	case err == nil:
		candidates = append(candidates, active)
	case !errors.Is(err, trunkerrors.ErrNotOnBranch):
		return "", false, err
	}
	if trunk != "" && trunk != active {
		candidates = append(candidates, trunk)
	}

	for _, branch := range candidates {
		t, err := e.repo.Tracking(branch)
		if err != nil {
			return "", false, err
		}
		if t != nil {
			return t.Remote, true, nil
		}
	}
	return "", false, nil
}
