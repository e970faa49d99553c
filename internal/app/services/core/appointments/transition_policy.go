package appointments

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
)

type permissivePolicy struct{}

func (permissivePolicy) Allow(from, to string) bool {
	return true
}

// strictPolicy freezes terminal statuses; only a no-op transition onto the
// same terminal status is accepted.
type strictPolicy struct{}

func (strictPolicy) Allow(from, to string) bool {
	if models.IsTerminalStatus(from) {
		return from == to
	}
	return true
}

func NewTransitionPolicy(strict bool) contracts.TransitionPolicy {
	if strict {
		return strictPolicy{}
	}
	return permissivePolicy{}
}
