package services

import (
	"context"
	"log"

	"learnbuddy-backend/internal/repository"
)

// MaintenanceService owns one-off startup housekeeping.
type MaintenanceService struct {
	signupRepo *repository.SignupRepo
}

func NewMaintenanceService(signupRepo *repository.SignupRepo) *MaintenanceService {
	return &MaintenanceService{signupRepo: signupRepo}
}

// ClearPendingSignups purges abandoned signup attempts. Idempotent; safe to
// run on every process start.
func (s *MaintenanceService) ClearPendingSignups(ctx context.Context) error {
	deleted, err := s.signupRepo.DeleteAll(ctx)
	if err != nil {
		return err
	}
	log.Printf("✓ Cleared %d pending signup(s)", deleted)
	return nil
}
