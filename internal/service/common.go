package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/validation"

	"github.com/google/uuid"
)

// Role tiers needed to change somebody else's entities
const (
	featureEditTier = models.RoleTierLeader
	taskEditTier    = models.RoleTierLeader
	commentEditTier = models.RoleTierLeader
	projectEditTier = models.RoleTierAdmin
	teamEditTier    = models.RoleTierAdmin
	userEditTier    = models.RoleTierAdmin
	lookupEditTier  = models.RoleTierAdmin
	teamCreateTier  = models.RoleTierLeader
)

// parseID checks that value is a uuid4 and parses it
func parseID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, apperrors.NewEmptyValueError(field)
	}
	if !validation.ValidateUUID4(value) {
		return uuid.Nil, apperrors.NewInvalidInputError(field, "unvalid formatting of uuid4")
	}
	return uuid.MustParse(value), nil
}

// parseOptionalID is parseID for ids that may be left out
func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parsePriority converts a priority to an int in 1-3
func parsePriority(value string) (int, error) {
	priority, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperrors.NewInvalidInputError("priority", "priority is not a number")
	}
	if priority < models.PriorityLow || priority > models.PriorityHigh {
		return 0, apperrors.NewInvalidInputError("priority", "priority is not in scale 1-3")
	}
	return priority, nil
}

// parseTimeSpent converts a time spent in hours, blank means zero
func parseTimeSpent(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	spent, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(spent) || math.IsInf(spent, 0) {
		return 0, apperrors.NewInvalidInputError("time_spent", "time spent is not a number")
	}
	if spent < 0 {
		return 0, apperrors.NewInvalidInputError("time_spent", "time spent can not be negative")
	}
	return spent, nil
}

// authorize returns the session in ctx if it may change an entity owned by ownerID
func authorize(ctx context.Context, ownerID uuid.UUID, requiredTier int) (*auth.Session, error) {
	sess, ok := auth.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	if !auth.CanMutate(ownerID, sess, requiredTier) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"owner_id":      ownerID.String(),
			"required_tier": requiredTier,
			"role_tier":     sess.RoleTier,
		}).Warn("mutation rejected")
		return nil, apperrors.ErrForbidden
	}
	return sess, nil
}

// authorizeTransfer is authorize for updates that may hand the entity to newOwnerID.
// Giving an entity away is checked like creating it for that user.
func authorizeTransfer(ctx context.Context, ownerID, newOwnerID uuid.UUID, requiredTier int) error {
	if _, err := authorize(ctx, ownerID, requiredTier); err != nil {
		return err
	}
	if newOwnerID != ownerID {
		if _, err := authorize(ctx, newOwnerID, requiredTier); err != nil {
			return err
		}
	}
	return nil
}

// requireTier returns the session in ctx if it has at least tier
func requireTier(ctx context.Context, tier int) (*auth.Session, error) {
	sess, ok := auth.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	if !auth.HasTier(sess, tier) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"required_tier": tier,
			"role_tier":     sess.RoleTier,
		}).Warn("mutation rejected")
		return nil, apperrors.ErrForbidden
	}
	return sess, nil
}

// logStorage logs persistence failures, other kinds are the caller's business
func logStorage(ctx context.Context, err error, msg string) {
	if apperrors.IsStorage(err) {
		logger.WithContext(ctx).WithError(err).Error(msg)
	}
}

func fullName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.FullName()
}

func nonNilFlags(flags models.Flags) []string {
	if flags == nil {
		return []string{}
	}
	return flags
}
