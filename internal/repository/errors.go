package repository

import (
	"errors"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes inspected by the repositories
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Constraint names declared on the models
const (
	constraintUsername       = "uq_users_username"
	constraintMembershipUser = "uq_team_memberships_user"
	constraintMembershipPK   = "team_memberships_pkey"
)

// violatedConstraint returns the constraint named by a postgres error with the given code
func violatedConstraint(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func isUniqueViolation(err error, constraints ...string) bool {
	name, ok := violatedConstraint(err, uniqueViolation)
	if !ok {
		return false
	}
	for _, c := range constraints {
		if c == name {
			return true
		}
	}
	return false
}

// translate maps a gorm error onto the error taxonomy.
// Record-not-found becomes notFound, everything else a StorageError for op.
func translate(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if _, ok := violatedConstraint(err, checkViolation); ok {
		return apperrors.NewStorageError(op+" (check constraint)", err)
	}
	if _, ok := violatedConstraint(err, foreignKeyViolation); ok {
		return apperrors.NewStorageError(op+" (foreign key)", err)
	}
	return apperrors.NewStorageError(op, err)
}

// translateMembership reports duplicate team memberships as ErrUserAlreadyInTeam
func translateMembership(err error, op string) error {
	if isUniqueViolation(err, constraintMembershipUser, constraintMembershipPK) {
		return apperrors.ErrUserAlreadyInTeam
	}
	var exists *apperrors.AlreadyExistsError
	if errors.As(err, &exists) {
		return err
	}
	return translate(err, nil, op)
}
