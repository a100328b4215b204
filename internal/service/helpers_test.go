package service_test

import (
	"context"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

func sessionContext(userID uuid.UUID, tier int) context.Context {
	return auth.WithSession(context.Background(), &auth.Session{UserID: userID, RoleTier: tier})
}

func adminContext() context.Context {
	return sessionContext(uuid.New(), models.RoleTierAdmin)
}

func newUser(first, last string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  first + "." + last,
		RoleID:    models.RoleTierUser,
		FirstName: first,
		LastName:  last,
		Email:     first + "@mail.com",
	}
}

func lookup(id int, name string) *models.LookupModel {
	return &models.LookupModel{ID: id, Name: name}
}

func strPtr(s string) *string {
	return &s
}
