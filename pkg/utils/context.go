package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	StudentIDKey contextKey = "student_id"
	EmailKey     contextKey = "email"
)

// GetStudentIDFromContext returns the authenticated student's record id.
func GetStudentIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(StudentIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}

func SetStudentContext(ctx context.Context, id uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, StudentIDKey, id.String())
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}
