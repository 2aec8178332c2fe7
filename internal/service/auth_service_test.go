package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GanderM1/testforgenew/config"
	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(f *fixture) (AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager(&config.Config{Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour}})
	return NewAuthService(f.users, tokens), tokens
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	groupID := f.group(t, "Группа К")
	student := f.user(t, "ivanov", model.RoleStudent, &groupID)
	svc, tokens := newAuthService(f)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ivanov", Password: "ivanov-pass"})
	require.NoError(t, err)
	assert.Equal(t, dto.UserDTO{ID: student.UserID, Username: "ivanov", Role: "student", GroupID: &groupID}, resp.User)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, student.UserID, id)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestLogin_Rejected(t *testing.T) {
	f := newFixture(t)
	f.user(t, "ivanov", model.RoleStudent, nil)
	hash, err := bcrypt.GenerateFromPassword([]byte("whatever"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.db.Create(&model.User{Username: "retired", PasswordHash: string(hash), Role: model.RoleTeacher}).Error)
	svc, _ := newAuthService(f)

	for name, req := range map[string]dto.LoginDTO{
		"wrong password": {Username: "ivanov", Password: "nope"},
		"unknown user":   {Username: "sidorov", Password: "ivanov-pass"},
		"inactive user":  {Username: "retired", Password: "whatever"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), req)
			assert.True(t, errors.Is(err, apperror.ErrUnauthorized), "got %v", err)
		})
	}
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	svc, _ := newAuthService(f)

	profile, err := svc.Profile(context.Background(), teacher)
	require.NoError(t, err)
	assert.Equal(t, "teacher", profile.Username)
	assert.Equal(t, "teacher", profile.Role)
	assert.Nil(t, profile.GroupID)
}
