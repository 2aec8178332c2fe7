package seed

import (
	"context"
	"testing"

	"github.com/GanderM1/testforgenew/internal/database/databasetest"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const fixture = `
groups: ["Группа К"]
users:
  - username: admin
    password: adminpass
    role: admin
  - username: ivanov
    password: studentpass
    group: Группа З
  - username: old
    password: x
    role: teacher
    inactive: true
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"Группа К"}, f.Groups)
	require.Len(t, f.Users, 3)
	assert.Equal(t, model.RoleStudent, f.Users[1].Role)
	assert.True(t, f.Users[2].Inactive)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown role":     "users:\n  - {username: a, password: b, role: root}\n",
		"missing password": "users:\n  - {username: a}\n",
		"unknown key":      "teachers: []\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	db := databasetest.New(t)
	groups := repository.NewGroupRepository(db)
	users := repository.NewUserRepository(db)
	s := NewSeeder(groups, users)
	s.cost = bcrypt.MinCost
	ctx := context.Background()

	f, err := Parse([]byte(fixture))
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, f))
	require.NoError(t, s.Apply(ctx, f))

	all, err := groups.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	student, err := users.FindByUsername(ctx, "ivanov")
	require.NoError(t, err)
	require.NotNil(t, student.GroupID)
	assert.True(t, student.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("studentpass")))

	old, err := users.FindByUsername(ctx, "old")
	require.NoError(t, err)
	assert.False(t, old.IsActive)
	assert.Equal(t, model.RoleTeacher, old.Role)
}

func TestLoadFile_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, NewSeeder(nil, nil).LoadFile(context.Background(), ""))
}
