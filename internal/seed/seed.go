// Package seed loads groups and accounts from a YAML fixture file so that a
// fresh database can be logged into.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// File is the layout of the seed fixture:
//
//	groups: ["Группа К"]
//	users:
//	  - username: admin
//	    password: secret
//	    role: admin
//	  - username: ivanov
//	    password: secret
//	    role: student
//	    group: Группа К
type File struct {
	Groups []string `yaml:"groups"`
	Users  []User   `yaml:"users"`
}

type User struct {
	Username string     `yaml:"username"`
	Password string     `yaml:"password"`
	Role     model.Role `yaml:"role"`
	Group    string     `yaml:"group"`
	Inactive bool       `yaml:"inactive"`
}

type Seeder struct {
	groups repository.GroupRepository
	users  repository.UserRepository
	cost   int
}

func NewSeeder(groups repository.GroupRepository, users repository.UserRepository) *Seeder {
	return &Seeder{groups: groups, users: users, cost: bcrypt.DefaultCost}
}

// Parse decodes a fixture, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for i, u := range f.Users {
		if strings.TrimSpace(u.Username) == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user %d: username and password are required", i+1)
		}
		if u.Role == "" {
			f.Users[i].Role = model.RoleStudent
		} else if !u.Role.Valid() {
			return nil, fmt.Errorf("seed user %q: unknown role %q", u.Username, u.Role)
		}
	}
	return &f, nil
}

// LoadFile seeds from path. An empty path is a no-op.
func (s *Seeder) LoadFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}
	return s.Apply(ctx, f)
}

// Apply inserts the groups and users that do not exist yet. Existing rows are
// left as they are, so running it twice is harmless.
func (s *Seeder) Apply(ctx context.Context, f *File) error {
	groupIDs := make(map[string]uint)
	ensureGroup := func(name string) (uint, error) {
		if id, ok := groupIDs[name]; ok {
			return id, nil
		}
		g, err := s.groups.FindByName(ctx, name)
		if errors.Is(err, apperror.ErrNotFound) {
			g = &model.Group{Name: name}
			if err = s.groups.Create(ctx, g); err == nil {
				log.Info().Str("group", name).Msg("Seed: group created")
			}
		}
		if err != nil {
			return 0, err
		}
		groupIDs[name] = g.ID
		return g.ID, nil
	}

	for _, name := range f.Groups {
		if _, err := ensureGroup(strings.TrimSpace(name)); err != nil {
			return err
		}
	}

	created := 0
	for _, u := range f.Users {
		username := strings.TrimSpace(u.Username)
		_, err := s.users.FindByUsername(ctx, username)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.cost)
		if err != nil {
			return fmt.Errorf("hash password of %q: %w", username, err)
		}
		user := &model.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         u.Role,
			IsActive:     !u.Inactive,
		}
		if name := strings.TrimSpace(u.Group); name != "" {
			id, err := ensureGroup(name)
			if err != nil {
				return err
			}
			user.GroupID = &id
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		created++
	}
	log.Info().Int("groups", len(groupIDs)).Int("usersCreated", created).Msg("Seed: done")
	return nil
}
