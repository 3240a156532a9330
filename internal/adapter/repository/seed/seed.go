// Package seed loads the demo fixture into a Store.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

//go:embed demo.yaml
var demoFixture []byte

// Fixture is the on-disk shape of a seed file
type Fixture struct {
	Users         []entities.User       `yaml:"users"`
	Meetings      []MeetingFixture      `yaml:"meetings"`
	Notifications []NotificationFixture `yaml:"notifications"`
}

// MeetingFixture is a meeting together with its children
type MeetingFixture struct {
	Title         string                 `yaml:"title"`
	Date          string                 `yaml:"date"`
	Duration      string                 `yaml:"duration"`
	Status        entities.MeetingStatus `yaml:"status"`
	Summary       string                 `yaml:"summary"`
	Transcription string                 `yaml:"transcription"`
	AudioURL      *string                `yaml:"audioUrl"`
	Decisions     []string               `yaml:"decisions"`
	ActionItems   []ActionItemFixture    `yaml:"actionItems"`
	Participants  []ParticipantFixture   `yaml:"participants"`
}

type ActionItemFixture struct {
	Task      string `yaml:"task"`
	Assignee  string `yaml:"assignee"`
	DueDate   string `yaml:"dueDate"`
	Status    string `yaml:"status"`
	Completed bool   `yaml:"completed"`
}

// ParticipantFixture names either a seeded user (by username) or a bare display name
type ParticipantFixture struct {
	User string `yaml:"user"`
	Name string `yaml:"name"`
}

type NotificationFixture struct {
	User        string `yaml:"user"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Read        bool   `yaml:"read"`
}

// Parse decodes a YAML fixture
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// Demo returns the embedded demo fixture
func Demo() (*Fixture, error) {
	return Parse(demoFixture)
}

// LoadDemo writes the embedded demo fixture into the store
func LoadDemo(ctx context.Context, store repositories.Store, logger *zap.Logger) error {
	f, err := Demo()
	if err != nil {
		return err
	}
	return Load(ctx, store, f, logger)
}

// Load writes a fixture into the store in file order. A store that already
// holds the fixture's first user is left untouched.
func Load(ctx context.Context, store repositories.Store, f *Fixture, logger *zap.Logger) error {
	if len(f.Users) > 0 {
		_, err := store.Users().FindByUsername(ctx, f.Users[0].Username)
		switch {
		case err == nil:
			if logger != nil {
				logger.Info("Seed data already present, skipping", zap.String("username", f.Users[0].Username))
			}
			return nil
		case !errors.Is(err, entities.ErrUserNotFound):
			return fmt.Errorf("failed to check existing seed data: %w", err)
		}
	}

	userIDs := make(map[string]int, len(f.Users))
	for i := range f.Users {
		u := f.Users[i]
		if err := store.Users().Create(ctx, &u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Username, err)
		}
		userIDs[u.Username] = u.ID
	}

	lookup := func(username string) (int, error) {
		id, ok := userIDs[username]
		if !ok {
			return 0, fmt.Errorf("seed references unknown user %q", username)
		}
		return id, nil
	}

	for _, mf := range f.Meetings {
		m := &entities.Meeting{
			Title:         mf.Title,
			Date:          mf.Date,
			Duration:      mf.Duration,
			Status:        mf.Status,
			Summary:       mf.Summary,
			Transcription: mf.Transcription,
			AudioURL:      mf.AudioURL,
		}
		if err := store.Meetings().Create(ctx, m); err != nil {
			return fmt.Errorf("failed to seed meeting %q: %w", mf.Title, err)
		}

		for _, text := range mf.Decisions {
			if err := store.Decisions().Create(ctx, &entities.Decision{MeetingID: m.ID, Text: text}); err != nil {
				return fmt.Errorf("failed to seed decision: %w", err)
			}
		}

		for _, af := range mf.ActionItems {
			item := &entities.ActionItem{
				MeetingID: m.ID,
				Task:      af.Task,
				Assignee:  af.Assignee,
				DueDate:   af.DueDate,
				Status:    af.Status,
				Completed: af.Completed,
			}
			if err := store.ActionItems().Create(ctx, item); err != nil {
				return fmt.Errorf("failed to seed action item: %w", err)
			}
		}

		for _, pf := range mf.Participants {
			p := entities.NewNamedParticipant(m.ID, pf.Name)
			if pf.User != "" {
				id, err := lookup(pf.User)
				if err != nil {
					return err
				}
				p = entities.NewUserParticipant(m.ID, id)
			}
			if err := store.Participants().Create(ctx, p); err != nil {
				return fmt.Errorf("failed to seed participant: %w", err)
			}
		}
	}

	for _, nf := range f.Notifications {
		id, err := lookup(nf.User)
		if err != nil {
			return err
		}
		n := &entities.Notification{
			UserID:      id,
			Title:       nf.Title,
			Description: nf.Description,
			Date:        nf.Date,
			Read:        nf.Read,
		}
		if err := store.Notifications().Create(ctx, n); err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}

	if logger != nil {
		logger.Info("Seed data loaded",
			zap.Int("users", len(f.Users)),
			zap.Int("meetings", len(f.Meetings)),
			zap.Int("notifications", len(f.Notifications)),
		)
	}
	return nil
}
