package controllers

import (
	"context"

	"codecraft-site/driver"
	"codecraft-site/models"
)

// mockStore implements EventStore with overridable funcs and call counters.
type mockStore struct {
	GetEventFunc            func(ctx context.Context, id string) (*models.Event, error)
	ListEventsFunc          func(ctx context.Context) ([]models.Event, error)
	InsertRegistrationFunc  func(ctx context.Context, registration models.EventRegistration) (int, error)
	IncrementRegisteredFunc func(ctx context.Context, eventID int) error
	ListTeamMembersFunc     func(ctx context.Context) ([]models.TeamMember, error)

	getEventCalls  int
	insertCalls    int
	incrementCalls int
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	m.getEventCalls++
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return nil, driver.ErrNoRows
}

func (m *mockStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) InsertRegistration(ctx context.Context, registration models.EventRegistration) (int, error) {
	m.insertCalls++
	if m.InsertRegistrationFunc != nil {
		return m.InsertRegistrationFunc(ctx, registration)
	}
	return 1, nil
}

func (m *mockStore) IncrementRegistered(ctx context.Context, eventID int) error {
	m.incrementCalls++
	if m.IncrementRegisteredFunc != nil {
		return m.IncrementRegisteredFunc(ctx, eventID)
	}
	return nil
}

func (m *mockStore) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	if m.ListTeamMembersFunc != nil {
		return m.ListTeamMembersFunc(ctx)
	}
	return nil, nil
}

// mockMedia implements MediaSearcher and records every expression searched.
type mockMedia struct {
	ConfiguredFunc func() bool
	SearchFunc     func(ctx context.Context, expression string) ([]driver.MediaResource, error)

	expressions []string
}

func (m *mockMedia) Configured() bool {
	if m.ConfiguredFunc != nil {
		return m.ConfiguredFunc()
	}
	return true
}

func (m *mockMedia) Search(ctx context.Context, expression string) ([]driver.MediaResource, error) {
	m.expressions = append(m.expressions, expression)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, expression)
	}
	return nil, nil
}

func (m *mockMedia) DeliveryURL(resource driver.MediaResource) string {
	return resource.SecureURL
}
