package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models"
)

func TestDashboard_Counts(t *testing.T) {
	programs := &fakeProgramStore{programs: []models.Program{
		{ID: uuid.New(), Name: "B.Tech", Semesters: 8},
		{ID: uuid.New(), Name: "M.Tech", Semesters: 4},
	}}
	resources := &fakeResourceStore{resources: []models.Resource{
		{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()},
	}}
	downloads := &fakeDownloadStore{created: []models.Download{{ID: uuid.New()}}}
	contacts := &fakeContactStore{messages: []models.ContactMessage{{ID: uuid.New()}}}
	svc := NewStatsService(programs, resources, downloads, contacts)

	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Programs)
	assert.Equal(t, int64(3), stats.Resources)
	assert.Equal(t, int64(1), stats.Downloads)
	assert.Equal(t, int64(1), stats.Messages)
}

func TestDashboard_ResourceCountMatchesListing(t *testing.T) {
	resources := &fakeResourceStore{resources: []models.Resource{
		{ID: uuid.New()}, {ID: uuid.New()},
	}}
	catalog := NewCatalogService(&fakeProgramStore{}, resources)
	stats := NewStatsService(&fakeProgramStore{}, resources, &fakeDownloadStore{}, &fakeContactStore{})

	listed, err := catalog.ListResources(context.Background(), nil)
	require.NoError(t, err)

	dashboard, err := stats.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(len(listed)), dashboard.Resources)
}

func TestDashboard_CountError(t *testing.T) {
	programs := &fakeProgramStore{countErr: errors.New("connection refused")}
	svc := NewStatsService(programs, &fakeResourceStore{}, &fakeDownloadStore{}, &fakeContactStore{})

	_, err := svc.Dashboard(context.Background())

	assert.Error(t, err)
}
