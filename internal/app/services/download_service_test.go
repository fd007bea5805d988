package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
)

func TestRecord_AttachesFileURL(t *testing.T) {
	resource := models.Resource{ID: uuid.New(), FileURL: "http://files.test/resources/123-abc.pdf"}
	resources := &fakeResourceStore{resources: []models.Resource{resource}}
	downloads := &fakeDownloadStore{}
	svc := NewDownloadService(downloads, resources)

	ip := "203.0.113.7"
	resp, err := svc.Record(context.Background(), resource.ID, &ip)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, resource.ID, resp.ResourceID)
	require.NotNil(t, resp.FileURL)
	assert.Equal(t, resource.FileURL, *resp.FileURL)

	require.Len(t, downloads.created, 1)
	require.NotNil(t, downloads.created[0].IPAddress)
	assert.Equal(t, ip, *downloads.created[0].IPAddress)
}

func TestRecord_MissingResourceStillRecorded(t *testing.T) {
	downloads := &fakeDownloadStore{}
	svc := NewDownloadService(downloads, &fakeResourceStore{})

	resp, err := svc.Record(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Nil(t, resp.FileURL)
	assert.Len(t, downloads.created, 1)
}

func TestRecord_ResourceLookupFailureStillRecorded(t *testing.T) {
	downloads := &fakeDownloadStore{}
	resources := &fakeResourceStore{getErr: errors.New("connection refused")}
	svc := NewDownloadService(downloads, resources)

	resp, err := svc.Record(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Nil(t, resp.FileURL)
	assert.Len(t, downloads.created, 1)
}

func TestRecord_CreateFailure(t *testing.T) {
	downloads := &fakeDownloadStore{createErr: errors.New("insert failed")}
	svc := NewDownloadService(downloads, &fakeResourceStore{})

	_, err := svc.Record(context.Background(), uuid.New(), nil)

	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }

func TestRecent_MapsDeletedResourceToUnknown(t *testing.T) {
	downloads := &fakeDownloadStore{recent: []models.RecentDownload{
		{
			Download:      models.Download{ID: uuid.New(), ResourceID: uuid.New(), DownloadedAt: time.Now()},
			ResourceTitle: strPtr("Thermodynamics Papers"),
			ResourceType:  strPtr("previous_year_papers"),
		},
		{
			Download: models.Download{ID: uuid.New(), ResourceID: uuid.New(), DownloadedAt: time.Now()},
		},
	}}
	svc := NewDownloadService(downloads, &fakeResourceStore{})

	result, err := svc.Recent(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Thermodynamics Papers", result[0].ResourceTitle)
	assert.Equal(t, "previous_year_papers", result[0].ResourceType)
	assert.Equal(t, dto.UnknownResourceLabel, result[1].ResourceTitle)
	assert.Equal(t, dto.UnknownResourceLabel, result[1].ResourceType)
}

func TestRecent_DefaultLimit(t *testing.T) {
	var recent []models.RecentDownload
	for i := 0; i < 25; i++ {
		recent = append(recent, models.RecentDownload{
			Download: models.Download{ID: uuid.New(), ResourceID: uuid.New(), DownloadedAt: time.Now()},
		})
	}
	downloads := &fakeDownloadStore{recent: recent}
	svc := NewDownloadService(downloads, &fakeResourceStore{})

	result, err := svc.Recent(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, result, 10)
}
