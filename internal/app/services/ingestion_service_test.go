package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/pkg/apperrors"
)

const testMaxUploadBytes = 50 * 1024 * 1024

func newTestProgram(semesters int) models.Program {
	return models.Program{
		ID:        uuid.New(),
		Name:      "B.Tech Computer Science",
		Type:      models.ProgramTypeUndergraduate,
		Semesters: semesters,
	}
}

func validUpload(programID uuid.UUID, semester int) *UploadInput {
	return &UploadInput{
		ProgramID:   programID,
		Semester:    semester,
		Title:       "Data Structures Notes",
		Type:        models.ResourceTypeStudyMaterial,
		Filename:    "notes.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		Content:     bytes.NewReader([]byte("pdf bytes")),
	}
}

func TestUpload_MissingRequiredFields(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	mutations := map[string]func(*UploadInput){
		"no program": func(in *UploadInput) { in.ProgramID = uuid.Nil },
		"no title":   func(in *UploadInput) { in.Title = "" },
		"no content": func(in *UploadInput) { in.Content = nil },
		"no type":    func(in *UploadInput) { in.Type = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := validUpload(program.ID, 3)
			mutate(in)

			_, err := svc.Upload(context.Background(), in, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, "missing required field", err.Error())
		})
	}

	assert.Empty(t, store.storedKeys)
	assert.Empty(t, resources.resources)
}

func TestUpload_FileTooLarge(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, &fakeResourceStore{}, store, testMaxUploadBytes)

	in := validUpload(program.ID, 1)
	in.Size = testMaxUploadBytes + 1

	_, err := svc.Upload(context.Background(), in, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "file too large", err.Error())
	assert.Empty(t, store.storedKeys)
}

func TestUpload_SizeExactlyAtLimit(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, &fakeResourceStore{}, store, testMaxUploadBytes)

	in := validUpload(program.ID, 1)
	in.Size = testMaxUploadBytes

	_, err := svc.Upload(context.Background(), in, nil)

	require.NoError(t, err)
	assert.Len(t, store.storedKeys, 1)
}

func TestUpload_UnknownProgram(t *testing.T) {
	programs := &fakeProgramStore{}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, &fakeResourceStore{}, store, testMaxUploadBytes)

	in := validUpload(uuid.New(), 1)

	_, err := svc.Upload(context.Background(), in, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "unknown program", err.Error())
	assert.Empty(t, store.storedKeys)
}

func TestUpload_SemesterOutOfRange(t *testing.T) {
	program := newTestProgram(4)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	store := &fakeObjectStore{}
	resources := &fakeResourceStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	for _, semester := range []int{0, -1, 5} {
		in := validUpload(program.ID, semester)

		_, err := svc.Upload(context.Background(), in, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "semester out of range", err.Error())
	}
	assert.Empty(t, store.storedKeys)

	// Semester 2 fits the same 4-semester program.
	resp, err := svc.Upload(context.Background(), validUpload(program.ID, 2), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Semester)
	assert.Len(t, resources.resources, 1)
}

func TestUpload_Success(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	uploader := uuid.New()
	in := validUpload(program.ID, 3)
	in.Size = 2453667
	in.UploaderID = &uploader

	resp, err := svc.Upload(context.Background(), in, nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, program.ID, resp.ProgramID)
	assert.Equal(t, "Data Structures Notes", resp.Title)
	require.NotNil(t, resp.FileSize)
	assert.Equal(t, "2.34 MB", *resp.FileSize)
	require.NotNil(t, resp.Program)
	assert.Equal(t, program.Name, resp.Program.Name)

	require.Len(t, store.storedKeys, 1)
	assert.True(t, strings.HasSuffix(store.storedKeys[0], ".pdf"))
	assert.Equal(t, store.PublicURL(store.storedKeys[0]), resp.FileURL)

	require.Len(t, resources.resources, 1)
	assert.Equal(t, &uploader, resources.resources[0].UploadedBy)
}

func TestUpload_StoreFailureCreatesNoRow(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	store := &fakeObjectStore{storeErr: errors.New("connection refused")}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	_, err := svc.Upload(context.Background(), validUpload(program.ID, 1), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailed)
	assert.Empty(t, resources.resources)
}

func TestUpload_RowFailureAfterStoreLeavesBlob(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{createErr: errors.New("insert failed")}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	_, err := svc.Upload(context.Background(), validUpload(program.ID, 1), nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrStorageFailed)
	// Blob stays; it is never rolled back once stored.
	assert.Len(t, store.storedKeys, 1)
	assert.Empty(t, store.removedKeys)
	assert.Empty(t, resources.resources)
}

func TestUpload_ProgressMonotonicAndComplete(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	svc := NewIngestionService(programs, &fakeResourceStore{}, &fakeObjectStore{}, testMaxUploadBytes)

	var reported []int
	_, err := svc.Upload(context.Background(), validUpload(program.ID, 1), func(percent int) {
		reported = append(reported, percent)
	})

	require.NoError(t, err)
	require.NotEmpty(t, reported)
	for i := 1; i < len(reported); i++ {
		assert.GreaterOrEqual(t, reported[i], reported[i-1])
	}
	assert.Equal(t, 100, reported[len(reported)-1])
}

func TestUpload_ProgressNeverCompletesOnFailure(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{createErr: errors.New("insert failed")}
	svc := NewIngestionService(programs, resources, &fakeObjectStore{}, testMaxUploadBytes)

	var reported []int
	_, err := svc.Upload(context.Background(), validUpload(program.ID, 1), func(percent int) {
		reported = append(reported, percent)
	})

	require.Error(t, err)
	for _, percent := range reported {
		assert.Less(t, percent, 100)
	}
}

func TestDelete_RemovesRowAndBlob(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	resp, err := svc.Upload(context.Background(), validUpload(program.ID, 1), nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), resp.ID)

	require.NoError(t, err)
	assert.Empty(t, resources.resources)
	require.Len(t, store.removedKeys, 1)
	assert.Equal(t, store.storedKeys[0], store.removedKeys[0])
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewIngestionService(&fakeProgramStore{}, &fakeResourceStore{}, &fakeObjectStore{}, testMaxUploadBytes)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDelete_Twice(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	svc := NewIngestionService(programs, resources, &fakeObjectStore{}, testMaxUploadBytes)

	resp, err := svc.Upload(context.Background(), validUpload(program.ID, 1), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), resp.ID), apperrors.ErrResourceNotFound)
}

func TestDelete_BlobRemovalFailureIsIgnored(t *testing.T) {
	program := newTestProgram(8)
	programs := &fakeProgramStore{programs: []models.Program{program}}
	resources := &fakeResourceStore{}
	store := &fakeObjectStore{}
	svc := NewIngestionService(programs, resources, store, testMaxUploadBytes)

	resp, err := svc.Upload(context.Background(), validUpload(program.ID, 1), nil)
	require.NoError(t, err)

	store.removeErr = errors.New("connection refused")
	err = svc.Delete(context.Background(), resp.ID)

	require.NoError(t, err)
	assert.Empty(t, resources.resources)
}
