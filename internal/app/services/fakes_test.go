package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/derya/acadvault/internal/app/models"
)

// In-memory store fakes. Each one implements the matching repositories
// interface and lets tests inject failures per operation.

type fakeProgramStore struct {
	programs  []models.Program
	getAllErr error
	countErr  error
}

func (f *fakeProgramStore) GetAll(ctx context.Context) ([]models.Program, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.programs, nil
}

func (f *fakeProgramStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	for i := range f.programs {
		if f.programs[i].ID == id {
			p := f.programs[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProgramStore) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.programs)), nil
}

type fakeResourceStore struct {
	resources []models.Resource
	createErr error
	deleteErr error
	getErr    error
}

func (f *fakeResourceStore) GetAll(ctx context.Context, filter *models.ResourceFilter) ([]models.Resource, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	var out []models.Resource
	for _, res := range f.resources {
		if filter != nil && filter.ProgramID != nil {
			if res.ProgramID != *filter.ProgramID {
				continue
			}
			if filter.Semester != nil && res.Semester != *filter.Semester {
				continue
			}
		}
		out = append(out, res)
	}
	return out, nil
}

func (f *fakeResourceStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.resources {
		if f.resources[i].ID == id {
			res := f.resources[i]
			return &res, nil
		}
	}
	return nil, nil
}

func (f *fakeResourceStore) Create(ctx context.Context, resource *models.Resource) error {
	if f.createErr != nil {
		return f.createErr
	}
	resource.ID = uuid.New()
	resource.UploadDate = time.Now()
	resource.CreatedAt = resource.UploadDate
	f.resources = append(f.resources, *resource)
	return nil
}

func (f *fakeResourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.resources {
		if f.resources[i].ID == id {
			f.resources = append(f.resources[:i], f.resources[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeResourceStore) Count(ctx context.Context) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return int64(len(f.resources)), nil
}

type fakeDownloadStore struct {
	created   []models.Download
	recent    []models.RecentDownload
	createErr error
	recentErr error
}

func (f *fakeDownloadStore) Create(ctx context.Context, download *models.Download) error {
	if f.createErr != nil {
		return f.createErr
	}
	download.ID = uuid.New()
	download.DownloadedAt = time.Now()
	f.created = append(f.created, *download)
	return nil
}

func (f *fakeDownloadStore) GetRecent(ctx context.Context, limit int) ([]models.RecentDownload, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if limit > len(f.recent) {
		limit = len(f.recent)
	}
	return f.recent[:limit], nil
}

func (f *fakeDownloadStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created) + len(f.recent)), nil
}

type fakeContactStore struct {
	messages  []models.ContactMessage
	createErr error
	getAllErr error
}

func (f *fakeContactStore) Create(ctx context.Context, message *models.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeContactStore) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.messages, nil
}

func (f *fakeContactStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.messages)), nil
}

type fakeAdminStore struct {
	admins []models.Admin
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = uuid.New()
	admin.CreatedAt = time.Now()
	f.admins = append(f.admins, *admin)
	return nil
}

// fakeObjectStore records every Store and Remove call so tests can assert on
// what reached the blob store, and in which cases nothing did.
type fakeObjectStore struct {
	storedKeys  []string
	removedKeys []string
	storeErr    error
	removeErr   error
}

func (f *fakeObjectStore) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.storedKeys = append(f.storedKeys, key)
	return f.PublicURL(key), nil
}

func (f *fakeObjectStore) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedKeys = append(f.removedKeys, key)
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "http://files.test/resources/" + key
}
