package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models/dto"
)

func TestSubmitContactMessage(t *testing.T) {
	contacts := &fakeContactStore{}
	svc := NewContactService(contacts)

	resp, err := svc.Submit(context.Background(), &dto.SubmitContactMessageRequest{
		Name:    "Ayşe Yılmaz",
		Email:   "ayse@example.com",
		Subject: "Missing syllabus",
		Message: "The semester 3 syllabus link is broken.",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Missing syllabus", resp.Subject)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Len(t, contacts.messages, 1)
}

func TestSubmitContactMessage_StoreError(t *testing.T) {
	contacts := &fakeContactStore{createErr: errors.New("insert failed")}
	svc := NewContactService(contacts)

	_, err := svc.Submit(context.Background(), &dto.SubmitContactMessageRequest{
		Name: "x", Email: "x@example.com", Subject: "s", Message: "m",
	})

	assert.Error(t, err)
}

func TestListContactMessages(t *testing.T) {
	contacts := &fakeContactStore{}
	svc := NewContactService(contacts)

	for _, subject := range []string{"first", "second"} {
		_, err := svc.Submit(context.Background(), &dto.SubmitContactMessageRequest{
			Name: "n", Email: "n@example.com", Subject: subject, Message: "m",
		})
		require.NoError(t, err)
	}

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Subject)
}
