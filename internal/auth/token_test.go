package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", 7*24*time.Hour)
	userID := uuid.New()
	now := time.Now()

	token, expiresAt, err := m.Issue(userID, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(7*24*time.Hour), expiresAt, time.Second)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Hour).Issue(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue(uuid.New(), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)

	actor := &Actor{ID: uuid.New(), Role: domain.RoleAdmin, Verified: true}
	got, ok := ActorFromContext(WithActor(context.Background(), actor))
	require.True(t, ok)
	assert.Same(t, actor, got)
	assert.True(t, got.IsAdmin())
}
