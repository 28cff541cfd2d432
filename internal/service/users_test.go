package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albot-uz/albot/internal/dal"
	"github.com/albot-uz/albot/internal/service"
)

func TestUsers_Register(t *testing.T) {
	store := &usersStoreStub{}
	svc := service.NewUsers(store, discardLogger())

	require.NoError(t, svc.Register(42, "Ali"))
	require.Len(t, store.users, 1)
	assert.Equal(t, dal.User{ChatID: 42, FirstName: "Ali"}, store.users[0])

	// registering again must not reset the record
	store.users[0].Messages = 7
	require.NoError(t, svc.Register(42, "Ali"))
	require.Len(t, store.users, 1)
	assert.Equal(t, 7, store.users[0].Messages)
}

func TestUsers_Count(t *testing.T) {
	store := &usersStoreStub{users: []dal.User{{ChatID: 1}, {ChatID: 2}}}
	svc := service.NewUsers(store, discardLogger())

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUsers_IncrementMessages(t *testing.T) {
	store := &usersStoreStub{users: []dal.User{{ChatID: 1}}}
	svc := service.NewUsers(store, discardLogger())

	require.NoError(t, svc.IncrementMessages(1))
	assert.Equal(t, 1, store.users[0].Messages)

	err := svc.IncrementMessages(2)
	require.Error(t, err)
}
