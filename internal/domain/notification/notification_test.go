package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(1, TypeStatusChanged, "Concern GRV-2025-00001 updated", "Status changed from pending to in-progress")

	require.NoError(t, err)
	assert.False(t, n.IsRead())
	assert.Nil(t, n.ReadAt())
	assert.Nil(t, n.ConcernID())

	n.SetConcernID(7)
	require.NotNil(t, n.ConcernID())
	assert.Equal(t, uint(7), *n.ConcernID())
}

func TestNewNotification_Invalid(t *testing.T) {
	_, err := NewNotification(0, TypeStatusChanged, "title", "msg")
	assert.Error(t, err)

	_, err = NewNotification(1, NotificationType("password_reset"), "title", "msg")
	assert.Error(t, err)

	_, err = NewNotification(1, TypeCommentAdded, "", "msg")
	assert.Error(t, err)
}

func TestNotification_MarkRead_Idempotent(t *testing.T) {
	n, err := NewNotification(1, TypeConcernResolved, "Concern resolved", "")
	require.NoError(t, err)

	n.MarkRead()
	require.True(t, n.IsRead())
	first := n.ReadAt()
	require.NotNil(t, first)

	time.Sleep(time.Millisecond)
	n.MarkRead()
	assert.Equal(t, first, n.ReadAt(), "second MarkRead keeps the original timestamp")
}

func TestNotificationType_IsValid(t *testing.T) {
	for _, typ := range []NotificationType{
		TypeConcernCreated, TypeStatusChanged, TypeConcernAssigned, TypeConcernResolved, TypeCommentAdded,
	} {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, NotificationType("unknown").IsValid())
}
