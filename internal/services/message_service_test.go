package services

import (
	"testing"

	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingNotifier записывает доставленные уведомления
type capturingNotifier struct {
	delivered []string
}

func (n *capturingNotifier) NotifyNewMessage(receiverID string, message *dto.MessageResponse) {
	n.delivered = append(n.delivered, receiverID)
}

func TestSendMessageNotifiesReceiver(t *testing.T) {
	db := setupTestDB(t)
	notifier := &capturingNotifier{}
	svc := NewMessageService(repositories.NewMessageRepository(), repositories.NewUserRepository(), notifier)

	seedUser(t, db, "u1", models.UserRoleCustomer)
	seedUser(t, db, "u2", models.UserRoleProvider)

	resp, err := svc.SendMessage(db, "u1", &dto.SendMessageRequest{ReceiverID: "u2", Text: "Hi, are you available Friday?"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.SenderID)
	assert.Equal(t, "en", resp.OriginalLanguage) // язык по умолчанию
	assert.False(t, resp.Read)
	assert.Equal(t, []string{"u2"}, notifier.delivered)

	// Себе писать нельзя
	_, err = svc.SendMessage(db, "u1", &dto.SendMessageRequest{ReceiverID: "u1", Text: "note to self"})
	assert.Error(t, err)

	// Несуществующий получатель
	_, err = svc.SendMessage(db, "u1", &dto.SendMessageRequest{ReceiverID: "missing", Text: "hello"})
	assert.Error(t, err)
}

func TestConversationAndUnreadCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(repositories.NewMessageRepository(), repositories.NewUserRepository(), nil)

	seedUser(t, db, "u1", models.UserRoleCustomer)
	seedUser(t, db, "u2", models.UserRoleProvider)

	_, err := svc.SendMessage(db, "u1", &dto.SendMessageRequest{ReceiverID: "u2", Text: "First"})
	require.NoError(t, err)
	_, err = svc.SendMessage(db, "u2", &dto.SendMessageRequest{ReceiverID: "u1", Text: "Second"})
	require.NoError(t, err)

	conversation, err := svc.GetConversation(db, "u1", "u2", 50, 0)
	require.NoError(t, err)
	assert.Len(t, conversation, 2)

	unread, err := svc.CountUnread(db, "u2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	require.NoError(t, svc.MarkConversationRead(db, "u2", "u1"))
	unread, err = svc.CountUnread(db, "u2")
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)
}
