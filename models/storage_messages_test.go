package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndFetchMessage(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	sender := seedUser(t, db, "sender@example.com", RoleUser)
	receiver := seedUser(t, db, "receiver@example.com", RoleUser)

	message, err := db.CreateMessage("hello", sender.ID, receiver.ID)
	assert.NoError(t, err)
	assert.Equal(t, sender.ID, message.SenderID)
	assert.Equal(t, receiver.ID, message.ReceiverID)
	assert.False(t, message.SentAt.IsZero())

	fetched, err := db.GetMessage(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hello", fetched.Body)

	missing, err := db.GetMessage(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateMessageDanglingReceiver(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	sender := seedUser(t, db, "sender@example.com", RoleUser)

	_, err := db.CreateMessage("hello", sender.ID, 9999)
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrKindReferential, domainErr.Kind)
}

func TestUpdateMessage(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	sender := seedUser(t, db, "sender@example.com", RoleUser)
	receiver := seedUser(t, db, "receiver@example.com", RoleUser)

	message, err := db.CreateMessage("hello", sender.ID, receiver.ID)
	assert.NoError(t, err)

	body := "hello again"
	updated, err := db.UpdateMessage(message.ID, MessagePatch{Body: &body})
	assert.NoError(t, err)
	assert.Equal(t, "hello again", updated.Body)
	assert.Equal(t, receiver.ID, updated.ReceiverID)

	badReceiver := uint(9999)
	_, err = db.UpdateMessage(message.ID, MessagePatch{ReceiverID: &badReceiver})
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrKindReferential, domainErr.Kind)
}

func TestDeleteMessage(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	sender := seedUser(t, db, "sender@example.com", RoleUser)
	receiver := seedUser(t, db, "receiver@example.com", RoleUser)

	message, err := db.CreateMessage("hello", sender.ID, receiver.ID)
	assert.NoError(t, err)

	deleted, err := db.DeleteMessage(message.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = db.DeleteMessage(message.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestMessageListsScopedToActor(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	alice := seedUser(t, db, "alice@example.com", RoleUser)
	bob := seedUser(t, db, "bob@example.com", RoleUser)
	carol := seedUser(t, db, "carol@example.com", RoleUser)

	_, err := db.CreateMessage("to bob", alice.ID, bob.ID)
	assert.NoError(t, err)
	_, err = db.CreateMessage("to carol", alice.ID, carol.ID)
	assert.NoError(t, err)
	_, err = db.CreateMessage("to alice", bob.ID, alice.ID)
	assert.NoError(t, err)

	sent, err := db.GetMessagesBySender(alice.ID, 0, 100)
	assert.NoError(t, err)
	assert.Len(t, sent, 2)

	received, err := db.GetMessagesByReceiver(alice.ID, 0, 100)
	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "to alice", received[0].Body)
}
