package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationIDIsUnordered(t *testing.T) {
	assert.Equal(t, ConversationID("U1", "U2"), ConversationID("U2", "U1"))
	assert.Equal(t, "U1#U2", ConversationID("U2", "U1"))
	assert.NotEqual(t, ConversationID("U1", "U2"), ConversationID("U1", "U3"))
}
