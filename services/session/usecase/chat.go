package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/session"
)

// SendMessage appends a customer message to the chat of the active service
// and schedules the simulated provider reply
func (c *Controller) SendMessage(text string) (models.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)

	c.lock()
	defer c.unlock()
	if c.state != models.SessionStateActive {
		return models.ChatMessage{}, &session.InvalidStateError{Operation: "send a message", State: c.state}
	}
	if trimmed == "" {
		return models.ChatMessage{}, &session.ValidationError{
			Fields: []session.FieldError{{Field: "text", Reason: reasonRequired}},
		}
	}
	if utf8.RuneCountInString(trimmed) > MaxChatLength {
		return models.ChatMessage{}, &session.ValidationError{
			Fields: []session.FieldError{{Field: "text", Reason: "must be at most 1000 characters"}},
		}
	}
	if !c.limiter.AllowN(c.now(), 1) {
		return models.ChatMessage{}, &session.RateLimitedError{}
	}

	msg := c.appendChatLocked(models.ChatSenderUser, trimmed)
	c.log.Debug("Chat message sent",
		logger.String("message_id", msg.ID),
		logger.String("preview", utils.Truncate(trimmed, 40)))

	gen := c.gen
	key := timerChatPrefix + msg.ID
	c.timers.arm(key, c.deps.Sim.ChatReplyDelay, func() {
		c.onChatReply(gen, key)
	})
	c.pushSnapshot()
	return msg, nil
}

func (c *Controller) onChatReply(gen uint64, key string) {
	c.lock()
	defer c.unlock()
	if c.gen != gen || c.state != models.SessionStateActive {
		return
	}
	c.timers.forget(key)
	c.appendChatLocked(models.ChatSenderProvider, constants.ChatAutoReply)
	c.pushSnapshot()
}

// appendChatLocked adds a message with the next id of this session
func (c *Controller) appendChatLocked(sender models.ChatSender, text string) models.ChatMessage {
	c.msgSeq++
	msg := models.ChatMessage{
		ID:        fmt.Sprintf("msg-%06d", c.msgSeq),
		Sender:    sender,
		Text:      text,
		Timestamp: c.now(),
	}
	c.chat = append(c.chat, msg)
	return msg
}
