// Package assistant is the mock chat assistant: a canned-response service
// that answers after a fixed typing delay, standing in for a real model
// call.
package assistant

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrResponsePending is returned when a message arrives while the assistant
// is still composing the previous reply.
var ErrResponsePending = errors.New("assistant response already pending")

// Role identifies the author of a message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is one chat entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const greeting = "Hello! I'm your AI Studio assistant. How can I help you today with your social media management?"

var cannedResponses = []string{
	"I'd recommend posting at 7:00 PM on Tuesdays and Thursdays for your target audience. That's when engagement rates are highest.",
	"Based on your recent analytics, image posts with questions in the caption are performing 42% better than other content. Would you like me to help create some?",
	"Your audience demographics show a trend toward 25-34 year old professionals. Your content should focus on career growth and lifestyle balance.",
	"I've analyzed your competitors and noticed they're using more video content. Would you like me to help develop a video content strategy?",
	"Your engagement rate is 3.2% higher than the industry average. Great job! To further improve, try posting more consistently.",
}

// QuickPrompts are the suggested starter messages shown beside the chat.
var QuickPrompts = []string{
	"Analyze my last post's performance",
	"When is the best time to post?",
	"Create an Instagram post about our new product",
	"Write a tweet about industry trends",
	"Generate ideas for a YouTube series",
}

// Conversation is a single chat thread with the assistant. One reply is
// composed at a time; sending while a reply is pending is rejected.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	typing   bool

	delay time.Duration
	sleep func(time.Duration)
	pick  func(n int) int
	now   func() time.Time
}

// Option adjusts a conversation, mainly for tests.
type Option func(*Conversation)

// WithDelay overrides the typing delay.
func WithDelay(d time.Duration) Option {
	return func(c *Conversation) { c.delay = d }
}

// WithSleep overrides how the typing delay is waited out.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Conversation) { c.sleep = sleep }
}

// WithPick overrides the canned-response selector.
func WithPick(pick func(n int) int) Option {
	return func(c *Conversation) { c.pick = pick }
}

// WithClock overrides the message timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// NewConversation opens a thread seeded with the assistant greeting.
func NewConversation(opts ...Option) *Conversation {
	c := &Conversation{
		delay: 1500 * time.Millisecond,
		sleep: time.Sleep,
		pick:  rand.Intn,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.messages = []Message{{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   greeting,
		Timestamp: c.now(),
	}}
	return c
}

// Send records the user message and composes a canned reply after the
// typing delay. Empty input is ignored.
func (c *Conversation) Send(input string) (Message, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Message{}, errors.New("empty message")
	}

	c.mu.Lock()
	if c.typing {
		c.mu.Unlock()
		return Message{}, ErrResponsePending
	}
	c.typing = true
	c.messages = append(c.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   input,
		Timestamp: c.now(),
	})
	c.mu.Unlock()

	if c.delay > 0 {
		c.sleep(c.delay)
	}

	reply := Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   cannedResponses[c.pick(len(cannedResponses))],
		Timestamp: c.now(),
	}

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.typing = false
	c.mu.Unlock()
	return reply, nil
}

// Messages returns the thread so far.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Typing reports whether a reply is being composed.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}
