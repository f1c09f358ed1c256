package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types for the blog stream
const (
	EventBlogCreated = "blog_created"
	EventBlogUpdated = "blog_updated"
	EventBlogDeleted = "blog_deleted"
)

// Stream and consumer group names
const (
	StreamBlogs        = "stream:blogs"
	ConsumerGroupStats = "stats_workers"
)

// BlogEvent is published whenever the blog collection changes. The stats
// worker consumes these to keep the aggregation snapshot fresh.
type BlogEvent struct {
	ID        string `json:"id"`        // unique event id, for tracing across publisher and worker logs
	Type      string `json:"type"`      // EventBlogCreated, EventBlogUpdated, EventBlogDeleted
	Timestamp int64  `json:"timestamp"` // Unix timestamp when the event occurred

	BlogID  int64 `json:"blog_id"`
	OwnerID int64 `json:"owner_id"`
}

func newBlogEvent(eventType string, blogID, ownerID int64) BlogEvent {
	return BlogEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		BlogID:    blogID,
		OwnerID:   ownerID,
	}
}

// NewBlogCreatedEvent marks a new blog entering the collection.
func NewBlogCreatedEvent(blogID, ownerID int64) BlogEvent {
	return newBlogEvent(EventBlogCreated, blogID, ownerID)
}

// NewBlogUpdatedEvent marks a changed blog (title, author, url or likes).
func NewBlogUpdatedEvent(blogID, ownerID int64) BlogEvent {
	return newBlogEvent(EventBlogUpdated, blogID, ownerID)
}

// NewBlogDeletedEvent marks a blog leaving the collection.
func NewBlogDeletedEvent(blogID, ownerID int64) BlogEvent {
	return newBlogEvent(EventBlogDeleted, blogID, ownerID)
}

// ToMap converts the event to field-value pairs for Redis XADD. The full
// event travels as JSON in a single "data" field; "type" is duplicated at
// the top level so streams can be inspected without decoding.
func (e BlogEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseBlogEvent decodes an event from Redis stream message values.
func ParseBlogEvent(values map[string]interface{}) (BlogEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return BlogEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event BlogEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return BlogEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
