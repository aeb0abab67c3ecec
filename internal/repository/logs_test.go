//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options match everything",
			opts:     LogQueryOptions{Limit: 10, Skip: 5},
			expected: bson.M{},
		},
		{
			name: "exact fields",
			opts: LogQueryOptions{
				RequestID:  "req-1",
				Level:      "info",
				ActionType: "quote",
				Subject:    "client-a",
				Method:     "POST",
			},
			expected: bson.M{
				"request_id":  "req-1",
				"level":       "info",
				"action_type": "quote",
				"subject":     "client-a",
				"method":      "POST",
			},
		},
		{
			name:     "path is an escaped case-insensitive regex",
			opts:     LogQueryOptions{Path: "/api/quote?x"},
			expected: bson.M{"path": bson.M{"$regex": `/api/quote\?x`, "$options": "i"}},
		},
		{
			name:     "start only",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name:     "time range",
			opts:     LogQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.Filter())
		})
	}
}

func TestStamp(t *testing.T) {
	doc := &LogEntryDocument{Message: "quote"}

	stamp(doc)

	assert.False(t, doc.ID.IsZero())
	assert.False(t, doc.Timestamp.IsZero())

	id, ts := doc.ID, doc.Timestamp
	stamp(doc)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, ts, doc.Timestamp)
}

func TestDefaultMongoConfig(t *testing.T) {
	cfg := DefaultMongoConfig()

	assert.Greater(t, cfg.MaxPoolSize, cfg.MinPoolSize)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.True(t, cfg.EnableCompression)
}
