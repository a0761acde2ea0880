package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

type Client struct {
	rdb *redis.Client
}

// SessionData mirrors one issued auth token: who it belongs to and which side
// of the app (customer or staff) they came in through. Deleting the record
// revokes the token before its JWT expiry.
type SessionData struct {
	UserID    uint      `json:"user_id"`
	Kind      string    `json:"kind"` // "customer" or "staff"
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetSession(ctx context.Context, sessionID string, data *SessionData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
