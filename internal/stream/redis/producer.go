package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publish appends a validation request to the stream under the payload field.
func Publish(ctx context.Context, client StreamClient, stream string, req models.ValidationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid request: %w", err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": string(data)},
	}).Result()
}
