package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// StreamClient is the subset of the Redis client used by the consumer.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type Validator interface {
	Validate(input models.ValidationInput) models.ValidationVerdict
}

var ErrMissingPayload = errors.New("missing payload field")

type Consumer struct {
	client        StreamClient
	stream        string
	groupID       string
	consumerName  string
	resultsStream string
	validator     Validator
	logger        *zerolog.Logger
}

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, validator Validator, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		stream:        cfg.Stream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		resultsStream: cfg.ResultsStream,
		validator:     validator,
		logger:        logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", c.groupID, err)
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Str("results_stream", c.resultsStream).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    10,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, s := range msgs {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	verdict, err := c.evaluate(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	if err := c.publish(ctx, verdict); err != nil {
		// left pending so the message can be claimed again
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish verdict")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) evaluate(msg redis.XMessage) (models.ValidationVerdict, error) {
	payload, ok := msg.Values["payload"].(string)
	if !ok {
		return models.ValidationVerdict{}, ErrMissingPayload
	}

	var req models.ValidationRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return models.ValidationVerdict{}, fmt.Errorf("invalid payload: %w", err)
	}
	if err := req.Validate(); err != nil {
		return models.ValidationVerdict{}, fmt.Errorf("invalid request: %w", err)
	}

	return c.validator.Validate(req.ToInput()), nil
}

func (c *Consumer) publish(ctx context.Context, verdict models.ValidationVerdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("failed to encode verdict: %w", err)
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultsStream,
		Values: map[string]any{
			"request_id": verdict.Metadata.RequestID,
			"verdict":    string(data),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
