package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// Publisher announces finished tournaments on a Redis channel. Nothing is stored.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

// Publish - sends the result as JSON to every subscriber of the channel.
func (that *Publisher) Publish(ctx context.Context, result *entity.TournamentResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish result to %s: %w", that.channel, err)
	}

	return nil
}
