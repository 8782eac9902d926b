package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
	"github.com/rocketscienceinc/streak-tournament/testing/suite"
)

const testChannel = "tournament:results"

func TestPublisher_Publish(t *testing.T) {
	t.Run("Subscriber receives the result", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a subscriber listening on the channel
		subscriber := st.Storage.Subscribe(ctx, testChannel)
		t.Cleanup(func() {
			_ = subscriber.Close()
		})

		_, err := subscriber.Receive(ctx)
		require.NoError(t, err)

		result := &entity.TournamentResult{
			ID:          "run-1",
			Rounds:      10,
			BoardSize:   4,
			WinStreak:   3,
			Player1Name: "genius",
			Player2Name: "clever",
			Player1Wins: 6,
			Player2Wins: 3,
			Ties:        1,
		}

		// When: the result is published
		err = NewPublisher(st.Storage, testChannel).Publish(ctx, result)
		require.NoError(t, err)

		// Then: the subscriber gets the same result back
		msg, err := subscriber.ReceiveMessage(ctx)
		require.NoError(t, err)

		var received entity.TournamentResult
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
		assert.Equal(t, *result, received)
	})

	t.Run("Publishing without subscribers", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := NewPublisher(st.Storage, testChannel).Publish(ctx, &entity.TournamentResult{ID: "run-2"})

		require.NoError(t, err)
	})

	t.Run("Closed client", func(t *testing.T) {
		ctx, st := suite.New(t)
		require.NoError(t, st.Storage.Close())

		err := NewPublisher(st.Storage, testChannel).Publish(ctx, &entity.TournamentResult{ID: "run-3"})

		require.Error(t, err)
	})
}
