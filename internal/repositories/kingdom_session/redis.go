package kingdomsession

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/kingdom-randomizer/internal/redis"
)

const (
	// Key pattern: kingdom_session:{id}
	sessionKeyPrefix = "kingdom_session:"
	// Sorted set of session ids scored by last update
	recentKey  = "kingdom_sessions:recent"
	defaultTTL = 24 * time.Hour

	defaultListLimit = 20

	errSessionNil = "session cannot be nil"
	errIDEmpty    = "session ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL is how long an untouched session lives; zero means one day
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for kingdom sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	session := *input.Session
	now := r.clock.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, buildKey(session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("session %s already exists", session.ID)
	}

	if err := r.touch(ctx, session.ID, now); err != nil {
		return nil, err
	}

	return &CreateOutput{Session: &session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", input.ID).WithMeta("session_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	session := *input.Session
	now := r.clock.Now()
	session.UpdatedAt = now

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	// XX only writes when the key is still there
	updated, err := r.client.SetXX(ctx, buildKey(session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session in Redis")
	}
	if !updated {
		return nil, errors.NotFoundf("session %s not found", session.ID).WithMeta("session_id", session.ID)
	}

	if err := r.touch(ctx, session.ID, now); err != nil {
		return nil, err
	}

	return &UpdateOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, buildKey(input.ID))
	pipe.ZRem(ctx, recentKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{}, nil
}

// List drops index entries whose session has expired before reading
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	cutoff := r.clock.Now().Add(-r.ttl)
	if err := r.client.ZRemRangeByScore(ctx, recentKey, "-inf", formatScore(cutoff)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to prune session index")
	}

	ids, err := r.client.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	output := &ListOutput{IDs: ids}
	if !input.WithSessions {
		return output, nil
	}

	sessions := make([]*Session, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			getOutput, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					return nil
				}
				return errors.Wrapf(err, "failed to get session %s", id)
			}
			sessions[i] = getOutput.Session
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, session := range sessions {
		if session != nil {
			output.Sessions = append(output.Sessions, session)
		}
	}
	return output, nil
}

func (r *redisRepository) touch(ctx context.Context, id string, at time.Time) error {
	err := r.client.ZAdd(ctx, recentKey, redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: id,
	}).Err()
	if err != nil {
		return errors.Wrap(err, "failed to index session")
	}
	return nil
}

func formatScore(t time.Time) string {
	return "(" + strconv.FormatInt(t.UnixMilli(), 10)
}

// buildKey creates the Redis key for a session
func buildKey(id string) string {
	return sessionKeyPrefix + id
}
