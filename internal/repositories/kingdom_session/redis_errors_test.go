package kingdomsession_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	apperrors "github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/clock"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

// RedisFailureTestSuite drives the repository against a scripted client to
// cover failures miniredis cannot produce
type RedisFailureTestSuite struct {
	suite.Suite
	ctx  context.Context
	mock redismock.ClientMock
	now  time.Time
	repo kingdomsession.Repository
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := kingdomsession.NewRedisRepository(&kingdomsession.Config{
		Client: client,
		Clock:  clock.NewFixed(s.now),
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

// stored returns the document the repository writes for session
func (s *RedisFailureTestSuite) stored(session *kingdomsession.Session, created bool) []byte {
	doc := *session
	if created {
		doc.CreatedAt = s.now
	}
	doc.UpdatedAt = s.now

	data, err := json.Marshal(&doc)
	s.Require().NoError(err)
	return data
}

func (s *RedisFailureTestSuite) session() *kingdomsession.Session {
	return &kingdomsession.Session{ID: "s1", Settings: entities.DefaultSettings("base")}
}

func (s *RedisFailureTestSuite) TestGet_ConnectionError() {
	s.mock.ExpectGet("kingdom_session:s1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, kingdomsession.GetInput{ID: "s1"})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisFailureTestSuite) TestGet_CorruptDocument() {
	s.mock.ExpectGet("kingdom_session:s1").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, kingdomsession.GetInput{ID: "s1"})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestCreate_WriteError() {
	session := s.session()
	s.mock.ExpectSetNX("kingdom_session:s1", s.stored(session, true), time.Hour).
		SetErr(errors.New("READONLY"))

	_, err := s.repo.Create(s.ctx, kingdomsession.CreateInput{Session: session})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestCreate_IndexError() {
	session := s.session()
	s.mock.ExpectSetNX("kingdom_session:s1", s.stored(session, true), time.Hour).SetVal(true)
	s.mock.ExpectZAdd("kingdom_sessions:recent", redisZ(s.now, "s1")).SetErr(errors.New("OOM"))

	_, err := s.repo.Create(s.ctx, kingdomsession.CreateInput{Session: session})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to index session")
}

func (s *RedisFailureTestSuite) TestUpdate_Missing() {
	session := s.session()
	s.mock.ExpectSetXX("kingdom_session:s1", s.stored(session, false), time.Hour).SetVal(false)

	_, err := s.repo.Update(s.ctx, kingdomsession.UpdateInput{Session: session})
	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisFailureTestSuite) TestList_PruneError() {
	cutoff := "(" + strconv.FormatInt(s.now.Add(-time.Hour).UnixMilli(), 10)
	s.mock.ExpectZRemRangeByScore("kingdom_sessions:recent", "-inf", cutoff).
		SetErr(errors.New("connection reset"))

	_, err := s.repo.List(s.ctx, kingdomsession.ListInput{})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestList_RangeError() {
	cutoff := "(" + strconv.FormatInt(s.now.Add(-time.Hour).UnixMilli(), 10)
	s.mock.ExpectZRemRangeByScore("kingdom_sessions:recent", "-inf", cutoff).SetVal(0)
	s.mock.ExpectZRevRange("kingdom_sessions:recent", 0, 19).SetErr(errors.New("connection reset"))

	_, err := s.repo.List(s.ctx, kingdomsession.ListInput{})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
}

func TestRedisFailureTestSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func redisZ(at time.Time, id string) redis.Z {
	return redis.Z{Score: float64(at.UnixMilli()), Member: id}
}
