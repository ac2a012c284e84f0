package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	cherr "github.com/ninthworld/chargen/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()

	repo, err := NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	sheet := testSheet("abc")

	data, err := Encode(sheet)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("sheet:abc", data, 0).SetVal("OK")
	s.mock.ExpectSAdd("sheets", "abc").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Save(ctx, sheet))
}

func (s *RedisRepoTestSuite) TestSaveRedisError() {
	ctx := context.Background()
	sheet := testSheet("abc")

	data, err := Encode(sheet)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("sheet:abc", data, 0).SetErr(errors.New("redis down"))

	s.Error(s.repo.Save(ctx, sheet))
}

func (s *RedisRepoTestSuite) TestSaveInputValidation() {
	s.Error(s.repo.Save(context.Background(), nil))

	sheet := testSheet("abc")
	sheet.ID = ""
	s.Error(s.repo.Save(context.Background(), sheet))
}

func (s *RedisRepoTestSuite) TestGet() {
	sheet := testSheet("abc")
	data, err := Encode(sheet)
	s.Require().NoError(err)

	s.mock.ExpectGet("sheet:abc").SetVal(string(data))

	got, err := s.repo.Get(context.Background(), "abc")
	s.Require().NoError(err)
	s.Equal(sheet, got)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("sheet:nope").RedisNil()

	_, err := s.repo.Get(context.Background(), "nope")
	s.True(cherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetCorruptPayload() {
	s.mock.ExpectGet("sheet:abc").SetVal("corrupt {{ payload")

	_, err := s.repo.Get(context.Background(), "abc")
	s.True(cherr.IsCorruptData(err))
}

func (s *RedisRepoTestSuite) TestList() {
	one := testSheet("one")
	two := testSheet("two")
	dataOne, err := Encode(one)
	s.Require().NoError(err)
	dataTwo, err := Encode(two)
	s.Require().NoError(err)

	// List fetches concurrently, so arrival order is not fixed
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("sheets").SetVal([]string{"one", "two"})
	s.mock.ExpectGet("sheet:one").SetVal(string(dataOne))
	s.mock.ExpectGet("sheet:two").SetVal(string(dataTwo))

	sheets, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Len(sheets, 2)
}

func (s *RedisRepoTestSuite) TestListSkipsDanglingIndexEntries() {
	one := testSheet("one")
	dataOne, err := Encode(one)
	s.Require().NoError(err)

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("sheets").SetVal([]string{"one", "ghost"})
	s.mock.ExpectGet("sheet:one").SetVal(string(dataOne))
	s.mock.ExpectGet("sheet:ghost").RedisNil()

	sheets, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Len(sheets, 1)
	s.Equal("one", sheets[0].ID)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("sheet:abc").SetVal(1)
	s.mock.ExpectSRem("sheets", "abc").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(context.Background(), "abc"))
}

func (s *RedisRepoTestSuite) TestDeleteMissing() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("sheet:nope").SetVal(0)
	s.mock.ExpectSRem("sheets", "nope").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Delete(context.Background(), "nope")
	s.True(cherr.IsNotFound(err))
}
