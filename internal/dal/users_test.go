package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountUsers() {
	count, err := s.store.CountUsers()
	s.Require().NoError(err, "error counting users")
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutUser(User{ChatID: 1, FirstName: "Ali"}))
	count, err = s.store.CountUsers()
	s.Require().NoError(err, "error counting users")
	s.Require().Equal(1, count)

	s.Require().NoError(s.store.PutUser(User{ChatID: 2}))
	count, err = s.store.CountUsers()
	s.Require().NoError(err, "error counting users")
	s.Require().Equal(2, count)

	s.Require().NoError(s.store.PutUser(User{ChatID: 1})) // same chat ID
	count, err = s.store.CountUsers()
	s.Require().NoError(err, "error counting users")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetUser() {
	createdAt := time.Date(2026, time.March, 3, 10, 11, 12, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutUser(User{ChatID: 1, FirstName: "Ali"}))

	actual, ok, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	if s.True(ok) {
		s.Equal(User{ChatID: 1, FirstName: "Ali", CreatedAt: createdAt}, actual)
	}

	_, ok, err = s.store.GetUser(2)
	s.Require().NoError(err, "error getting user")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_PutUser_PreservesCreatedAt() {
	createdAt := time.Date(2026, time.March, 3, 10, 11, 12, 0, time.UTC)
	s.now.Set(createdAt)
	s.Require().NoError(s.store.PutUser(User{ChatID: 1}))

	s.now.Set(createdAt.AddDate(0, 0, 1))
	s.Require().NoError(s.store.PutUser(User{ChatID: 1, FirstName: "Ali"}))

	actual, ok, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	s.Require().True(ok)
	s.Equal(createdAt, actual.CreatedAt)
	s.Equal("Ali", actual.FirstName)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllUsers() {
	s.Require().NoError(s.store.PutUser(User{ChatID: 1}))
	s.Require().NoError(s.store.PutUser(User{ChatID: 2}))
	s.Require().NoError(s.store.PutUser(User{ChatID: 3}))

	actual, err := s.store.GetAllUsers()
	s.Require().NoError(err, "error getting all users")

	if s.Len(actual, 3) {
		ids := []int64{actual[0].ChatID, actual[1].ChatID, actual[2].ChatID}
		s.Equal([]int64{1, 2, 3}, ids)
	}
}

func (s *BoltDBTestSuite) TestBoltDB_IncrementUserMessages() {
	err := s.store.IncrementUserMessages(1)
	s.Require().Error(err, "increment for unknown user must fail")

	s.Require().NoError(s.store.PutUser(User{ChatID: 1}))

	s.Require().NoError(s.store.IncrementUserMessages(1))
	s.Require().NoError(s.store.IncrementUserMessages(1))

	actual, ok, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	s.Require().True(ok)
	s.Equal(2, actual.Messages)
}
