package dal

func (s *BoltDBTestSuite) TestBoltDB_GetChannels_Empty() {
	channels, err := s.store.GetChannels()
	s.Require().NoError(err, "error getting channels")
	s.Empty(channels)
}

func (s *BoltDBTestSuite) TestBoltDB_AddChannel() {
	added, err := s.store.AddChannel("@news")
	s.Require().NoError(err, "error adding channel")
	s.True(added)

	added, err = s.store.AddChannel("@sport")
	s.Require().NoError(err, "error adding channel")
	s.True(added)

	added, err = s.store.AddChannel("@news") // duplicate
	s.Require().NoError(err, "error adding channel")
	s.False(added)

	channels, err := s.store.GetChannels()
	s.Require().NoError(err, "error getting channels")
	s.Equal([]string{"@news", "@sport"}, channels)
}

func (s *BoltDBTestSuite) TestBoltDB_AddChannel_PreservesInsertionOrder() {
	for _, ch := range []string{"@zeta", "@alpha", "@mid"} {
		_, err := s.store.AddChannel(ch)
		s.Require().NoError(err, "error adding channel")
	}

	channels, err := s.store.GetChannels()
	s.Require().NoError(err, "error getting channels")
	s.Equal([]string{"@zeta", "@alpha", "@mid"}, channels)
}

func (s *BoltDBTestSuite) TestBoltDB_RemoveChannel() {
	_, err := s.store.AddChannel("@news")
	s.Require().NoError(err)
	_, err = s.store.AddChannel("@sport")
	s.Require().NoError(err)

	removed, err := s.store.RemoveChannel("@news")
	s.Require().NoError(err, "error removing channel")
	s.True(removed)

	removed, err = s.store.RemoveChannel("@news") // already gone
	s.Require().NoError(err, "error removing channel")
	s.False(removed)

	channels, err := s.store.GetChannels()
	s.Require().NoError(err, "error getting channels")
	s.Equal([]string{"@sport"}, channels)
}

func (s *BoltDBTestSuite) TestBoltDB_RemoveChannel_NotFound() {
	removed, err := s.store.RemoveChannel("@missing")
	s.Require().NoError(err, "error removing channel")
	s.False(removed)

	channels, err := s.store.GetChannels()
	s.Require().NoError(err, "error getting channels")
	s.Empty(channels)
}
