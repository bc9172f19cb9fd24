package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tenement_hub/internal/domain"
	"tenement_hub/internal/service/mocks"
)

type StatsServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	counter *mocks.MockTenementCounter
	service *StatsService
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.counter = mocks.NewMockTenementCounter(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewStatsService(s.counter, 2, logger)
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) TestSnapshot_AllJurisdictions() {
	ctx := context.Background()
	counts := map[domain.Jurisdiction]int64{
		domain.WA:  120,
		domain.NSW: 45,
		domain.VIC: 3,
		domain.NT:  0,
		domain.QLD: 77,
		domain.TAS: 9,
	}

	s.counter.EXPECT().Connect(ctx).Return(nil)
	for j, n := range counts {
		s.counter.EXPECT().CountByJurisdiction(gomock.Any(), j).Return(n, nil)
	}

	snapshot, err := s.service.Snapshot(ctx)

	s.Require().NoError(err)
	s.Equal(domain.StatsSnapshot(counts), snapshot)
}

func (s *StatsServiceTestSuite) TestSnapshot_FailedCountIsZero() {
	ctx := context.Background()

	s.counter.EXPECT().Connect(ctx).Return(nil)
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), domain.VIC).Return(int64(0), errors.New("relation missing"))
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), gomock.Not(domain.VIC)).Return(int64(5), nil).Times(5)

	snapshot, err := s.service.Snapshot(ctx)

	s.Require().NoError(err)
	s.Len(snapshot, len(domain.Jurisdictions))
	s.Equal(int64(0), snapshot[domain.VIC])
	s.Equal(int64(5), snapshot[domain.WA])
	s.Equal(int64(5), snapshot[domain.TAS])
}

func (s *StatsServiceTestSuite) TestSnapshot_EveryCountFails() {
	ctx := context.Background()

	s.counter.EXPECT().Connect(ctx).Return(nil)
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout")).Times(6)

	snapshot, err := s.service.Snapshot(ctx)

	s.Require().NoError(err)
	for _, j := range domain.Jurisdictions {
		v, ok := snapshot[j]
		s.True(ok, "missing %s", j)
		s.Equal(int64(0), v)
	}
}

func (s *StatsServiceTestSuite) TestSnapshot_NegativeCountClamped() {
	ctx := context.Background()

	s.counter.EXPECT().Connect(ctx).Return(nil)
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), domain.NT).Return(int64(-1), nil)
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), gomock.Not(domain.NT)).Return(int64(1), nil).Times(5)

	snapshot, err := s.service.Snapshot(ctx)

	s.Require().NoError(err)
	s.Equal(int64(0), snapshot[domain.NT])
}

func (s *StatsServiceTestSuite) TestSnapshot_ConnectFailure() {
	ctx := context.Background()

	s.counter.EXPECT().Connect(ctx).Return(errors.New("connection refused"))

	snapshot, err := s.service.Snapshot(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "connect datastore")
	s.Nil(snapshot)
}

func (s *StatsServiceTestSuite) TestSnapshot_Repeatable() {
	ctx := context.Background()

	s.counter.EXPECT().Connect(ctx).Return(nil).Times(2)
	s.counter.EXPECT().CountByJurisdiction(gomock.Any(), gomock.Any()).Return(int64(4), nil).Times(12)

	first, err := s.service.Snapshot(ctx)
	s.Require().NoError(err)
	second, err := s.service.Snapshot(ctx)
	s.Require().NoError(err)

	s.Equal(first, second)
}
