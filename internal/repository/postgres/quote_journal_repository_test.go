package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/repository/postgres/testhelpers"
)

// QuoteJournalRepositoryTestSuite тестирует журнал котировок
type QuoteJournalRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.QuoteJournalRepository
	ctx    context.Context
}

func (s *QuoteJournalRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.repo = s.testDB.NewQuoteJournalRepositoryForTest()
}

func (s *QuoteJournalRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *QuoteJournalRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

// ============================================================================
// InsertBatch Tests
// ============================================================================

func (s *QuoteJournalRepositoryTestSuite) TestInsertBatch_Empty() {
	n, err := s.repo.InsertBatch(s.ctx, nil)
	s.NoError(err)
	s.Zero(n)
}

func (s *QuoteJournalRepositoryTestSuite) TestInsertBatch_Success() {
	events := []domain.QuoteIssuedEvent{
		testhelpers.NewEvent(domain.CityMoscow, domain.CitySaintPeterburg, domain.VehicleLight, 2, 38950),
		testhelpers.NewEvent(domain.CityMoscow, domain.CityNizhnyNovgorod, domain.VehicleHeavy, 1, 32900),
	}

	n, err := s.repo.InsertBatch(s.ctx, events)
	s.NoError(err)
	s.Equal(2, n)

	count, err := testhelpers.CountRows(s.testDB.DB, "quote_journal")
	s.NoError(err)
	s.Equal(2, count)
}

func (s *QuoteJournalRepositoryTestSuite) TestInsertBatch_DuplicatesIgnored() {
	event := testhelpers.NewEvent(domain.CityKazan, domain.CityPerm, domain.VehicleLight, 3, 40000)

	n, err := s.repo.InsertBatch(s.ctx, []domain.QuoteIssuedEvent{event})
	s.Require().NoError(err)
	s.Equal(1, n)

	// Повторная доставка того же события
	other := testhelpers.NewEvent(domain.CityKazan, domain.CityPerm, domain.VehicleLight, 1, 20000)
	n, err = s.repo.InsertBatch(s.ctx, []domain.QuoteIssuedEvent{event, other})
	s.Require().NoError(err)
	s.Equal(1, n)

	count, err := testhelpers.CountRows(s.testDB.DB, "quote_journal")
	s.NoError(err)
	s.Equal(2, count)
}

// ============================================================================
// GetStatistics Tests
// ============================================================================

func (s *QuoteJournalRepositoryTestSuite) TestGetStatistics_Empty() {
	stats, err := s.repo.GetStatistics(s.ctx, 5)
	s.NoError(err)
	s.Require().NotNil(stats)
	s.Zero(stats.TotalQuotes)
	s.Empty(stats.ByVehicle)
	s.Empty(stats.TopRoutes)
	s.Zero(stats.AverageTotalPrice)
	s.NotZero(stats.LastUpdated)
}

func (s *QuoteJournalRepositoryTestSuite) TestGetStatistics_Aggregates() {
	events := []domain.QuoteIssuedEvent{
		testhelpers.NewEvent(domain.CityMoscow, domain.CitySaintPeterburg, domain.VehicleLight, 2, 30000),
		testhelpers.NewEvent(domain.CityMoscow, domain.CitySaintPeterburg, domain.VehicleHeavy, 1, 40000),
		testhelpers.NewEvent(domain.CityMoscow, domain.CitySaintPeterburg, domain.VehicleLight, 1.5, 20000),
		testhelpers.NewEvent(domain.CityKazan, domain.CityPerm, domain.VehicleLight, 0.5, 10000),
	}
	_, err := s.repo.InsertBatch(s.ctx, events)
	s.Require().NoError(err)

	stats, err := s.repo.GetStatistics(s.ctx, 1)
	s.Require().NoError(err)

	s.Equal(4, stats.TotalQuotes)
	s.Equal(3, stats.ByVehicle[domain.VehicleLight])
	s.Equal(1, stats.ByVehicle[domain.VehicleHeavy])
	s.InDelta(25000.0, stats.AverageTotalPrice, 0.001)
	s.InDelta(5.0, stats.TotalVolumeM3, 0.001)

	s.Require().Len(stats.TopRoutes, 1)
	s.Equal(domain.CityMoscow, stats.TopRoutes[0].Origin)
	s.Equal(domain.CitySaintPeterburg, stats.TopRoutes[0].Destination)
	s.Equal(3, stats.TopRoutes[0].Count)
}

func TestQuoteJournalRepositorySuite(t *testing.T) {
	suite.Run(t, new(QuoteJournalRepositoryTestSuite))
}
