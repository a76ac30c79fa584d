package testhelpers

import (
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/repository/postgres"
)

// NewRouteRepositoryForTest - репозиторий расстояний поверх тестовой базы
func (tdb *TestDB) NewRouteRepositoryForTest() repository.RouteRepository {
	return postgres.NewRouteRepository(tdb.DB, tdb.Logger)
}

// NewQuoteJournalRepositoryForTest - репозиторий журнала поверх тестовой базы
func (tdb *TestDB) NewQuoteJournalRepositoryForTest() repository.QuoteJournalRepository {
	return postgres.NewQuoteJournalRepository(tdb.DB, tdb.Logger)
}
