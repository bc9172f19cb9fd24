//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tenement_hub/internal/domain"
	"tenement_hub/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	client    *Client
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_tenements.up.sql"),
			filepath.Join(migrationsPath, "002_create_sync_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
	s.client = NewClientFromDB(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tenement_holders")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM holders")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tenements")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func newTenement(j domain.Jurisdiction, externalID string, lastModified time.Time) *domain.Tenement {
	return &domain.Tenement{
		Jurisdiction: j,
		ExternalID:   externalID,
		Type:         "Exploration Licence",
		Status:       "Live",
		LastModified: lastModified,
	}
}

func (s *PostgresIntegrationSuite) TestClient_LazyConnect() {
	connStr, err := s.container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	client := NewClient(connStr, 2)
	defer client.Close()

	store := NewTenementStore(client)
	s.NoError(store.Connect(s.ctx))

	count, err := store.CountByJurisdiction(s.ctx, domain.WA)
	s.NoError(err)
	s.Equal(int64(0), count)
}

func (s *PostgresIntegrationSuite) TestClient_ConnectFailure() {
	client := NewClient("host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1", 1)

	err := NewTenementStore(client).Connect(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "connect to database")
}

func (s *PostgresIntegrationSuite) TestTenementStore_Upsert_Insert() {
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	tenement := newTenement(domain.WA, "E 45/1234", now)
	tenement.AreaHectares = utils.Ptr(42.5)
	granted := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	tenement.GrantedAt = &granted

	id, err := store.Upsert(s.ctx, tenement)
	s.NoError(err)
	s.Greater(id, int64(0))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tenements WHERE external_id = $1 AND jurisdiction = $2", "E 45/1234", "WA")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTenementStore_Upsert_UpdateWhenNewer() {
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	tenement := newTenement(domain.WA, "M 70/1", now.Add(-time.Hour))
	id1, err := store.Upsert(s.ctx, tenement)
	s.NoError(err)

	tenement.Status = "Surrendered"
	tenement.LastModified = now
	id2, err := store.Upsert(s.ctx, tenement)
	s.NoError(err)
	s.Equal(id1, id2)

	var status string
	err = s.db.GetContext(s.ctx, &status, "SELECT status FROM tenements WHERE id = $1", id1)
	s.NoError(err)
	s.Equal("Surrendered", status)
}

func (s *PostgresIntegrationSuite) TestTenementStore_Upsert_SkipWhenOlder() {
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	tenement := newTenement(domain.WA, "M 70/1", now)
	id1, err := store.Upsert(s.ctx, tenement)
	s.NoError(err)

	tenement.Status = "Stale"
	tenement.LastModified = now.Add(-time.Hour)
	id2, err := store.Upsert(s.ctx, tenement)
	s.NoError(err)
	s.Equal(id1, id2)

	var status string
	err = s.db.GetContext(s.ctx, &status, "SELECT status FROM tenements WHERE id = $1", id1)
	s.NoError(err)
	s.Equal("Live", status)
}

func (s *PostgresIntegrationSuite) TestTenementStore_GetExisting_ScopedByJurisdiction() {
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.Upsert(s.ctx, newTenement(domain.WA, "EL 1", now))
	s.NoError(err)
	_, err = store.Upsert(s.ctx, newTenement(domain.NSW, "EL 1", now))
	s.NoError(err)
	_, err = store.Upsert(s.ctx, newTenement(domain.WA, "EL 2", now))
	s.NoError(err)

	result, err := store.GetExistingByExternalIDs(s.ctx, domain.WA, []string{"EL 1", "EL 2", "EL 999"})
	s.NoError(err)
	s.Len(result, 2)
	s.Contains(result, "EL 1")
	s.Contains(result, "EL 2")

	result, err = store.GetExistingByExternalIDs(s.ctx, domain.VIC, []string{"EL 1"})
	s.NoError(err)
	s.Len(result, 0)
}

func (s *PostgresIntegrationSuite) TestTenementStore_CountByJurisdiction() {
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Upsert(s.ctx, newTenement(domain.QLD, id, now))
		s.NoError(err)
	}
	_, err := store.Upsert(s.ctx, newTenement(domain.TAS, "a", now))
	s.NoError(err)

	qld, err := store.CountByJurisdiction(s.ctx, domain.QLD)
	s.NoError(err)
	s.Equal(int64(3), qld)

	tas, err := store.CountByJurisdiction(s.ctx, domain.TAS)
	s.NoError(err)
	s.Equal(int64(1), tas)

	nt, err := store.CountByJurisdiction(s.ctx, domain.NT)
	s.NoError(err)
	s.Equal(int64(0), nt)
}

func (s *PostgresIntegrationSuite) TestTenementStore_ListByJurisdiction() {
	tenements := NewTenementStore(s.client)
	holders := NewHolderStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	oldID, err := tenements.Upsert(s.ctx, newTenement(domain.VIC, "old", now.Add(-time.Hour)))
	s.NoError(err)
	_, err = tenements.Upsert(s.ctx, newTenement(domain.VIC, "new", now))
	s.NoError(err)
	_, err = tenements.Upsert(s.ctx, newTenement(domain.WA, "other", now))
	s.NoError(err)

	s.NoError(holders.UpsertBatch(s.ctx, []domain.Holder{{ID: "H1", Name: "Holder One"}}))
	s.NoError(holders.LinkToTenement(s.ctx, oldID, []string{"H1"}))

	list, err := tenements.ListByJurisdiction(s.ctx, domain.VIC, 10)
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal("new", list[0].ExternalID)
	s.Equal("old", list[1].ExternalID)
	s.Equal([]domain.Holder{{ID: "H1", Name: "Holder One"}}, list[1].Holders)

	limited, err := tenements.ListByJurisdiction(s.ctx, domain.VIC, 1)
	s.NoError(err)
	s.Len(limited, 1)
}

func (s *PostgresIntegrationSuite) TestHolderStore_UpsertBatch_DedupesAndUpdates() {
	store := NewHolderStore(s.client)

	err := store.UpsertBatch(s.ctx, []domain.Holder{
		{ID: "H1", Name: "old-name"},
		{ID: "H2", Name: "two"},
		{ID: "H1", Name: "new-name"},
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM holders")
	s.NoError(err)
	s.Equal(2, count)

	var name string
	err = s.db.GetContext(s.ctx, &name, "SELECT name FROM holders WHERE id = $1", "H1")
	s.NoError(err)
	s.Equal("new-name", name)
}

func (s *PostgresIntegrationSuite) TestHolderStore_LinkToTenement_ReplacesOld() {
	holderStore := NewHolderStore(s.client)
	tenementStore := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	tenementID, err := tenementStore.Upsert(s.ctx, newTenement(domain.WA, "E 1", now))
	s.NoError(err)

	err = holderStore.UpsertBatch(s.ctx, []domain.Holder{
		{ID: "H1", Name: "one"},
		{ID: "H2", Name: "two"},
		{ID: "H3", Name: "three"},
	})
	s.NoError(err)

	s.NoError(holderStore.LinkToTenement(s.ctx, tenementID, []string{"H1", "H2"}))
	s.NoError(holderStore.LinkToTenement(s.ctx, tenementID, []string{"H3"}))

	linked, err := holderStore.GetByTenementID(s.ctx, tenementID)
	s.NoError(err)
	s.Len(linked, 1)
	s.Equal("H3", linked[0].ID)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_GetNew() {
	store := NewSyncStateStore(s.client)

	state, err := store.Get(s.ctx, domain.NT)
	s.NoError(err)
	s.NotNil(state)
	s.Equal(domain.NT, state.Jurisdiction)
	s.True(state.LastSyncedAt.IsZero())
	s.Equal(int64(0), state.TotalImported)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateAndGet() {
	store := NewSyncStateStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	err := store.Update(s.ctx, &domain.SyncState{
		Jurisdiction:  domain.WA,
		LastSyncedAt:  now,
		TotalImported: 100,
	})
	s.NoError(err)

	err = store.Update(s.ctx, &domain.SyncState{
		Jurisdiction:  domain.WA,
		LastSyncedAt:  now,
		TotalImported: 150,
	})
	s.NoError(err)

	retrieved, err := store.Get(s.ctx, domain.WA)
	s.NoError(err)
	s.Equal(domain.WA, retrieved.Jurisdiction)
	s.Equal(int64(150), retrieved.TotalImported)
	s.WithinDuration(now, retrieved.LastSyncedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.client)
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Upsert(ctx, newTenement(domain.WA, "tx-commit", now))
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tenements WHERE external_id = $1", "tx-commit")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackCoversStores() {
	tm := NewTransactionManager(s.client)
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.Upsert(s.ctx, newTenement(domain.WA, "pre-existing", now))
	s.NoError(err)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.Upsert(ctx, newTenement(domain.WA, "rolled-back", now)); err != nil {
			return err
		}

		exec := GetExecutor(ctx, s.db)
		if _, err := exec.ExecContext(ctx, "UPDATE tenements SET status = 'changed' WHERE external_id = $1", "pre-existing"); err != nil {
			return err
		}

		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tenements WHERE external_id = $1", "rolled-back")
	s.NoError(err)
	s.Equal(0, count)

	var status string
	err = s.db.GetContext(s.ctx, &status, "SELECT status FROM tenements WHERE external_id = $1", "pre-existing")
	s.NoError(err)
	s.Equal("Live", status)
}

func (s *PostgresIntegrationSuite) TestTransaction_NestedJoinsOuter() {
	tm := NewTransactionManager(s.client)
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		outer := GetTxFromContext(ctx)
		err := tm.WithTransaction(ctx, func(inner context.Context) error {
			s.Same(outer, GetTxFromContext(inner))
			_, err := store.Upsert(inner, newTenement(domain.NT, "nested", now))
			return err
		})
		if err != nil {
			return err
		}
		return context.Canceled
	})
	s.ErrorIs(err, context.Canceled)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tenements WHERE external_id = $1", "nested")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_PanicRollsBack() {
	tm := NewTransactionManager(s.client)
	store := NewTenementStore(s.client)
	now := time.Now().Truncate(time.Microsecond)

	s.Panics(func() {
		_ = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
			if _, err := store.Upsert(ctx, newTenement(domain.WA, "panicked", now)); err != nil {
				return err
			}
			panic("boom")
		})
	})

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tenements WHERE external_id = $1", "panicked")
	s.NoError(err)
	s.Equal(0, count)
}
