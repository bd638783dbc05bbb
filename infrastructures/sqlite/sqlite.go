package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/model/history"
	"github.com/sobadon/ts20/domain/repository"
	"github.com/sobadon/ts20/internal/errutil"
)

type fetchSqlite struct {
	UUID      string    `db:"uuid"`
	Date      string    `db:"date"`
	SourceURL string    `db:"source_url"`
	Path      string    `db:"path"`
	SizeBytes int64     `db:"size_bytes"`
	FetchedAt time.Time `db:"fetched_at"`
}

func fetchSqliteToModelFetch(fetchSqlite fetchSqlite) (history.Fetch, error) {
	d, err := date.Parse(fetchSqlite.Date)
	if err != nil {
		return history.Fetch{}, errors.Wrap(errutil.ErrDatabaseScan, err.Error())
	}

	return history.Fetch{
		UUID:      fetchSqlite.UUID,
		Date:      d,
		SourceURL: fetchSqlite.SourceURL,
		Path:      fetchSqlite.Path,
		SizeBytes: fetchSqlite.SizeBytes,
		FetchedAt: fetchSqlite.FetchedAt,
	}, nil
}

func modelFetchToFetchSqlite(fetch history.Fetch) fetchSqlite {
	return fetchSqlite{
		UUID:      fetch.UUID,
		Date:      fetch.Date.Format(),
		SourceURL: fetch.SourceURL,
		Path:      fetch.Path,
		SizeBytes: fetch.SizeBytes,
		FetchedAt: fetch.FetchedAt,
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// テーブル作成
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists fetches (
		uuid text primary key,
		date text not null,
		source_url text not null,
		path text not null,
		size_bytes integer not null,
		fetched_at timestamp not null,
		created_at timestamp not null default (datetime('now', 'localtime'))
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type client struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) repository.FetchHistory {
	return &client{
		DB: db,
	}
}

func (c *client) Save(ctx context.Context, fetch history.Fetch) error {
	fetchSqlite := modelFetchToFetchSqlite(fetch)
	_, err := c.DB.NamedExecContext(ctx,
		`insert into fetches (uuid, date, source_url, path, size_bytes, fetched_at)
		values
		(:uuid, :date, :source_url, :path, :size_bytes, :fetched_at)`,
		fetchSqlite)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

func (c *client) LoadRecent(ctx context.Context, limit int) ([]history.Fetch, error) {
	var fetchesSqlite []fetchSqlite
	err := c.DB.SelectContext(ctx, &fetchesSqlite,
		`select uuid, date, source_url, path, size_bytes, fetched_at from fetches order by fetched_at desc limit ?`, limit)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var fetches []history.Fetch
	for _, fetchSqlite := range fetchesSqlite {
		fetch, err := fetchSqliteToModelFetch(fetchSqlite)
		if err != nil {
			return nil, err
		}
		fetches = append(fetches, fetch)
	}

	return fetches, nil
}
