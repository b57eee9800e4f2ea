package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	LabelRepository   LabelRepository
	IssueRepository   IssueRepository
	ProjectRepository ProjectRepository
	MemberRepository  MemberRepository
	UserRepository    UserRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		LabelRepository:   NewLabelRepository(db, log),
		IssueRepository:   NewIssueRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		MemberRepository:  NewMemberRepository(db, log),
		UserRepository:    NewUserRepository(db, log),
		db:                db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
