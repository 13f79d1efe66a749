// Package catalog implements service.Service on top of the SQLite entry
// store. It adds what the store leaves out: repository discovery, the
// configured path limits, the parent-first rule for new entries and
// assembly of stored entries into report trees.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/repo"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// DefaultAuthor is recorded when a write carries no author.
const DefaultAuthor = "unknown"

var (
	// ErrParentMissing is service.ErrParentMissing, kept here for callers
	// that only import catalog.
	ErrParentMissing = service.ErrParentMissing
	// ErrHasChildren is returned when removing an entry that still has children.
	ErrHasChildren = errors.New("entry has children")
	// ErrTooDeep is returned when a path exceeds limits.max_depth.
	ErrTooDeep = errors.New("path too deep")
	// ErrPathTooLong is returned when a path exceeds limits.max_path.
	ErrPathTooLong = errors.New("path too long")
)

var _ service.Service = (*Service)(nil)

// Service provides catalog operations backed by a Store.
type Service struct {
	store    store.Store
	dbPath   string
	maxDepth int
	maxPath  int
}

// New discovers the named database by walking up from the working directory
// and opens it. Returns repo.ErrNotInitialised when none is found.
func New(db string) (*Service, error) {
	return NewIn(db, "")
}

// NewIn opens the named database in dir/.seaside without discovery.
// An empty dir behaves like New.
func NewIn(db, dir string) (*Service, error) {
	dbPath, err := repo.Locate(db, dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	return &Service{
		store:    s,
		dbPath:   dbPath,
		maxDepth: cfg.MaxDepth(),
		maxPath:  cfg.MaxPath(),
	}, nil
}

// NewWithStore wraps an already open store with explicit limits.
// Zero limits fall back to the configuration defaults.
func NewWithStore(s store.Store, dbPath string, maxDepth, maxPath int) *Service {
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	if maxPath <= 0 {
		maxPath = config.DefaultMaxPath
	}
	return &Service{store: s, dbPath: dbPath, maxDepth: maxDepth, maxPath: maxPath}
}

// Init creates a new catalog database. See repo.Init.
func Init(force bool, db string, local bool, dir string) error {
	return repo.Init(force, db, local, dir)
}

// Close checkpoints the WAL and closes the database connection.
func (s *Service) Close() error {
	if err := s.store.Checkpoint(context.Background()); err != nil {
		log.Event("service:close", "checkpoint").Write(err)
	}
	return s.store.Close()
}

// ReloadConfig picks up limit changes made after the service was opened.
func (s *Service) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.maxDepth = cfg.MaxDepth()
	s.maxPath = cfg.MaxPath()
	return nil
}

// Validate checks p against the configured limits.
func (s *Service) Validate(p tree.Path) error {
	if p.IsZero() {
		return tree.ErrMalformedPath
	}
	if p.Len() > s.maxDepth {
		return fmt.Errorf("%w: %d segments (max %d)", ErrTooDeep, p.Len(), s.maxDepth)
	}
	if n := len(p.String()); n > s.maxPath {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrPathTooLong, n, s.maxPath)
	}
	return nil
}

// Dir returns the .seaside directory holding the database.
func (s *Service) Dir() string {
	return filepath.Dir(s.dbPath)
}

// DBPath returns the path to the database file.
func (s *Service) DBPath() string {
	return s.dbPath
}

// DB returns the underlying database connection for extensions.
func (s *Service) DB() *sql.DB {
	return s.store.DB()
}

// Checkpoint flushes the WAL to the main database file.
func (s *Service) Checkpoint(ctx context.Context) error {
	return s.store.Checkpoint(ctx)
}

// Reclaimable returns the size of the database freelist in bytes.
func (s *Service) Reclaimable(ctx context.Context) (int64, error) {
	pages, size, err := s.store.FreePages(ctx)
	if err != nil {
		return 0, err
	}
	return pages * size, nil
}

// Vacuum compacts the database file.
func (s *Service) Vacuum(ctx context.Context) error {
	return s.store.Vacuum(ctx)
}
