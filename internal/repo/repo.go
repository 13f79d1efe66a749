// Package repo locates and creates seaside catalogs on disk.
//
// A catalog lives in a .seaside directory holding one or more SQLite
// databases. Discovery walks up from the working directory until a .seaside
// directory containing the requested database is found, the same way git
// finds its repository. Named databases let one project keep separate
// catalogs, for example one per build or per plugin family.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
)

const (
	// Dir is the directory name for a seaside catalog.
	Dir = ".seaside"
	// DBFile is the default database filename.
	DBFile = "seaside.db"

	dbPrefix = "seaside-"
)

// ErrNotInitialised is returned when no catalog is found.
var ErrNotInitialised = errors.New("seaside not initialised (run 'seaside init')")

// DBFileName maps a database name to its filename.
// "" gives seaside.db, "docs" gives seaside-docs.db and a name that already
// ends in .db is returned unchanged.
func DBFileName(name string) string {
	switch {
	case name == "":
		return DBFile
	case strings.HasSuffix(name, ".db"):
		return name
	default:
		return dbPrefix + name + ".db"
	}
}

// dbName is the inverse of DBFileName for files found in a catalog directory.
func dbName(file string) (string, bool) {
	if file == DBFile {
		return "", true
	}
	if !strings.HasPrefix(file, dbPrefix) || !strings.HasSuffix(file, ".db") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(file, dbPrefix), ".db"), true
}

// Init creates a catalog database under dir (the working directory when
// empty). An existing database is only replaced when force is set. With local
// the database is listed in .seaside/.gitignore so it stays out of version
// control. Configuration is left alone; "seaside config" manages it.
func Init(force bool, db string, local bool, dir string) error {
	if dir == "" {
		dir = "."
	}
	root := filepath.Join(dir, Dir)
	dbPath := filepath.Join(root, DBFileName(db))

	if _, err := os.Stat(dbPath); err == nil {
		if !force {
			return fmt.Errorf("database %s already exists (use --force to reinitialise)", DBFileName(db))
		}
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
		}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	// Written once; later inits for extra databases keep local markers intact.
	gitignore := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) {
		s := `# seaside - local config and database journals
# Database files (*.db) hold the catalog and should be committed
config.yaml
*.db-wal
*.db-shm
`
		if err := os.WriteFile(gitignore, []byte(s), 0644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}

	if local {
		if err := IgnoreDB(db, root); err != nil {
			return fmt.Errorf("ignore database: %w", err)
		}
	}
	return nil
}

// Discover walks up from the working directory looking for the named
// database and returns its full path.
func Discover(db string) (string, error) {
	file := DBFileName(db)
	var found string
	err := walkUp(func(dir string) bool {
		p := filepath.Join(dir, Dir, file)
		if _, err := os.Stat(p); err == nil {
			found = p
			return true
		}
		return false
	})
	return found, err
}

// Locate returns the named database below dir/.seaside, or discovers it
// when dir is empty.
func Locate(db, dir string) (string, error) {
	if dir == "" {
		return Discover(db)
	}
	p := filepath.Join(dir, Dir, DBFileName(db))
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotInitialised, p)
	}
	return p, nil
}

// DiscoverDir walks up from the working directory and returns the first
// .seaside directory found.
func DiscoverDir() (string, error) {
	var found string
	err := walkUp(func(dir string) bool {
		p := filepath.Join(dir, Dir)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			found = p
			return true
		}
		return false
	})
	return found, err
}

// walkUp calls match for the working directory and each parent until match
// reports true. ErrNotInitialised is returned at the filesystem root.
func walkUp(match func(dir string) bool) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	for {
		if match(dir) {
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ErrNotInitialised
		}
		dir = parent
	}
}

// DBInfo describes one database in a catalog directory.
type DBInfo struct {
	Name  string // "" for the default database
	File  string
	Path  string
	Local bool // listed in .gitignore
}

// ListDBs returns the databases in dir, or in the discovered .seaside
// directory when dir is empty.
func ListDBs(dir string) ([]DBInfo, error) {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return nil, err
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Dir, err)
	}

	var dbs []DBInfo
	for _, f := range files {
		name, ok := dbName(f.Name())
		if !ok || f.IsDir() {
			continue
		}
		// An unreadable .gitignore is treated as shared.
		ignored, _ := IsIgnored(name, dir)
		dbs = append(dbs, DBInfo{
			Name:  name,
			File:  f.Name(),
			Path:  filepath.Join(dir, f.Name()),
			Local: ignored,
		})
	}
	return dbs, nil
}
