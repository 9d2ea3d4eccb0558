package meta

import (
	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"os"
	"strings"
	"time"
	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

const tablePrefix = "sort_"

// Run is one recorded execution of a sort algorithm.
type Run struct {
	Id          int64     `xorm:"pk autoincr"`
	Algorithm   string    `xorm:"varchar(32) notnull index"`
	Length      int       `xorm:"notnull"`
	Input       []int     `xorm:"blob notnull"`
	Output      []int     `xorm:"blob notnull"`
	Comparisons int64     `xorm:"notnull"`
	Swaps       int64     `xorm:"notnull"`
	Elapsed     int64     `xorm:"notnull"` // nanoseconds
	Created     time.Time `xorm:"created"`
}

func (r *Run) Duration() time.Duration { return time.Duration(r.Elapsed) }

type Store struct {
	engine *xorm.Engine
}

// Open connects to the store described by a meta URL such as
// "mysql://user:pass@(127.0.0.1:3306)/sortdemo" or "sqlite3://runs.db" and
// creates its tables. An empty mysql password is taken from META_PASSWORD.
func Open(uri string) (*Store, error) {
	driver, dsn, err := parseURL(uri)
	if err != nil {
		return nil, err
	}

	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s engine", driver)
	}
	if err = engine.Ping(); err != nil {
		engine.Close()
		return nil, errors.Wrap(err, "ping meta")
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), tablePrefix))
	if err = engine.Sync2(new(Run)); err != nil {
		engine.Close()
		return nil, errors.Wrap(err, "sync tables")
	}
	return &Store{engine: engine}, nil
}

func parseURL(uri string) (string, string, error) {
	p := strings.Index(uri, "://")
	if p < 0 {
		return "", "", errors.Errorf("invalid meta url %q: missing scheme", uri)
	}
	driver, addr := uri[:p], uri[p+3:]
	switch driver {
	case "mysql":
		cfg, err := mysql.ParseDSN(addr)
		if err != nil {
			return "", "", errors.Wrap(err, "parse mysql dsn")
		}
		if cfg.Passwd == "" {
			cfg.Passwd = os.Getenv("META_PASSWORD")
		}
		cfg.ParseTime = true
		return driver, cfg.FormatDSN(), nil
	case "sqlite3":
		if addr == "" {
			return "", "", errors.New("sqlite3 meta url needs a file path")
		}
		return driver, addr, nil
	default:
		return "", "", errors.Errorf("unsupported meta driver %q", driver)
	}
}

func (s *Store) Save(r *Run) error {
	if r.Length == 0 {
		r.Length = len(r.Input)
	}
	if _, err := s.engine.Insert(r); err != nil {
		return errors.Wrapf(err, "save %s run", r.Algorithm)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A limit <= 0 returns all.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	sess := s.engine.Desc("id")
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	if err := sess.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}
