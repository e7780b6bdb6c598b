package archive

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

// Round is one archived council round. The archive is an append-only
// audit trail: rows are written after a round completes and never read
// back into the running council.
type Round struct {
	bun.BaseModel `bun:"table:council_rounds,alias:cr"`

	ID           int64             `bun:"id,pk,autoincrement"`
	Question     string            `bun:"question,notnull"`
	Winner       string            `bun:"winner,notnull"`
	WinnerAnswer string            `bun:"winner_answer,notnull"`
	Answers      map[string]string `bun:"answers,type:jsonb"`
	AnswerCount  int               `bun:"answer_count,notnull"`
	CreatedAt    time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type Config struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

// Store writes round transcripts to Postgres through bun.
type Store struct {
	db      *bun.DB
	timeout time.Duration
}

var _ contractx.Archive = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("archive dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &Store{db: db, timeout: timeout}, nil
}

// Init creates the rounds table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*Round)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) Record(ctx context.Context, question string, result contractx.RoundResult) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := newRound(question, result)
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func newRound(question string, result contractx.RoundResult) *Round {
	return &Round{
		Question:     question,
		Winner:       result.WinnerName,
		WinnerAnswer: result.WinnerAnswer,
		Answers:      result.AnswerMap(),
		AnswerCount:  len(result.Answers),
	}
}
