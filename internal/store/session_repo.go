package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"
)

const (
	sessionsTable = "sessions"

	colID       = "id"
	colPosition = "position"
	colSubject  = "subject"
	colDate     = "date"
	colStart    = "start_time"
	colEnd      = "end_time"
	colPriority = "priority"
	colStatus   = "status"
)

// insertBatchSize keeps each INSERT well below SQLite's bound-variable limit.
const insertBatchSize = 500

// sessionRepo implements SessionRepo with ent's SQL builder.
type sessionRepo struct {
	drv *entsql.Driver
}

func (r *sessionRepo) Load(ctx context.Context) ([]SessionRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(colID, colSubject, colDate, colStart, colEnd, colPriority, colStatus).
		From(b.Table(sessionsTable)).
		OrderBy(colPosition).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	records := []SessionRecord{}
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.Subject, &rec.Date, &rec.Start, &rec.End, &rec.Priority, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return records, nil
}

func (r *sessionRepo) Save(ctx context.Context, records []SessionRecord) (err error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Delete(sessionsTable).Query()
	if err = tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}

	for bi, batch := range lo.Chunk(records, insertBatchSize) {
		ins := b.Insert(sessionsTable).
			Columns(colID, colPosition, colSubject, colDate, colStart, colEnd, colPriority, colStatus)
		for i, rec := range batch {
			ins.Values(rec.ID, bi*insertBatchSize+i, rec.Subject, rec.Date, rec.Start, rec.End, rec.Priority, rec.Status)
		}
		query, args = ins.Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("insert sessions: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit sessions: %w", err)
	}
	return nil
}
