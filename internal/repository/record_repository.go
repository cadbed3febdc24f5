package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/record"

	"github.com/google/uuid"
)

// PostgresRecordRepository stores documents in a single records table,
// one row per document, with a generated tsvector column backing the
// relevance-ordered Search.
type PostgresRecordRepository struct {
	db database.DB
}

func NewPostgresRecordRepository(db database.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

func (r *PostgresRecordRepository) Create(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, fmt.Errorf("empty collection")
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO records (id, collection, doc) VALUES ($1, $2, $3::jsonb)`,
		uuid.New(), collection, b,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *PostgresRecordRepository) Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	return r.query(ctx, collection, filter, 0)
}

func (r *PostgresRecordRepository) First(ctx context.Context, collection string, filter record.Filter) (record.Record, error) {
	docs, err := r.query(ctx, collection, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, record.ErrNotFound
	}
	return docs[0], nil
}

func (r *PostgresRecordRepository) Search(ctx context.Context, collection string, query string) ([]record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, fmt.Errorf("empty collection")
	}

	tsq := orTsQuery(query)
	if tsq == "" {
		return []record.Record{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT doc
		 FROM records
		 WHERE collection = $1
		   AND search_vec @@ to_tsquery('english', $2)
		 ORDER BY ts_rank(search_vec, to_tsquery('english', $2)) DESC, created_at ASC`,
		collection, tsq,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocs(rows)
}

func (r *PostgresRecordRepository) Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return 0, fmt.Errorf("empty collection")
	}
	if len(changes) == 0 {
		return 0, fmt.Errorf("empty changes")
	}

	fb, err := json.Marshal(nonNilFilter(filter))
	if err != nil {
		return 0, err
	}
	cb, err := json.Marshal(changes)
	if err != nil {
		return 0, err
	}

	return r.db.Exec(ctx,
		`UPDATE records
		 SET doc = doc || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND doc @> $2::jsonb`,
		collection, fb, cb,
	)
}

func (r *PostgresRecordRepository) Delete(ctx context.Context, collection string, filter record.Filter) (int64, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return 0, fmt.Errorf("empty collection")
	}

	fb, err := json.Marshal(nonNilFilter(filter))
	if err != nil {
		return 0, err
	}

	return r.db.Exec(ctx,
		`DELETE FROM records WHERE collection = $1 AND doc @> $2::jsonb`,
		collection, fb,
	)
}

func (r *PostgresRecordRepository) Collections(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT collection, COUNT(*) FROM records GROUP BY collection ORDER BY collection`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		out[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecordRepository) query(ctx context.Context, collection string, filter record.Filter, limit int) ([]record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, fmt.Errorf("empty collection")
	}

	fb, err := json.Marshal(nonNilFilter(filter))
	if err != nil {
		return nil, err
	}

	q := `SELECT doc
	      FROM records
	      WHERE collection = $1 AND doc @> $2::jsonb
	      ORDER BY created_at ASC`
	args := []any{collection, fb}
	if limit > 0 {
		q += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocs(rows)
}

func scanDocs(rows database.Rows) ([]record.Record, error) {
	out := make([]record.Record, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc record.Record
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNilFilter(f record.Filter) record.Filter {
	if f == nil {
		return record.Filter{}
	}
	return f
}

// orTsQuery turns free text into an OR'ed tsquery so that multi-term
// subjects like "Web: HTML, CSS, JavaScript" match documents sharing
// any term. Tokens are stripped to alphanumerics to keep the query
// syntactically valid.
func orTsQuery(query string) string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	terms := make([]string, 0, len(fields))
	seen := map[string]struct{}{}
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return strings.Join(terms, " | ")
}
