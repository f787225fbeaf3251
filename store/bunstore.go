package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-resource-client/model"
)

// resourceRow is the relational shape of a resource. The data and metadata
// maps are stored as JSON text columns.
type resourceRow struct {
	bun.BaseModel `bun:"table:resources,alias:r"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name,notnull"`
	Type        string    `bun:"type,notnull"`
	Description string    `bun:"description"`
	Data        string    `bun:"data"`
	Metadata    string    `bun:"metadata"`
	OwnerID     string    `bun:"owner_id"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

var _ Repository[model.Resource] = (*BunStore)(nil)

// BunStore persists resource snapshots in SQLite through bun. It backs the
// CLI sync command, which mirrors the upstream list into a local database.
type BunStore struct {
	db *bun.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// resources table exists. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*BunStore, error) {
	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, connectionErr("open "+path, err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	s := &BunStore{db: db}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *BunStore) Close() error {
	return s.db.Close()
}

func (s *BunStore) init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*resourceRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return queryErr("create resources table", err)
	}
	return nil
}

// Save upserts a resource keyed by its ID.
func (s *BunStore) Save(ctx context.Context, resource model.Resource) error {
	row, err := toRow(resource)
	if err != nil {
		return err
	}

	_, err = s.db.NewInsert().
		Model(&row).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("type = EXCLUDED.type").
		Set("description = EXCLUDED.description").
		Set("data = EXCLUDED.data").
		Set("metadata = EXCLUDED.metadata").
		Set("owner_id = EXCLUDED.owner_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return queryErr("save resource "+resource.ID, err)
	}
	return nil
}

// SaveAll upserts every resource in a single transaction.
func (s *BunStore) SaveAll(ctx context.Context, resources []model.Resource) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, resource := range resources {
			row, err := toRow(resource)
			if err != nil {
				return err
			}
			_, err = tx.NewInsert().
				Model(&row).
				On("CONFLICT (id) DO UPDATE").
				Set("name = EXCLUDED.name").
				Set("type = EXCLUDED.type").
				Set("description = EXCLUDED.description").
				Set("data = EXCLUDED.data").
				Set("metadata = EXCLUDED.metadata").
				Set("owner_id = EXCLUDED.owner_id").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return queryErr("save resource "+resource.ID, err)
			}
		}
		return nil
	})
}

// FindByID returns the stored resource with the given ID.
func (s *BunStore) FindByID(ctx context.Context, id string) (model.Resource, error) {
	var row resourceRow
	err := s.db.NewSelect().
		Model(&row).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Resource{}, notFound(id)
	}
	if err != nil {
		return model.Resource{}, queryErr("find resource "+id, err)
	}
	return fromRow(row)
}

// Delete removes the stored resource with the given ID.
func (s *BunStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.NewDelete().
		Model((*resourceRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return queryErr("delete resource "+id, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return notFound(id)
	}
	return nil
}

// FindAll returns every stored resource ordered by name.
func (s *BunStore) FindAll(ctx context.Context) ([]model.Resource, error) {
	var rows []resourceRow
	err := s.db.NewSelect().
		Model(&rows).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, queryErr("list resources", err)
	}

	out := make([]model.Resource, 0, len(rows))
	for _, row := range rows {
		resource, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, resource)
	}
	return out, nil
}

// Count returns the number of stored resources.
func (s *BunStore) Count(ctx context.Context) (int, error) {
	count, err := s.db.NewSelect().
		Model((*resourceRow)(nil)).
		Count(ctx)
	if err != nil {
		return 0, queryErr("count resources", err)
	}
	return count, nil
}

func toRow(resource model.Resource) (resourceRow, error) {
	data, err := json.Marshal(resource.Data.Data)
	if err != nil {
		return resourceRow{}, queryErr("encode resource data", err)
	}
	metadata, err := json.Marshal(resource.Data.Metadata)
	if err != nil {
		return resourceRow{}, queryErr("encode resource metadata", err)
	}

	return resourceRow{
		ID:          resource.ID,
		Name:        resource.Data.Name,
		Type:        resource.Data.Type.String(),
		Description: resource.Data.Description,
		Data:        string(data),
		Metadata:    string(metadata),
		OwnerID:     resource.OwnerID,
		CreatedAt:   resource.CreatedAt,
		UpdatedAt:   resource.UpdatedAt,
	}, nil
}

func fromRow(row resourceRow) (model.Resource, error) {
	var data map[string]string
	if row.Data != "" {
		if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
			return model.Resource{}, queryErr("decode resource data", err)
		}
	}
	var metadata map[string]string
	if row.Metadata != "" {
		if err := json.Unmarshal([]byte(row.Metadata), &metadata); err != nil {
			return model.Resource{}, queryErr("decode resource metadata", err)
		}
	}

	return model.Resource{
		ID: row.ID,
		Data: model.ResourceData{
			Name:        row.Name,
			Type:        model.ResourceType(row.Type),
			Description: row.Description,
			Data:        data,
			Metadata:    metadata,
		},
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
