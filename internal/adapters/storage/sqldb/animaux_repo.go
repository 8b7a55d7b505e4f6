package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"spa-transferts/internal/domain/animaux"
)

type animalRow struct {
	ID       int64   `db:"id"`
	Nom      string  `db:"nom"`
	Age      *int64  `db:"age"`
	Race     *string `db:"race"`
	RefugeID *int64  `db:"refuge_id"`
}

func (w animalRow) toDomain() animaux.Chien {
	return animaux.Chien{
		ID:       w.ID,
		Nom:      w.Nom,
		Age:      w.Age,
		Race:     w.Race,
		RefugeID: w.RefugeID,
	}
}

// animalTable holds the SQL shared by the three families; only the
// table name differs. The table constant comes from this package, never
// from input.
type animalTable struct {
	db    *sqlx.DB
	table string
}

func (t animalTable) list(ctx context.Context) ([]animalRow, error) {
	var rows []animalRow
	err := t.db.SelectContext(ctx, &rows, fmt.Sprintf(`
		SELECT id, nom, age, race, refuge_id
		FROM %s
		ORDER BY id
	`, t.table))
	return rows, err
}

func (t animalTable) getByID(ctx context.Context, id int64) (animalRow, error) {
	var w animalRow
	err := t.db.GetContext(ctx, &w, t.db.Rebind(fmt.Sprintf(`
		SELECT id, nom, age, race, refuge_id
		FROM %s
		WHERE id = ?
	`, t.table)), id)
	if errors.Is(err, sql.ErrNoRows) {
		return animalRow{}, animaux.ErrNotFound
	}
	return w, err
}

func (t animalTable) create(ctx context.Context, c animaux.Chien) (int64, error) {
	var id int64
	err := t.db.QueryRowxContext(ctx, t.db.Rebind(fmt.Sprintf(`
		INSERT INTO %s (nom, age, race, refuge_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, t.table)), c.Nom, c.Age, c.Race, c.RefugeID).Scan(&id)
	return id, err
}

func (t animalTable) update(ctx context.Context, c animaux.Chien) error {
	res, err := t.db.ExecContext(ctx, t.db.Rebind(fmt.Sprintf(`
		UPDATE %s
		SET nom = ?, age = ?, race = ?, refuge_id = ?
		WHERE id = ?
	`, t.table)), c.Nom, c.Age, c.Race, c.RefugeID, c.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animaux.ErrNotFound
	}
	return nil
}

func (t animalTable) delete(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, t.db.Rebind(
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.table)), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animaux.ErrNotFound
	}
	return nil
}

// ---- chiens ----

type ChiensRepo struct {
	t animalTable
}

func NewChiensRepo(db *sqlx.DB) *ChiensRepo {
	return &ChiensRepo{t: animalTable{db: db, table: "chiens"}}
}

func (r *ChiensRepo) List(ctx context.Context) ([]animaux.Chien, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]animaux.Chien, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (r *ChiensRepo) GetByID(ctx context.Context, id int64) (animaux.Chien, error) {
	w, err := r.t.getByID(ctx, id)
	if err != nil {
		return animaux.Chien{}, err
	}
	return w.toDomain(), nil
}

func (r *ChiensRepo) Create(ctx context.Context, c animaux.Chien) (animaux.Chien, error) {
	id, err := r.t.create(ctx, c)
	if err != nil {
		return animaux.Chien{}, err
	}
	c.ID = id
	return c, nil
}

func (r *ChiensRepo) Update(ctx context.Context, c animaux.Chien) error {
	return r.t.update(ctx, c)
}

func (r *ChiensRepo) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// ---- chiens 12 mois ----

// Chien12Mois and Chat12Mois convert through animaux.Chien: the three
// structs are field-for-field identical, only the entity is distinct.

type Chiens12Repo struct {
	t animalTable
}

func NewChiens12Repo(db *sqlx.DB) *Chiens12Repo {
	return &Chiens12Repo{t: animalTable{db: db, table: "chien12mois"}}
}

func (r *Chiens12Repo) List(ctx context.Context) ([]animaux.Chien12Mois, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]animaux.Chien12Mois, 0, len(rows))
	for _, w := range rows {
		out = append(out, animaux.Chien12Mois(w.toDomain()))
	}
	return out, nil
}

func (r *Chiens12Repo) GetByID(ctx context.Context, id int64) (animaux.Chien12Mois, error) {
	w, err := r.t.getByID(ctx, id)
	if err != nil {
		return animaux.Chien12Mois{}, err
	}
	return animaux.Chien12Mois(w.toDomain()), nil
}

func (r *Chiens12Repo) Create(ctx context.Context, c animaux.Chien12Mois) (animaux.Chien12Mois, error) {
	id, err := r.t.create(ctx, animaux.Chien(c))
	if err != nil {
		return animaux.Chien12Mois{}, err
	}
	c.ID = id
	return c, nil
}

func (r *Chiens12Repo) Update(ctx context.Context, c animaux.Chien12Mois) error {
	return r.t.update(ctx, animaux.Chien(c))
}

func (r *Chiens12Repo) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// ---- chats 12 mois ----

type Chats12Repo struct {
	t animalTable
}

func NewChats12Repo(db *sqlx.DB) *Chats12Repo {
	return &Chats12Repo{t: animalTable{db: db, table: "chat12mois"}}
}

func (r *Chats12Repo) List(ctx context.Context) ([]animaux.Chat12Mois, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]animaux.Chat12Mois, 0, len(rows))
	for _, w := range rows {
		out = append(out, animaux.Chat12Mois(w.toDomain()))
	}
	return out, nil
}

func (r *Chats12Repo) GetByID(ctx context.Context, id int64) (animaux.Chat12Mois, error) {
	w, err := r.t.getByID(ctx, id)
	if err != nil {
		return animaux.Chat12Mois{}, err
	}
	return animaux.Chat12Mois(w.toDomain()), nil
}

func (r *Chats12Repo) Create(ctx context.Context, c animaux.Chat12Mois) (animaux.Chat12Mois, error) {
	id, err := r.t.create(ctx, animaux.Chien(c))
	if err != nil {
		return animaux.Chat12Mois{}, err
	}
	c.ID = id
	return c, nil
}

func (r *Chats12Repo) Update(ctx context.Context, c animaux.Chat12Mois) error {
	return r.t.update(ctx, animaux.Chien(c))
}

func (r *Chats12Repo) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
