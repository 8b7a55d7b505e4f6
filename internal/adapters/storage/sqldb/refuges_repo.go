package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"spa-transferts/internal/domain/refuges"
)

type RefugesRepo struct {
	db *sqlx.DB
}

func NewRefugesRepo(db *sqlx.DB) *RefugesRepo {
	return &RefugesRepo{db: db}
}

type refugeRow struct {
	ID          int64   `db:"id"`
	Nom         string  `db:"nom"`
	Responsable *string `db:"responsable"`
	Telephone   *string `db:"telephone"`
	Adresse     *string `db:"adresse"`
}

func (w refugeRow) toDomain() refuges.Refuge {
	return refuges.Refuge{
		ID:          w.ID,
		Nom:         w.Nom,
		Responsable: w.Responsable,
		Telephone:   w.Telephone,
		Adresse:     w.Adresse,
	}
}

func (r *RefugesRepo) List(ctx context.Context) ([]refuges.Refuge, error) {
	var rows []refugeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, nom, responsable, telephone, adresse
		FROM refuges
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	out := make([]refuges.Refuge, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (r *RefugesRepo) GetByID(ctx context.Context, id int64) (refuges.Refuge, error) {
	var w refugeRow
	err := r.db.GetContext(ctx, &w, r.db.Rebind(`
		SELECT id, nom, responsable, telephone, adresse
		FROM refuges
		WHERE id = ?
	`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return refuges.Refuge{}, refuges.ErrNotFound
		}
		return refuges.Refuge{}, err
	}
	return w.toDomain(), nil
}

func (r *RefugesRepo) Create(ctx context.Context, in refuges.Refuge) (refuges.Refuge, error) {
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO refuges (nom, responsable, telephone, adresse)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), in.Nom, in.Responsable, in.Telephone, in.Adresse).Scan(&in.ID)
	if err != nil {
		return refuges.Refuge{}, err
	}
	return in, nil
}

func (r *RefugesRepo) Update(ctx context.Context, in refuges.Refuge) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE refuges
		SET nom = ?, responsable = ?, telephone = ?, adresse = ?
		WHERE id = ?
	`), in.Nom, in.Responsable, in.Telephone, in.Adresse, in.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return refuges.ErrNotFound
	}
	return nil
}

func (r *RefugesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM refuges WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return refuges.ErrNotFound
	}
	return nil
}
