package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"spa-transferts/internal/domain/animaux"
	"spa-transferts/internal/domain/transferts"
)

type TransfertsRepo struct {
	db *sqlx.DB
}

func NewTransfertsRepo(db *sqlx.DB) *TransfertsRepo {
	return &TransfertsRepo{db: db}
}

type transfertRow struct {
	ID              int64          `db:"id"`
	AnimalType      sql.NullString `db:"animal_type"`
	AnimalID        *int64         `db:"animal_id"`
	ChienID         *int64         `db:"chien_id"`
	RefugeDepartID  int64          `db:"refuge_depart_id"`
	RefugeArriveeID int64          `db:"refuge_arrivee_id"`
	DateTransfert   sql.NullString `db:"date_transfert"`
	Statut          *string        `db:"statut"`
}

// toDomain tolerates mixed-generation rows: a missing animal_type stays
// nil, an unparseable legacy date stays nil. Listing must never fail on
// old rows.
func (w transfertRow) toDomain() transferts.Transfert {
	t := transferts.Transfert{
		ID:              w.ID,
		AnimalID:        w.AnimalID,
		ChienID:         w.ChienID,
		RefugeDepartID:  w.RefugeDepartID,
		RefugeArriveeID: w.RefugeArriveeID,
		Statut:          w.Statut,
	}
	if w.AnimalType.Valid && w.AnimalType.String != "" {
		typ := animaux.AnimalType(w.AnimalType.String)
		t.AnimalType = &typ
	}
	if w.DateTransfert.Valid && w.DateTransfert.String != "" {
		if d, err := time.Parse("2006-01-02", w.DateTransfert.String); err == nil {
			t.DateTransfert = &d
		}
	}
	return t
}

func toAnimalTypeArg(t *animaux.AnimalType) any {
	if t == nil {
		return nil
	}
	return string(*t)
}

func toDateArg(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format("2006-01-02")
}

func (r *TransfertsRepo) List(ctx context.Context) ([]transferts.Transfert, error) {
	var rows []transfertRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, animal_type, animal_id, chien_id,
		       refuge_depart_id, refuge_arrivee_id, date_transfert, statut
		FROM transferts
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	out := make([]transferts.Transfert, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (r *TransfertsRepo) GetByID(ctx context.Context, id int64) (transferts.Transfert, error) {
	var w transfertRow
	err := r.db.GetContext(ctx, &w, r.db.Rebind(`
		SELECT id, animal_type, animal_id, chien_id,
		       refuge_depart_id, refuge_arrivee_id, date_transfert, statut
		FROM transferts
		WHERE id = ?
	`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transferts.Transfert{}, transferts.ErrNotFound
		}
		return transferts.Transfert{}, err
	}
	return w.toDomain(), nil
}

func (r *TransfertsRepo) Create(ctx context.Context, in transferts.Transfert) (transferts.Transfert, error) {
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO transferts (animal_type, animal_id, chien_id,
		                        refuge_depart_id, refuge_arrivee_id, date_transfert, statut)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`),
		toAnimalTypeArg(in.AnimalType),
		in.AnimalID,
		in.ChienID,
		in.RefugeDepartID,
		in.RefugeArriveeID,
		toDateArg(in.DateTransfert),
		in.Statut,
	).Scan(&in.ID)
	if err != nil {
		return transferts.Transfert{}, err
	}
	return in, nil
}

func (r *TransfertsRepo) Update(ctx context.Context, in transferts.Transfert) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE transferts
		SET animal_type = ?, animal_id = ?, chien_id = ?,
		    refuge_depart_id = ?, refuge_arrivee_id = ?, date_transfert = ?, statut = ?
		WHERE id = ?
	`),
		toAnimalTypeArg(in.AnimalType),
		in.AnimalID,
		in.ChienID,
		in.RefugeDepartID,
		in.RefugeArriveeID,
		toDateArg(in.DateTransfert),
		in.Statut,
		in.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return transferts.ErrNotFound
	}
	return nil
}

func (r *TransfertsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM transferts WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return transferts.ErrNotFound
	}
	return nil
}
