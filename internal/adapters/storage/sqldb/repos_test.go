package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"spa-transferts/internal/domain/animaux"
	"spa-transferts/internal/domain/refuges"
	"spa-transferts/internal/domain/transferts"
)

func i64(v int64) *int64 { return &v }

func str(s string) *string { return &s }

func newSchemaDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db := openTestDB(t)
	if err := CreateSchema(context.Background(), db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func TestRefugesRepo_CRUD(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewRefugesRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, refuges.Refuge{
		Nom:         "Refuge Nord",
		Responsable: str("Claire"),
		Telephone:   str("0102030405"),
		Adresse:     str("1 rue des Lilas"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("id must be assigned by storage")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Nom != "Refuge Nord" ||
		got.Responsable == nil || *got.Responsable != "Claire" ||
		got.Telephone == nil || *got.Telephone != "0102030405" ||
		got.Adresse == nil || *got.Adresse != "1 rue des Lilas" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	got.Telephone = str("0607080910")
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if again.Telephone == nil || *again.Telephone != "0607080910" || again.Nom != "Refuge Nord" {
		t.Fatalf("update lost fields: %+v", again)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, refuges.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, refuges.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRefugesRepo_NullContactFieldsStayNull(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewRefugesRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, refuges.Refuge{Nom: "Refuge Sud"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Responsable != nil || got.Telephone != nil || got.Adresse != nil {
		t.Fatalf("unset contact fields must stay null, got %+v", got)
	}
}

func TestAnimalRepos_IndependentIDSequences(t *testing.T) {
	db := newSchemaDB(t)
	ctx := context.Background()

	chiens := NewChiensRepo(db)
	chiens12 := NewChiens12Repo(db)
	chats12 := NewChats12Repo(db)

	c, err := chiens.Create(ctx, animaux.Chien{Nom: "Rex", Age: i64(4), Race: str("berger")})
	if err != nil {
		t.Fatalf("create chien: %v", err)
	}
	c12, err := chiens12.Create(ctx, animaux.Chien12Mois{Nom: "Junior"})
	if err != nil {
		t.Fatalf("create chien12: %v", err)
	}
	ch12, err := chats12.Create(ctx, animaux.Chat12Mois{Nom: "Misty", RefugeID: i64(1)})
	if err != nil {
		t.Fatalf("create chat12: %v", err)
	}

	// three tables, three sequences, all starting at 1
	if c.ID != 1 || c12.ID != 1 || ch12.ID != 1 {
		t.Fatalf("expected independent id sequences, got %d/%d/%d", c.ID, c12.ID, ch12.ID)
	}

	got, err := chiens.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("get chien: %v", err)
	}
	if got.Nom != "Rex" || got.Age == nil || *got.Age != 4 ||
		got.Race == nil || *got.Race != "berger" || got.RefugeID != nil {
		t.Fatalf("chien roundtrip mismatch: %+v", got)
	}

	gotChat, err := chats12.GetByID(ctx, ch12.ID)
	if err != nil {
		t.Fatalf("get chat12: %v", err)
	}
	if gotChat.RefugeID == nil || *gotChat.RefugeID != 1 || gotChat.Age != nil || gotChat.Race != nil {
		t.Fatalf("chat12 roundtrip mismatch: %+v", gotChat)
	}
}

func TestChiensRepo_NullableClears(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewChiensRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, animaux.Chien{Nom: "Rex", Age: i64(4), RefugeID: i64(2)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Age = nil
	created.RefugeID = nil
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Age != nil || got.RefugeID != nil {
		t.Fatalf("expected nulls after clear, got %+v", got)
	}
}

func TestTransfertsRepo_RoundTripAndMixedRows(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewTransfertsRepo(db)
	ctx := context.Background()

	typ := animaux.TypeChat12
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, transferts.Transfert{
		AnimalType:      &typ,
		AnimalID:        i64(3),
		RefugeDepartID:  1,
		RefugeArriveeID: 2,
		DateTransfert:   &date,
		Statut:          str("En attente"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// legacy-shaped row: no animal reference at all
	if _, err := db.ExecContext(ctx,
		`INSERT INTO transferts (refuge_depart_id, refuge_arrivee_id, statut) VALUES (3, 4, 'Validé')`); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list must tolerate mixed rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.ID != created.ID || first.AnimalType == nil || *first.AnimalType != animaux.TypeChat12 {
		t.Fatalf("new-format row mismatch: %+v", first)
	}
	if first.DateTransfert == nil || first.DateTransfert.Format("2006-01-02") != "2024-03-15" {
		t.Fatalf("date lost in roundtrip: %+v", first.DateTransfert)
	}

	second := rows[1]
	if second.AnimalType != nil || second.AnimalID != nil || second.ChienID != nil {
		t.Fatalf("legacy row must serialize with absent reference: %+v", second)
	}
	if second.Statut == nil || *second.Statut != "Validé" {
		t.Fatalf("legacy statut lost: %+v", second.Statut)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, transferts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, transferts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
}
