package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"rental-api/db"
	"rental-api/entities"

	"gorm.io/gorm/schema"
)

func strPtr(s string) *string { return &s }

func seedTransaction(t *testing.T, repo TransactionRepository, tx entities.Transaction) entities.Transaction {
	t.Helper()
	if err := repo.Create(context.Background(), &tx); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserPgRepository(db.OpenTest(t))

	first := &entities.User{Email: "ana@example.com", Name: "Ana", PasswordHash: "x"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" || first.CreatedAt == "" {
		t.Fatalf("hooks did not populate id/created_at: %+v", first)
	}

	err := repo.Create(ctx, &entities.User{Email: "ana@example.com", Name: "Other", PasswordHash: "y"})
	if !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("duplicate create err = %v, want ErrConflict", err)
	}

	// Emails are matched exactly as stored.
	if _, err := repo.GetByEmail(ctx, "ANA@example.com"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("case-changed lookup err = %v, want ErrNotFound", err)
	}
	got, err := repo.GetByID(ctx, first.ID)
	if err != nil || got.Email != "ana@example.com" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
}

func TestOwnedRepositoryHidesOtherUsersRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyPgRepository(db.OpenTest(t))

	prop := &entities.Property{UserID: "owner", Name: "Casa", Type: entities.PropertyTypeAirbnb}
	if err := repo.Create(ctx, prop); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Get(ctx, "intruder", prop.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Get by other user err = %v, want ErrNotFound", err)
	}
	replacement := &entities.Property{ID: prop.ID, UserID: "intruder", Name: "Stolen"}
	if err := repo.Replace(ctx, "intruder", prop.ID, replacement); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Replace by other user err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "intruder", prop.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Delete by other user err = %v, want ErrNotFound", err)
	}
	list, err := repo.List(ctx, "intruder", 100)
	if err != nil || len(list) != 0 {
		t.Errorf("List by other user = %v, %v", list, err)
	}

	got, err := repo.Get(ctx, "owner", prop.ID)
	if err != nil || got.Name != "Casa" {
		t.Fatalf("owner Get = %+v, %v", got, err)
	}
}

func TestOwnedRepositoryReplaceOverwritesEveryField(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyPgRepository(db.OpenTest(t))

	prop := &entities.Property{UserID: "owner", Name: "Casa", Type: entities.PropertyTypeAirbnb, ImageURL: strPtr("https://img")}
	if err := repo.Create(ctx, prop); err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := &entities.Property{ID: prop.ID, UserID: "owner", Name: "Apartamento", Type: entities.PropertyTypeResidential, CreatedAt: "2030-01-01T00:00:00Z"}
	if err := repo.Replace(ctx, "owner", prop.ID, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Get(ctx, "owner", prop.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Apartamento" || got.Type != entities.PropertyTypeResidential || got.ImageURL != nil || got.CreatedAt != "2030-01-01T00:00:00Z" {
		t.Fatalf("replaced record = %+v", got)
	}
}

func TestOwnedRepositoryListRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyPgRepository(db.OpenTest(t))
	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, &entities.Property{UserID: "owner", Name: "p"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := repo.List(ctx, "owner", 3)
	if err != nil || len(list) != 3 {
		t.Fatalf("List limit 3 = %d records, %v", len(list), err)
	}
}

func TestDeleteCascadeRemovesOnlyMatchingTransactions(t *testing.T) {
	ctx := context.Background()
	database := db.OpenTest(t)
	props := NewPropertyPgRepository(database)
	txs := NewTransactionPgRepository(database)

	target := &entities.Property{UserID: "owner", Name: "Target"}
	other := &entities.Property{UserID: "owner", Name: "Other"}
	for _, p := range []*entities.Property{target, other} {
		if err := props.Create(ctx, p); err != nil {
			t.Fatalf("create property: %v", err)
		}
	}

	seedTransaction(t, txs, entities.Transaction{UserID: "owner", PropertyID: target.ID, Type: entities.TransactionIncome, Amount: 100, Date: "2025-01"})
	seedTransaction(t, txs, entities.Transaction{UserID: "owner", PropertyID: target.ID, Type: entities.TransactionExpense, Amount: 10, Date: "2025-01"})
	keptOther := seedTransaction(t, txs, entities.Transaction{UserID: "owner", PropertyID: other.ID, Type: entities.TransactionIncome, Amount: 50, Date: "2025-01"})
	// Same property id recorded by another user is not theirs to cascade.
	keptForeign := seedTransaction(t, txs, entities.Transaction{UserID: "someone", PropertyID: target.ID, Type: entities.TransactionIncome, Amount: 70, Date: "2025-01"})

	removed, err := props.DeleteCascade(ctx, "owner", target.ID)
	if err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	left, err := txs.Find(ctx, "owner", TransactionFilter{})
	if err != nil || len(left) != 1 || left[0].ID != keptOther.ID {
		t.Fatalf("owner transactions after cascade = %+v, %v", left, err)
	}
	foreign, err := txs.Find(ctx, "someone", TransactionFilter{})
	if err != nil || len(foreign) != 1 || foreign[0].ID != keptForeign.ID {
		t.Fatalf("foreign transactions after cascade = %+v, %v", foreign, err)
	}

	if _, err := props.DeleteCascade(ctx, "owner", target.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("second DeleteCascade err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadeByOtherUserLeavesTransactions(t *testing.T) {
	ctx := context.Background()
	database := db.OpenTest(t)
	props := NewPropertyPgRepository(database)
	txs := NewTransactionPgRepository(database)

	prop := &entities.Property{UserID: "owner", Name: "Casa"}
	if err := props.Create(ctx, prop); err != nil {
		t.Fatalf("create property: %v", err)
	}
	seedTransaction(t, txs, entities.Transaction{UserID: "intruder", PropertyID: prop.ID, Type: entities.TransactionIncome, Amount: 1, Date: "2025-01"})

	if _, err := props.DeleteCascade(ctx, "intruder", prop.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	left, _ := txs.Find(ctx, "intruder", TransactionFilter{})
	if len(left) != 1 {
		t.Fatalf("rolled back cascade still removed transactions: %+v", left)
	}
}

func TestTransactionFind(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionPgRepository(db.OpenTest(t))

	seedTransaction(t, repo, entities.Transaction{UserID: "u", PropertyID: "p1", Type: entities.TransactionIncome, Amount: 100, Date: "2025-01"})
	seedTransaction(t, repo, entities.Transaction{UserID: "u", PropertyID: "p1", Type: entities.TransactionExpense, Category: strPtr(entities.CategoryEnergy), Amount: 30, Date: "2025-01"})
	seedTransaction(t, repo, entities.Transaction{UserID: "u", PropertyID: "p2", Type: entities.TransactionExpense, Category: strPtr("Limpeza"), Amount: 20, Date: "2025-02"})
	seedTransaction(t, repo, entities.Transaction{UserID: "v", PropertyID: "p1", Type: entities.TransactionIncome, Amount: 999, Date: "2025-01"})

	tests := []struct {
		name   string
		filter TransactionFilter
		want   int
	}{
		{"all", TransactionFilter{}, 3},
		{"month", TransactionFilter{Month: "2025-01"}, 2},
		{"month without match", TransactionFilter{Month: "2025-1"}, 0},
		{"type", TransactionFilter{Type: entities.TransactionExpense}, 2},
		{"energy", TransactionFilter{Type: entities.TransactionExpense, Category: entities.CategoryEnergy}, 1},
		{"property", TransactionFilter{PropertyID: "p2"}, 1},
		{"limit", TransactionFilter{Limit: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, "u", tt.filter)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("Find(%+v) returned %d, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestFreeFormColumnsStoreLongValues(t *testing.T) {
	ctx := context.Background()
	database := db.OpenTest(t)
	properties := NewPropertyPgRepository(database)
	transactions := NewTransactionPgRepository(database)

	kind := "short-term-rental-" + strings.Repeat("x", 40)
	prop := &entities.Property{UserID: "u", Name: "Casa", Type: kind}
	if err := properties.Create(ctx, prop); err != nil {
		t.Fatalf("create property: %v", err)
	}

	propertyID := "legacy-property-" + strings.Repeat("9", 40)
	tx := seedTransaction(t, transactions, entities.Transaction{
		UserID:     "u",
		PropertyID: propertyID,
		Type:       "reimbursement-" + strings.Repeat("r", 20),
		Amount:     10,
		Date:       "2025-01-extra-long",
	})

	got, err := transactions.Get(ctx, "u", tx.ID)
	if err != nil {
		t.Fatalf("get transaction: %v", err)
	}
	if got.PropertyID != propertyID || got.Date != "2025-01-extra-long" || got.Type != tx.Type {
		t.Fatalf("stored transaction = %+v", got)
	}
	gotProp, err := properties.Get(ctx, "u", prop.ID)
	if err != nil || gotProp.Type != kind {
		t.Fatalf("stored property = %+v, %v", gotProp, err)
	}
}

func TestFreeFormColumnsHaveNoLengthLimit(t *testing.T) {
	tests := []struct {
		model  any
		fields []string
	}{
		{&entities.Transaction{}, []string{"PropertyID", "Type", "Date"}},
		{&entities.Property{}, []string{"Type"}},
	}
	for _, tt := range tests {
		s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("parse %T: %v", tt.model, err)
		}
		for _, name := range tt.fields {
			field := s.LookUpField(name)
			if field == nil {
				t.Fatalf("%s.%s not found", s.Name, name)
			}
			if field.Size != 0 || !strings.EqualFold(field.TagSettings["TYPE"], "text") {
				t.Errorf("%s.%s: type %q size %d, want unbounded text", s.Name, name, field.TagSettings["TYPE"], field.Size)
			}
		}
	}
}
