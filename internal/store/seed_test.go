package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"shahabsang/internal/db"
	"shahabsang/internal/model"
)

func TestSeedIfEmptyPopulatesEmptyStore(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SeedIfEmpty(ctx, database, zap.NewNop()); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}

	count, err := CountMeteorites(ctx, database)
	if err != nil {
		t.Fatalf("CountMeteorites: %v", err)
	}
	if count != int64(len(SampleMeteorites)) {
		t.Errorf("expected %d seeded meteorites, got %d", len(SampleMeteorites), count)
	}

	// Exactly the fixed sample set, in insertion order.
	for i, want := range SampleMeteorites {
		got, err := GetMeteorite(ctx, database, int64(i+1))
		if err != nil || got == nil {
			t.Fatalf("GetMeteorite(%d): %v, %v", i+1, got, err)
		}
		if got.Name != want.Name || got.Type != want.Type || got.Location != want.Location {
			t.Errorf("sample %d: got %q/%q/%q", i+1, got.Name, got.Type, got.Location)
		}
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for range 2 {
		if err := SeedIfEmpty(ctx, database, zap.NewNop()); err != nil {
			t.Fatalf("SeedIfEmpty: %v", err)
		}
	}

	count, _ := CountMeteorites(ctx, database)
	if count != int64(len(SampleMeteorites)) {
		t.Errorf("expected %d meteorites after double seed, got %d", len(SampleMeteorites), count)
	}
}

func TestSeedIfEmptySkipsNonEmptyStore(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateMeteorite(ctx, database, model.Meteorite{
		Name: "شهاب‌سنگ موجود", Type: "آهنی", Location: "ایران",
	}); err != nil {
		t.Fatalf("CreateMeteorite: %v", err)
	}

	if err := SeedIfEmpty(ctx, database, zap.NewNop()); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}

	count, _ := CountMeteorites(ctx, database)
	if count != 1 {
		t.Errorf("seed ran against a non-empty store: count %d", count)
	}
}
