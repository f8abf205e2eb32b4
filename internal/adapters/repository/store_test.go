package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/uom/internal/domain/model"
)

func strPtr(s string) *string { return &s }

// seedLegacy creates the legacy table and inserts rows the way the system
// being migrated would have: value stored as TEXT.
func seedLegacy(t *testing.T, s *Store, rows []testResultRow) {
	t.Helper()
	if err := s.db.AutoMigrate(&testResultRow{}); err != nil {
		t.Fatal(err)
	}
	if err := s.db.Create(&rows).Error; err != nil {
		t.Fatal(err)
	}
}

func TestStoreLegacyResults(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store over a fresh database", t, func() {
		s, err := Open(filepath.Join(t.TempDir(), "uom.db"))
		So(err, ShouldBeNil)
		defer s.Close()

		seedLegacy(t, s, []testResultRow{
			{ID: "1", Key: "body_weight", Value: "165.3", Units: sql.NullString{String: "lbs", Valid: true}},
			{ID: "2", Key: "push_ups", Value: "30"},
			{ID: "3", Key: "height", Value: "tall"},
		})

		Convey("When loading legacy results", func() {
			records, err := s.LegacyResults(ctx)
			So(err, ShouldBeNil)

			Convey("Then parseable rows should come back in id order", func() {
				So(len(records), ShouldEqual, 2)
				So(records[0].ID, ShouldEqual, "1")
				So(records[0].Value, ShouldAlmostEqual, 165.3, 1e-9)
				So(*records[0].Units, ShouldEqual, "lbs")
				So(records[1].ID, ShouldEqual, "2")
				So(records[1].Units, ShouldBeNil)
			})

			Convey("Then the non-numeric row should be skipped", func() {
				for _, r := range records {
					So(r.ID, ShouldNotEqual, "3")
				}
			})
		})
	})
}

func TestStoreMigratedRoundTrip(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store over a fresh database", t, func() {
		s, err := Open(filepath.Join(t.TempDir(), "uom.db"))
		So(err, ShouldBeNil)
		defer s.Close()

		Convey("When saving and reloading migrated triples", func() {
			in := []model.MigratedResult{
				{ID: "1", ValueBase: 74.98, ValueRaw: 165.3, UnitRaw: strPtr("lbs")},
				{ID: "2", ValueBase: 30, ValueRaw: 30},
			}
			So(s.SaveMigrated(ctx, in), ShouldBeNil)

			got, err := s.Migrated(ctx, "1")
			So(err, ShouldBeNil)
			So(got.ValueBase, ShouldAlmostEqual, 74.98, 1e-9)
			So(got.ValueRaw, ShouldAlmostEqual, 165.3, 1e-9)
			So(*got.UnitRaw, ShouldEqual, "lbs")

			got, err = s.Migrated(ctx, "2")
			So(err, ShouldBeNil)
			So(got.UnitRaw, ShouldBeNil)
		})

		Convey("When saving the same id twice", func() {
			So(s.SaveMigrated(ctx, []model.MigratedResult{{ID: "1", ValueBase: 1, ValueRaw: 1}}), ShouldBeNil)
			So(s.SaveMigrated(ctx, []model.MigratedResult{{ID: "1", ValueBase: 2, ValueRaw: 2}}), ShouldBeNil)

			got, err := s.Migrated(ctx, "1")
			So(err, ShouldBeNil)
			So(got.ValueBase, ShouldEqual, 2)
		})

		Convey("When loading a missing id", func() {
			_, err := s.Migrated(ctx, "nope")
			So(err, ShouldWrap, ErrNotFound)
		})

		Convey("When saving an empty batch", func() {
			So(s.SaveMigrated(ctx, nil), ShouldBeNil)
		})
	})
}
