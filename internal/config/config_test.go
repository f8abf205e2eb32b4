package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/uom/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	convey.Convey("Given no file and no environment overrides", t, func() {
		cfg := config.New()

		convey.Convey("Then the defaults should be sane", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.DBPath, convey.ShouldEqual, "uom.db")
			convey.So(cfg.MigrateWorkers, convey.ShouldBeGreaterThanOrEqualTo, 1)
			convey.So(cfg.Precision, convey.ShouldEqual, 2)
			convey.So(cfg.Preferences, convey.ShouldBeEmpty)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("UOM_ADDR", ":7070")
	t.Setenv("UOM_DB_PATH", "/tmp/results.db")
	t.Setenv("UOM_MIGRATE_WORKERS", "8")
	t.Setenv("UOM_LOG_LEVEL", "debug")

	convey.Convey("Given UOM_-prefixed environment variables", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then they should override the defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			convey.So(cfg.DBPath, convey.ShouldEqual, "/tmp/results.db")
			convey.So(cfg.MigrateWorkers, convey.ShouldEqual, 8)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
		})

		convey.Convey("Then untouched fields should keep defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Precision, convey.ShouldEqual, 2)
		})
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uom.yaml")
	body := []byte("addr: \":8088\"\nprecision: 3\npreferences:\n  mass: lb\n  distance: ft\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UOM_CONFIG", path)

	convey.Convey("Given a YAML config file referenced by UOM_CONFIG", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then file values should apply over defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8088")
			convey.So(cfg.Precision, convey.ShouldEqual, 3)
			convey.So(cfg.Preferences["mass"], convey.ShouldEqual, "lb")
			convey.So(cfg.Preferences["distance"], convey.ShouldEqual, "ft")
		})
	})
}

func TestLoadFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uom.yaml")
	if err := os.WriteFile(path, []byte("addr: \":8088\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UOM_CONFIG", path)
	t.Setenv("UOM_ADDR", ":6060")

	convey.Convey("Given both a file and an env override", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then env should win", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
		})
	})
}

func TestLoadFailures(t *testing.T) {
	convey.Convey("Given an unreadable config file", t, func() {
		t.Setenv("UOM_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := config.Load(context.Background())

		convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
	})

	convey.Convey("Given an empty listen address", t, func() {
		t.Setenv("UOM_CONFIG", "")
		t.Setenv("UOM_ADDR", "")
		_, err := config.Load(context.Background())

		convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
	})

	convey.Convey("Given a negative precision", t, func() {
		t.Setenv("UOM_ADDR", ":9080")
		t.Setenv("UOM_PRECISION", "-1")
		_, err := config.Load(context.Background())

		convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
	})

	convey.Convey("Given zero migration workers", t, func() {
		t.Setenv("UOM_PRECISION", "2")
		t.Setenv("UOM_MIGRATE_WORKERS", "0")
		_, err := config.Load(context.Background())

		convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
	})
}
