package blob

import (
	"context"
	"errors"

	"stockboard/internal/platform/config"
	perr "stockboard/internal/platform/errors"
	"stockboard/internal/platform/store"
)

// Settings is the resolved STOCKBOARD_BLOB_ configuration
type Settings struct {
	Driver     Driver
	Key        string
	FSRoot     string
	SQLitePath string
	S3         S3Config
}

// DefaultKey is where the uploads document lives
const DefaultKey = "stockboard/uploads.json"

// SettingsFrom reads driver settings off cfg, which should carry the STOCKBOARD_BLOB_ prefix
func SettingsFrom(cfg config.Conf) Settings {
	return Settings{
		Driver:     Driver(cfg.MayEnum("DRIVER", string(DriverFilesystem), Drivers...)),
		Key:        cfg.MayString("KEY", DefaultKey),
		FSRoot:     cfg.MayString("FS_ROOT", "./data"),
		SQLitePath: cfg.MayString("SQLITE_PATH", "./data/stockboard.db"),
		S3: S3Config{
			Bucket:    cfg.MayString("S3_BUCKET", ""),
			Region:    cfg.MayString("S3_REGION", "us-east-1"),
			Endpoint:  cfg.MayString("S3_ENDPOINT", ""),
			PathStyle: cfg.MayBool("S3_PATH_STYLE", false),
			AccessKey: cfg.MayString("S3_ACCESS_KEY", ""),
			SecretKey: cfg.MayString("S3_SECRET_KEY", ""),
		},
	}
}

// Open builds the store named by s.Driver; pg is only used by the pg driver
func Open(ctx context.Context, s Settings, pg store.TxRunner) (Store, error) {
	switch s.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFilesystem, "":
		return NewFilesystem(s.FSRoot)
	case DriverSQLite:
		return NewSQLite(ctx, s.SQLitePath)
	case DriverPostgres:
		return NewPostgres(ctx, pg)
	case DriverS3:
		return NewS3(ctx, s.S3)
	default:
		return nil, perr.InvalidArgf("unknown blob driver %q", s.Driver)
	}
}

// Boot opens the store described by s; for the pg driver it first brings up the
// postgres pool from root's STOCKBOARD_PG_ keys. close releases both
func Boot(ctx context.Context, root config.Conf, s Settings, appName string) (Store, func() error, error) {
	var st *store.Store
	var pg store.TxRunner
	if s.Driver == DriverPostgres {
		pgConf := root.Prefix("STOCKBOARD_PG_")
		cfg := store.FromConfig(pgConf, appName)
		if !cfg.PG.Enabled {
			return nil, nil, perr.WithField(perr.InvalidArgf("%s is required for the pg blob driver", pgConf.Key("DBURL")), "DBURL")
		}
		var err error
		if st, err = store.Open(ctx, cfg); err != nil {
			return nil, nil, err
		}
		pg = st.PG
	}

	b, err := Open(ctx, s, pg)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		var errs []error
		if c, ok := b.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
		errs = append(errs, st.Close())
		return errors.Join(errs...)
	}
	return b, closeFn, nil
}
