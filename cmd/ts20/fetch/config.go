package fetch

import "time"

type config struct {
	ArchiveDir    string `env:"ARCHIVE_DIR" envDefault:"./archive"`
	ArchivePrefix string `env:"ARCHIVE_PREFIX" envDefault:"tagesschau"`
	SqlitePath    string `env:"SQLITE_PATH" envDefault:"db.sqlite3"`

	// 既定 5 GiB
	StorageThresholdBytes int64 `env:"STORAGE_THRESHOLD_BYTES" envDefault:"5368709120"`

	SearchTimeout   time.Duration `env:"SEARCH_TIMEOUT" envDefault:"15s"`
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"30m"`
}
