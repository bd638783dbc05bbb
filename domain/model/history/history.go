package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/sobadon/ts20/domain/model/date"
)

// ダウンロード 1 回の記録
type Fetch struct {
	UUID      string
	Date      date.Date
	SourceURL string
	Path      string
	SizeBytes int64
	FetchedAt time.Time
}

func NewFetch(d date.Date, sourceURL string, path string, sizeBytes int64, fetchedAt time.Time) Fetch {
	return Fetch{
		UUID:      uuid.NewString(),
		Date:      d,
		SourceURL: sourceURL,
		Path:      path,
		SizeBytes: sizeBytes,
		FetchedAt: fetchedAt,
	}
}
