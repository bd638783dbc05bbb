package errutil

var (
	// 検索 API に到達できない・非 200・レスポンス全体が壊れている系
	ErrRemoteUnavailable = NewRuntimeError("remote search unavailable")
	// 検索結果 1 件の中身が欠けている系（その 1 件だけスキップする）
	ErrMalformedEntry = NewRuntimeError("malformed search result entry")
	// ローカルにもリモートにも該当日の放送が存在しない
	ErrNotAvailable   = NewRuntimeError("broadcast not available for requested date")
	ErrDownloadFailed = NewRuntimeError("download failed")
	ErrPlayer         = NewRuntimeError("player launch error")

	ErrInvalidDate = NewUsageError("invalid date")

	ErrDatabaseOpen  = NewInternalError("database open error")
	ErrDatabaseQuery = NewInternalError("database query error")
	ErrDatabaseScan  = NewInternalError("database scan error")
	ErrScheduler     = NewInternalError("scheduler error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
