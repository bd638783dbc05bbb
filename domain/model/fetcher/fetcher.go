package fetcher

type Config struct {
	// アーカイブ合計サイズがこれを超えたら警告する（fetch 自体は止めない）
	StorageThresholdBytes int64
}
