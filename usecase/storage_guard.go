package usecase

import "fmt"

// 閾値超過なら GB 表記の注意メッセージを返す
// 超えていなければ ("", false)
func storageAdvisory(sizeBytes int64, thresholdBytes int64) (string, bool) {
	if sizeBytes <= thresholdBytes {
		return "", false
	}

	sizeGB := float64(sizeBytes) / (1024 * 1024 * 1024)
	return fmt.Sprintf("archive size %.1f GB exceeds threshold", sizeGB), true
}
