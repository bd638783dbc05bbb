package errutil

import "errors"

const (
	ExitCodeOK       = 0
	ExitCodeRuntime  = 1
	ExitCodeUsage    = 2
	ExitCodeInternal = 3
)

// エラーのカテゴリ（型）だけを見て終了コードを決める
// 具体的な番号ではなくカテゴリの分離が契約
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	var usageErr UsageError
	if errors.As(err, &usageErr) {
		return ExitCodeUsage
	}

	var runtimeErr RuntimeError
	if errors.As(err, &runtimeErr) {
		return ExitCodeRuntime
	}

	return ExitCodeInternal
}
