package archive

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/ts20/domain/model/broadcast"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/domain/repository"
	"github.com/sobadon/ts20/internal/errutil"
)

type archive struct {
	dir    string
	prefix string
}

func New(dir string, prefix string) repository.Archive {
	return &archive{
		dir:    dir,
		prefix: prefix,
	}
}

// ファイル名が <prefix>.<YYYY-MM-DD>.mp4 として厳密にパースできたときだけ一致とする
// 生の部分文字列検索だと別日付のファイル名に誤マッチしうる
func (a *archive) FindLocal(d date.Date) (string, bool, error) {
	dirEntries, err := os.ReadDir(a.dir)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	// ディレクトリ順で最初の 1 件
	// prefix が固定なら同一日付のアーティファクトは高々 1 つしか置けない
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		artifactDate, ok := parseArtifactName(a.prefix, dirEntry.Name())
		if !ok {
			continue
		}
		if artifactDate.Equal(d) {
			return filepath.Join(a.dir, dirEntry.Name()), true, nil
		}
	}

	return "", false, nil
}

// アーカイブディレクトリ以下の全ファイルの合計サイズ
func (a *archive) TotalSize() (int64, error) {
	var total int64
	err := filepath.WalkDir(a.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errutil.ErrInternal, err.Error())
	}
	return total, nil
}

func (a *archive) List() ([]broadcast.Artifact, error) {
	dirEntries, err := os.ReadDir(a.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	var artifacts []broadcast.Artifact
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		artifactDate, ok := parseArtifactName(a.prefix, dirEntry.Name())
		if !ok {
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			return nil, errors.Wrap(errutil.ErrInternal, err.Error())
		}
		artifacts = append(artifacts, broadcast.Artifact{
			Path:      filepath.Join(a.dir, dirEntry.Name()),
			Date:      artifactDate,
			SizeBytes: info.Size(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return time.Time(artifacts[i].Date).Before(time.Time(artifacts[j].Date))
	})
	return artifacts, nil
}

// 全アーティファクト削除（日付単位の削除はない）
func (a *archive) Purge() (int, error) {
	artifacts, err := a.List()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, artifact := range artifacts {
		err := os.Remove(artifact.Path)
		if err != nil {
			return count, errors.Wrap(errutil.ErrInternal, err.Error())
		}
		count++
	}
	return count, nil
}

// <prefix>.<YYYY-MM-DD>.mp4 -> 日付
func parseArtifactName(prefix string, name string) (date.Date, bool) {
	if !strings.HasPrefix(name, prefix+".") {
		return date.Date{}, false
	}
	rest := strings.TrimPrefix(name, prefix+".")
	if !strings.HasSuffix(rest, ".mp4") {
		return date.Date{}, false
	}
	dateStr := strings.TrimSuffix(rest, ".mp4")
	d, err := date.Parse(dateStr)
	if err != nil {
		return date.Date{}, false
	}
	return d, true
}
