package tagesschau

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/ts20/domain/model/broadcast"
	"github.com/sobadon/ts20/internal/errutil"
	"github.com/sobadon/ts20/internal/fileutil"
)

// SourceURL を TargetPath へダウンロードする
// 一時ファイル（*.part）に書き切ってから rename するので、
// 途中で失敗・中断しても TargetPath に中途半端なファイルが見えることはない
func (c *client) Download(ctx context.Context, entry broadcast.Entry) error {
	targetDir := filepath.Dir(entry.TargetPath)
	err := fileutil.MkdirAllIfNotExist(targetDir)
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, entry.SourceURL, nil)
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	log.Ctx(ctx).Debug().Msgf("download ... (url = %s)", entry.SourceURL)
	res, err := c.downloadClient.Do(req)
	if err != nil {
		return errors.Wrap(errutil.ErrDownloadFailed, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return errors.Wrapf(errutil.ErrDownloadFailed, "http status code is %d", res.StatusCode)
	}

	tmpFile, err := os.CreateTemp(targetDir, filepath.Base(entry.TargetPath)+".*.part")
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	written, err := io.Copy(tmpFile, res.Body)
	if err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return errors.Wrap(errutil.ErrDownloadFailed, err.Error())
	}

	err = tmpFile.Close()
	if err != nil {
		os.Remove(tmpFile.Name())
		return errors.Wrap(errutil.ErrDownloadFailed, err.Error())
	}

	err = os.Rename(tmpFile.Name(), entry.TargetPath)
	if err != nil {
		os.Remove(tmpFile.Name())
		return errors.Wrap(errutil.ErrDownloadFailed, err.Error())
	}

	log.Ctx(ctx).Info().Msgf("successfully downloaded (path = %s, bytes = %d)", entry.TargetPath, written)
	return nil
}
