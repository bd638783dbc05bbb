package player

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/ts20/domain/repository"
	"github.com/sobadon/ts20/internal/errutil"
)

// プラットフォーム既定のハンドラで開くだけ
// 再生の成否は追わない（ベストエフォート）
type player struct {
	command string
}

func New() repository.Player {
	return &player{
		command: "xdg-open",
	}
}

func (p *player) Play(ctx context.Context, path string) error {
	log.Ctx(ctx).Debug().Msgf("launch player (path = %s)", path)
	cmd := exec.Command(p.command, path)
	err := cmd.Start()
	if err != nil {
		return errors.Wrap(errutil.ErrPlayer, err.Error())
	}

	// ゾンビ化防止に回収だけしておく
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
