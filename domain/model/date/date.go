package date

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/ts20/internal/errutil"
	"github.com/sobadon/ts20/internal/timeutil"
)

const layout = "2006-01-02"

// 20 時の回の切り替わり（ベルリン時間）
const cutoffHour = 20

// 年月日
type Date time.Time

func New(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, timeutil.LocationBerlin()))
}

func NewFromToday(today time.Time) Date {
	today = today.In(timeutil.LocationBerlin())
	return Date(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, timeutil.LocationBerlin()))
}

// YYYY-MM-DD だけを受け付ける（--date フラグ用）
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(layout, s, timeutil.LocationBerlin())
	if err != nil {
		return Date{}, errors.Wrap(errutil.ErrInvalidDate, err.Error())
	}
	return Date(t), nil
}

func (d Date) Format() string {
	return time.Time(d).Format(layout)
}

func (d Date) Equal(other Date) bool {
	return time.Time(d).Equal(time.Time(other))
}

// now が 20:00（ベルリン時間）より前なら前日、以降なら当日の回を探しに行く
// 純粋関数なのでテストでは now を固定して渡す
func ResolveSearchDate(now time.Time) Date {
	now = now.In(timeutil.LocationBerlin())
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), cutoffHour, 0, 0, 0, timeutil.LocationBerlin())
	if now.Before(cutoff) {
		return NewFromToday(now.AddDate(0, 0, -1))
	}
	return NewFromToday(now)
}
