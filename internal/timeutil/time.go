package timeutil

import (
	"time"
	// OS に tzdata がなくても Europe/Berlin を引けるように
	_ "time/tzdata"
)

var locationBerlin = loadLocationBerlin()

func loadLocationBerlin() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		// ここには来ないはずだが、来ても夏時間を諦めて CET 固定で動かす
		return time.FixedZone("CET", 1*60*60)
	}
	return loc
}

func LocationBerlin() *time.Location {
	return locationBerlin
}
