package mongo

import "time"

func milliToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ts).UTC()
}
