package util

import "time"

const dateLayout = "2006-01-02"

var seoulLocation *time.Location

func init() {
	var err error
	seoulLocation, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		seoulLocation = time.FixedZone("KST", 9*60*60)
	}
}

// FormatDate renders t as a KST calendar date (YYYY-MM-DD). The whole app
// presents dates in Korean local time regardless of where it runs.
func FormatDate(t time.Time) string {
	return t.In(seoulLocation).Format(dateLayout)
}

// Today returns today's KST calendar date.
func Today() string {
	return FormatDate(time.Now())
}

// DaysFromNow returns the KST calendar date n days ahead of now.
func DaysFromNow(n int) string {
	return FormatDate(time.Now().AddDate(0, 0, n))
}

// ParseDate parses a YYYY-MM-DD date in KST.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, seoulLocation)
}
