package timeutil

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Milliseconds returns the current unix time in milliseconds
func Milliseconds() int64 {
	return time.Now().UnixMilli()
}

// Seconds returns the current unix time in seconds
func Seconds() int64 {
	return time.Now().Unix()
}

// Microseconds returns the current unix time in microseconds
func Microseconds() int64 {
	return time.Now().UnixMicro()
}

// ISO8601 formats the millisecond timestamp as an UTC ISO 8601 string with
// millisecond precision
func ISO8601(ms int64) string {
	t := time.UnixMilli(ms).UTC()
	return t.Format("2006-01-02T15:04:05.000") + "Z"
}

var parse8601Layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse8601 parses an ISO 8601 datetime string and returns the millisecond
// timestamp. A space separator is accepted in place of 'T'. Datetimes
// without a zone offset are taken as UTC.
func Parse8601(str string) (int64, error) {
	s := strings.TrimSpace(str)
	if len(s) == 0 {
		return 0, errors.WithStack(ErrInvalidDatetimeFormat)
	}
	if i := strings.IndexByte(s, ' '); i > 0 && !strings.ContainsRune(s, 'T') {
		s = s[:i] + "T" + s[i+1:]
	}
	for _, layout := range parse8601Layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, errors.WithStack(ErrInvalidDatetimeFormat)
}

// ParseDate parses a calendar date or a full datetime and returns the
// millisecond timestamp.
func ParseDate(str string) (int64, error) {
	return Parse8601(str)
}

// YMD formats the millisecond timestamp as a calendar date joined with the
// separator
func YMD(ms int64, sep string) string {
	t := time.UnixMilli(ms).UTC()
	return t.Format("2006" + sep + "01" + sep + "02")
}

// YMDHMS formats the millisecond timestamp as a full datetime joined with
// the separator
func YMDHMS(ms int64, sep string) string {
	t := time.UnixMilli(ms).UTC()
	return t.Format("2006" + sep + "01" + sep + "02 15:04:05")
}

var (
	nonceMu   sync.Mutex
	lastNonce int64
)

// Nonce returns a strictly increasing millisecond timestamp
func Nonce() int64 {
	nonceMu.Lock()
	defer nonceMu.Unlock()
	n := Milliseconds()
	if n <= lastNonce {
		n = lastNonce + 1
	}
	lastNonce = n
	return n
}
