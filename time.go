package payments

import (
	"fmt"
	"strings"
	"time"
)

// DateTime wraps time.Time to accept both RFC 3339 timestamps and plain
// yyyy-mm-dd dates on unmarshal. The backend emits date-only values for
// settlement and completion dates.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", s, err)
		}
	}
	d.Time = t
	return nil
}
