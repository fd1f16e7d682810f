package errs

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Postgres reports an exclusion-constraint violation with a free-text
// detail of the shape:
//
//	Key (resource_id, timespan)=(room_2, ["2024-01-02 07:00:00+00","2024-01-04 07:00:00+00")) conflicts with existing key (resource_id, timespan)=(room_2, ["2024-01-01 07:00:00+00","2024-01-03 07:00:00+00")).
//
// ParseConflict reconstructs the existing (second) tuple so callers can
// reason about the reservation already occupying the window. A detail
// string that does not match degrades to the unparsed variant; parsing
// never fails.

// Window is the half-open interval [Start, End) held by an existing
// reservation of resource Rid.
type Window struct {
	Rid   string
	Start time.Time
	End   time.Time
}

func (w Window) String() string {
	return fmt.Sprintf("%s [%s, %s)",
		w.Rid, w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// ConflictInfo is the parsed-or-raw result of reading a conflict detail.
type ConflictInfo struct {
	Window Window
	Parsed bool
	Raw    string
}

func (c ConflictInfo) String() string {
	if c.Parsed {
		return c.Window.String()
	}
	return c.Raw
}

func (c ConflictInfo) Equal(other ConflictInfo) bool {
	if c.Parsed != other.Parsed {
		return false
	}
	if c.Parsed {
		return c.Window.Rid == other.Window.Rid &&
			c.Window.Start.Equal(other.Window.Start) &&
			c.Window.End.Equal(other.Window.End)
	}
	return c.Raw == other.Raw
}

// tupleRe matches one `=(rid, ["start","end"))` tuple. The detail contains
// two: the rejected key first, the existing key last.
var tupleRe = regexp.MustCompile(`=\(([^,)]+),\s*\[("?)([^,"]+)"?\s*,\s*"?([^)"]+?)"?\)\)`)

// pgTimeLayout is the canonical text form Postgres uses for timestamptz in
// error details. time.Parse tolerates fractional seconds.
const pgTimeLayout = "2006-01-02 15:04:05-07"

// ParseConflict extracts the existing reservation window from an
// exclusion-violation detail string. Malformed input yields the unparsed
// variant with the raw text preserved.
func ParseConflict(detail string) ConflictInfo {
	w, ok := parseWindow(detail)
	if !ok {
		return ConflictInfo{Raw: detail}
	}
	return ConflictInfo{Window: w, Parsed: true}
}

func parseWindow(detail string) (Window, bool) {
	matches := tupleRe.FindAllStringSubmatch(detail, -1)
	if len(matches) < 2 {
		return Window{}, false
	}
	m := matches[len(matches)-1]

	rid := strings.TrimSpace(m[1])
	if rid == "" {
		return Window{}, false
	}

	start, err := time.Parse(pgTimeLayout, strings.TrimSpace(m[3]))
	if err != nil {
		return Window{}, false
	}
	end, err := time.Parse(pgTimeLayout, strings.TrimSpace(m[4]))
	if err != nil {
		return Window{}, false
	}

	return Window{Rid: rid, Start: start.UTC(), End: end.UTC()}, true
}
