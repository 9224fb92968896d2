// Package fixture builds the sample election passed to the elections
// contract's create_election call.
package fixture

import (
	"time"
)

// Fixed election content.
const (
	Title       = "My Election"
	Description = "Some short description"

	// EndOffset is the distance from now to the election end.
	EndOffset = 3 * 24 * time.Hour
)

// Candidates returns the fixed candidate list. Each call returns a new slice.
func Candidates() []string {
	return []string{"Alice", "Bob"}
}

// Election is one generated election fixture.
// Start and End are nanoseconds since the Unix epoch.
type Election struct {
	Start       int64
	End         int64
	Title       string
	Description string
	Candidates  []string
}

// Nanoseconds converts t to nanoseconds since the Unix epoch, dropping
// precision below one microsecond.
func Nanoseconds(t time.Time) int64 {
	return t.UnixMicro() * int64(time.Microsecond)
}

// Generate builds the election for variant v from a single clock reading.
func Generate(now time.Time, v Variant) Election {
	return Election{
		Start:       Nanoseconds(now.Add(v.StartOffset)),
		End:         Nanoseconds(now.Add(EndOffset)),
		Title:       Title,
		Description: Description,
		Candidates:  Candidates(),
	}
}

// Duration returns End - Start.
func (e Election) Duration() time.Duration {
	return time.Duration(e.End - e.Start)
}
