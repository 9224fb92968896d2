package fixture

import (
	"strconv"
	"strings"
	"time"

	"github.com/NielsdaWheelz/genelection/internal/errors"
)

// MinCandidates is the smallest candidate count create_election accepts.
const MinCandidates = 2

// Validate applies the guards create_election enforces on chain, with now
// standing in for the block timestamp.
func Validate(e Election, now time.Time) error {
	details := map[string]string{
		"op":         "validate",
		"start":      strconv.FormatInt(e.Start, 10),
		"end":        strconv.FormatInt(e.End, 10),
		"now":        strconv.FormatInt(Nanoseconds(now), 10),
		"candidates": strings.Join(e.Candidates, ","),
	}

	if len(e.Candidates) < MinCandidates {
		return errors.NewWithDetails(errors.EInvalidFixture, "more than one candidate should be provided", details)
	}
	if e.Start <= Nanoseconds(now) {
		return errors.NewWithDetails(errors.EInvalidFixture, "start should be in the future", details)
	}
	if e.Start >= e.End {
		return errors.NewWithDetails(errors.EInvalidFixture, "start should be before end", details)
	}
	return nil
}
