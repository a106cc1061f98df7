/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"regexp"
	"strings"
	"time"

	"github.com/mikeb26/bridgescore/internal"
)

const eventDateLayout = "01/02/2006"

var eventDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// DefaultEventDate returns now formatted as mm/dd/yyyy
func DefaultEventDate(now time.Time) string {
	return now.Format(eventDateLayout)
}

// FormatLongDate renders an mm/dd/yyyy event date as e.g.
// "Monday, October 19, 2026". Any other string is returned verbatim.
func FormatLongDate(date string) string {
	if !eventDateRe.MatchString(date) {
		return date
	}
	t, err := internal.ParseDateOrZero(date)
	if err != nil || t.IsZero() {
		return date
	}

	return t.Format("Monday, January 2, 2006")
}

// SaveFileName returns the conventional file name for a tournament saved
// on the given event date.
func SaveFileName(date string) string {
	return "Bridge scores " + strings.ReplaceAll(date, "/", "-") + ".txt"
}
