/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Layout of a saved tournament: one value per line, blank lines ignored.
//
//	line 1          event date
//	lines 2-7       team names in slot order ("&" written as "&&")
//	lines 8-27      board labels 1-20, ignored on load
//	lines 28-147    results, all boards for team 1 then team 2 ...
const (
	dateLine       = 0
	firstNameLine  = dateLine + 1
	firstLabelLine = firstNameLine + NumTeams
	firstScoreLine = firstLabelLine + NumBoards
	FileLineCount  = firstScoreLine + NumBoards*NumTeams

	lineSep = "\r\n"
)

var ErrTooShort = errors.New("tournament file too short")

// DecodeError reports a tournament file that could not be loaded. Lines is
// the number of non-blank lines found.
type DecodeError struct {
	Lines int
}

func (e *DecodeError) Error() string {
	if e.Lines == 1 {
		return fmt.Sprintf("File appears to be in a different format. Expected %v+ lines, got 1 line.",
			FileLineCount)
	}

	return fmt.Sprintf("File too short. Expected at least %v lines, got %v lines.",
		FileLineCount, e.Lines)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrTooShort
}

// Serialize encodes the session in the saved-file format
func Serialize(s *Session) string {
	lines := make([]string, 0, FileLineCount)

	lines = append(lines, s.EventDate)
	for _, name := range s.TeamNames {
		lines = append(lines, escapeName(name))
	}
	for b := 1; b <= NumBoards; b++ {
		lines = append(lines, strconv.Itoa(b))
	}
	for t := 0; t < NumTeams; t++ {
		for b := 0; b < NumBoards; b++ {
			lines = append(lines, s.Scores[b][t].fileForm())
		}
	}

	return strings.Join(lines, lineSep)
}

// Deserialize decodes a saved tournament into a new Session. Either the
// whole file is decoded or an error is returned; no partial state escapes.
// Files laid out exactly as Serialize writes them are read positionally;
// anything else has its blank lines stripped first. Beyond the line count
// no structural checks are made. Team names other than base roster names
// and the Team #n placeholders are added to the guest list; placeholders are
// left out so that a default session round-trips unchanged.
func Deserialize(text string) (*Session, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	raw := strings.Split(text, "\n")

	var lines []string
	if isPositional(raw) {
		lines = raw[:FileLineCount]
	} else {
		for _, line := range raw {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) < FileLineCount {
			return nil, &DecodeError{Lines: len(lines)}
		}
	}

	s := NewSession(lines[dateLine])
	for i := 0; i < NumTeams; i++ {
		name := unescapeName(lines[firstNameLine+i])
		s.TeamNames[i] = name
		s.Guests.Add(name)
	}

	idx := firstScoreLine
	for t := 0; t < NumTeams; t++ {
		for b := 0; b < NumBoards; b++ {
			if strings.TrimSpace(lines[idx]) != "" {
				s.Scores[b][t] = resultFromFile(lines[idx])
			}
			idx++
		}
	}

	return s, nil
}

func escapeName(name string) string {
	return strings.ReplaceAll(name, "&", "&&")
}

func unescapeName(name string) string {
	return strings.ReplaceAll(name, "&&", "&")
}

// isPositional reports whether raw holds an unmodified Serialize layout. A
// partially scored tournament saves its empty results as blank lines which
// must keep their position for the file to load.
func isPositional(raw []string) bool {
	if len(raw) < FileLineCount {
		return false
	}
	for _, line := range raw[FileLineCount:] {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	for i := 0; i < NumTeams; i++ {
		if strings.TrimSpace(raw[firstNameLine+i]) == "" {
			return false
		}
	}
	for b := 1; b <= NumBoards; b++ {
		if strings.TrimSpace(raw[firstLabelLine+b-1]) != strconv.Itoa(b) {
			return false
		}
	}

	return true
}
