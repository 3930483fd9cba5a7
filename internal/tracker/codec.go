package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Storage keys. They match the browser localStorage keys of the web tracker.
const (
	KeyName     = "minecraft-username"
	KeyProgress = "minecraft-votes"
	KeyTotal    = "minecraft-total-votes"
)

// progressRecord is the stored shape of a Progress. Absent ids are uncompleted.
type progressRecord struct {
	Date  string          `json:"date"`
	Sites map[string]bool `json:"sites"`
}

func encodeProgress(p Progress) (string, error) {
	rec := progressRecord{Date: string(p.Day), Sites: map[string]bool{}}
	for id, done := range p.Completed {
		if done {
			rec.Sites[id] = true
		}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal progress: %w", err)
	}
	return string(data), nil
}

func decodeProgress(raw string) (Progress, error) {
	var rec progressRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Progress{}, err
	}
	if strings.TrimSpace(rec.Date) == "" {
		return Progress{}, errors.New("missing date")
	}
	p := Progress{Day: Day(rec.Date), Completed: map[string]bool{}}
	for id, done := range rec.Sites {
		if done {
			p.Completed[id] = true
		}
	}
	return p, nil
}

func encodeTotal(n int) string {
	return strconv.Itoa(n)
}

func decodeTotal(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative total %d", n)
	}
	return n, nil
}
