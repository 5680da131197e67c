// Package stats keeps an in-memory history of finished sessions and the
// aggregates shown next to the board.
package stats

import (
	"sort"
	"sync"
	"time"

	"gridsnake/game/types"
)

// DefaultCapacity is how many recent sessions are kept.
const DefaultCapacity = 50

// GameRecord describes one finished or abandoned session.
type GameRecord struct {
	SessionID  string           `json:"sessionId"`
	StartTime  time.Time        `json:"startTime"`
	EndTime    time.Time        `json:"endTime"`
	Score      int              `json:"score"`
	FoodEaten  int              `json:"foodEaten"`
	Length     int              `json:"length"`
	Difficulty types.Difficulty `json:"difficulty"`
	Wrap       bool             `json:"wrap"`
	Completed  bool             `json:"completed"` // false when abandoned by a restart
}

// Duration is EndTime - StartTime.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// History is a capped, oldest-first list of session records.
type History struct {
	records  []GameRecord
	capacity int
	total    int
	mutex    sync.RWMutex
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		records:  make([]GameRecord, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a record, evicting the oldest one when full.
func (h *History) Add(r GameRecord) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.records) >= h.capacity {
		h.records = append(h.records[:0], h.records[1:]...)
	}
	h.records = append(h.records, r)
	h.total++
}

// Records returns a copy of the kept records, oldest first.
func (h *History) Records() []GameRecord {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make([]GameRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Scores returns the kept scores, oldest first.
func (h *History) Scores() []int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	scores := make([]int, len(h.records))
	for i, r := range h.records {
		scores[i] = r.Score
	}
	return scores
}

// GamesPlayed counts every record ever added, including evicted ones.
func (h *History) GamesPlayed() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.total
}

func (h *History) AverageScore() float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if len(h.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range h.records {
		total += r.Score
	}
	return float64(total) / float64(len(h.records))
}

func (h *History) MedianScore() float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if len(h.records) == 0 {
		return 0
	}
	scores := make([]float64, len(h.records))
	for i, r := range h.records {
		scores[i] = float64(r.Score)
	}
	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		return (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	}
	return scores[len(scores)/2]
}

func (h *History) MaxScore() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	maxScore := 0
	for _, r := range h.records {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// AverageDuration is the mean session length in seconds.
func (h *History) AverageDuration() float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if len(h.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range h.records {
		total += r.Duration()
	}
	return total.Seconds() / float64(len(h.records))
}

// MaxDuration is the longest kept session in seconds.
func (h *History) MaxDuration() float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	var longest time.Duration
	for _, r := range h.records {
		longest = max(longest, r.Duration())
	}
	return longest.Seconds()
}
