package services

import (
	"context"
	"time"

	"github.com/jn0w/Lindsey/domain/memory"
)

// MemoryOfTheDay picks one memory for the given moment's UTC calendar
// date. The pick is stable for every request on the same day and shifts
// deterministically the next day; no selection state is persisted. An
// empty collection yields a nil memory, not an error.
//
// The index is derived from the date key with the 32-bit string hash
// existing clients already compute, so server and clients always agree
// on the same pick. Records are taken in the store's
// natural return order; if that order shifts within a day the pick can
// shift with it, which is accepted.
func (s *MemoryService) MemoryOfTheDay(ctx context.Context, now time.Time) (*memory.Memory, string, error) {
	dateKey := now.UTC().Format("2006-01-02")

	memories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, dateKey, err
	}
	if len(memories) == 0 {
		return nil, dateKey, nil
	}

	index := dailyIndex(dateKey, len(memories))
	return &memories[index], dateKey, nil
}

// dailyIndex maps a date key onto [0, n). n must be positive.
func dailyIndex(dateKey string, n int) int {
	h := hashDateKey(dateKey)
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// hashDateKey is the classic shift-multiply string hash: each step is
// hash*31 + charCode, wrapped to signed 32 bits.
func hashDateKey(key string) int32 {
	var h int32
	for _, c := range key {
		h = (h << 5) - h + int32(c)
	}
	return h
}
