//go:build unit

package upload

import "time"

func (s *Storage) SetNow(now func() time.Time) {
	s.now = now
}
