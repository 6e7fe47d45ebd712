package domain

import "time"

// Clock supplies the current time for period defaulting. Injected so tests
// can pin "the current month".
type Clock interface {
	Now() time.Time
}
