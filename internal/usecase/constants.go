package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds every cut-mutating transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// DayFiguresCacheTTL is how long a day's fetched figures are cached.
	// Short on purpose: the transactional systems keep writing during the day.
	DayFiguresCacheTTL = 5 * time.Minute
)
