package usecase

import "time"

// NoSleep disables the retry backoff of a usecase built by New.
func NoSleep(uc any) {
	uc.(*implUseCase).sleep = func(time.Duration) {}
}
