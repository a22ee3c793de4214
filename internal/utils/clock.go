// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// Clock supplies the current time in epoch milliseconds. Injected wherever
// timestamps are stamped so that tests can run against a fixed time.
type Clock interface {
	NowUnixMilli() int64
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// FixedClock is a Clock that always reports the same instant.
// It is intended for tests that assert exact timestamp values.
type FixedClock struct {
	Millis int64
}

func (f *FixedClock) NowUnixMilli() int64 {
	return f.Millis
}

// Set moves the fixed clock to a new instant.
func (f *FixedClock) Set(millis int64) {
	f.Millis = millis
}
