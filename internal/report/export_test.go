// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"io"
	"time"
)

// SetClock replaces the service clock in tests.
func SetClock(service *Service, now func() time.Time) {
	service.now = now
}

// SetRenderer replaces the PDF renderer in tests.
func SetRenderer(service *Service, render func(*Document, io.Writer) error) {
	service.render = render
}
