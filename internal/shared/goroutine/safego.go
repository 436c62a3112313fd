// Package goroutine provides panic-safe goroutine launching.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"pulsegym/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs any panic with its stack instead of
// taking the process down. Use for fire-and-forget work such as intervention
// email dispatch.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
