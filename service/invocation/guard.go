package invocation

import (
	"sync"
	"sync/atomic"

	"github.com/x-xyz/marketcore/domain/marketplace"
)

// Guard rejects re-entry into a critical section
type Guard struct {
	busy int32
}

// Enter fails with ErrReentrantCall while the guard is held. The caller must
// call release on every exit path, usually with defer.
func (g *Guard) Enter() (release func(), err error) {
	if !atomic.CompareAndSwapInt32(&g.busy, 0, 1) {
		return nil, marketplace.ErrReentrantCall
	}
	var once sync.Once
	return func() {
		once.Do(func() { atomic.StoreInt32(&g.busy, 0) })
	}, nil
}
