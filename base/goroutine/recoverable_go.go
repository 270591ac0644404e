package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/marketcore/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// RecoverableGoOptions hooks around a recoverable goroutine
type RecoverableGoOptions struct {
	beforeStart    *func()
	afterEnded     *func()
	afterRecovered *func(panic interface{}, stake []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions) error

func getRecoverableGoOptions(fns ...RecoverableGoOptionsFunc) RecoverableGoOptions {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}
	return opts
}

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.beforeStart = &f
		return nil
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.afterEnded = &f
		return nil
	}
}

func WithAfterRecovered(f func(panic interface{}, stake []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.afterRecovered = &f
		return nil
	}
}

// Recover runs f in the calling goroutine and turns a panic into a PanicEvent
func Recover(f func()) (evt *PanicEvent) {
	defer func() {
		if p := recover(); p != nil {
			stack := debug.Stack()
			log.Log().WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			evt = &PanicEvent{p, stack}
		}
	}()
	f()
	return nil
}

// RecoverableGo runs f in a new goroutine. The returned channel yields the
// panic if f panicked and is closed otherwise.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) chan *PanicEvent {
	opts := getRecoverableGoOptions(fns...)

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				(*opts.afterEnded)()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				log.Log().WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if opts.afterRecovered != nil {
					(*opts.afterRecovered)(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			} else {
				close(panicChan)
			}
		}()

		if opts.beforeStart != nil {
			(*opts.beforeStart)()
		}

		f()
	}()

	return panicChan
}
