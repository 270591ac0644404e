/*
Package metrics wraps datadog-go to facilitate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.err
- Business outcome: *.success / *.fail
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// using host removes all tags associated with host
				"host:",
				"pod:" + env.PodName(),
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

// Metrics prefixes keys with the package name and never lets a metric failure escape
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) recoverPanic(key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum("bump.panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic(key, tags)
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic(key, tags)
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic(key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpTime starts a timer, call End() on the result to record it:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.pkgName+`.`+key, 1, tags...),
		panicHandler: func() {
			mt.datadog.BumpSum("bump.panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
