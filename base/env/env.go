package env

import (
	"os"
)

// PodName example: k8ssta-marketcore-api-6868d88fbd-bz8zv, falls back to the host name
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}
