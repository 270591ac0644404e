package usecase

import (
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/healthcheck"
)

type impl struct {
	repo healthcheck.Repo
}

func New(repo healthcheck.Repo) healthcheck.UseCase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) (healthcheck.Report, error) {
	checks := []struct {
		name string
		ping func(ctx.Ctx) error
	}{
		{"mongo", im.repo.PingMongo},
		{"redis", im.repo.PingRedis},
	}

	report := healthcheck.Report{}
	var err error
	for _, p := range checks {
		if perr := p.ping(c); perr != nil {
			report[p.name] = healthcheck.StatusDown
			err = healthcheck.ErrUnhealthy
			continue
		}
		report[p.name] = healthcheck.StatusOk
	}
	return report, err
}
