package sim

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/plus3/skyraid/sim"

// Removal reasons reported on skyraid.enemies.removed and skyraid.projectiles.removed.
const (
	reasonHit     = "hit"
	reasonExpired = "expired"
	reasonExited  = "exited"
)

var (
	attrHit     = metric.WithAttributes(attribute.String("reason", reasonHit))
	attrExpired = metric.WithAttributes(attribute.String("reason", reasonExpired))
	attrExited  = metric.WithAttributes(attribute.String("reason", reasonExited))
)

type metrics struct {
	enemiesSpawned     metric.Int64Counter
	enemiesRemoved     metric.Int64Counter
	projectilesFired   metric.Int64Counter
	projectilesRemoved metric.Int64Counter
	impacts            metric.Int64Counter
	tickDuration       metric.Float64Histogram
}

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

func newMetrics(m metric.Meter) (*metrics, error) {
	if m == nil {
		m = meter()
	}

	var (
		s   metrics
		err error
	)

	s.enemiesSpawned, err = m.Int64Counter(
		"skyraid.enemies.spawned",
		metric.WithDescription("Enemies created by the spawn scheduler"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enemies spawned counter: %w", err)
	}

	s.enemiesRemoved, err = m.Int64Counter(
		"skyraid.enemies.removed",
		metric.WithDescription("Enemies removed, by reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enemies removed counter: %w", err)
	}

	s.projectilesFired, err = m.Int64Counter(
		"skyraid.projectiles.fired",
		metric.WithDescription("Projectiles fired by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projectiles fired counter: %w", err)
	}

	s.projectilesRemoved, err = m.Int64Counter(
		"skyraid.projectiles.removed",
		metric.WithDescription("Projectiles removed, by reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projectiles removed counter: %w", err)
	}

	s.impacts, err = m.Int64Counter(
		"skyraid.player.impacts",
		metric.WithDescription("Player contacts with enemies or buildings"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating impacts counter: %w", err)
	}

	s.tickDuration, err = m.Float64Histogram(
		"skyraid.tick.duration",
		metric.WithDescription("Wall time spent in one simulation tick"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick duration histogram: %w", err)
	}

	return &s, nil
}

func (m *metrics) impact(target string) {
	m.impacts.Add(context.Background(), 1, metric.WithAttributes(attribute.String("target", target)))
}
