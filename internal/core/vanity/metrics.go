package vanity

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 靓号搜索指标
type Metrics struct {
	attempts *prometheus.CounterVec
	matches  *prometheus.CounterVec
}

// NewMetrics 创建指标并注册到 reg；reg 为 nil 时只在本地计数
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addrkit_vanity_attempts_total",
			Help: "Number of keys generated and derived during vanity search",
		}, []string{"format"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addrkit_vanity_matches_total",
			Help: "Number of addresses that matched the requested prefix",
		}, []string{"format"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.attempts, err = registerCounterVec(reg, m.attempts); err != nil {
		return nil, err
	}
	if m.matches, err = registerCounterVec(reg, m.matches); err != nil {
		return nil, err
	}
	return m, nil
}

// registerCounterVec 已注册过同名指标时复用已有的采集器
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
