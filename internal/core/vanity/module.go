package vanity

import (
	"github.com/prometheus/client_golang/prometheus"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	vanityconfig "github.com/weisyn/addrkit/internal/config/vanity"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	corelog "github.com/weisyn/addrkit/internal/core/infrastructure/log"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// ModuleParams 定义靓号搜索模块的依赖参数
type ModuleParams struct {
	fx.In

	Deriver    crypto.AddressDeriver
	KeyManager *key.KeyManager
	Network    *networkconfig.NetworkOptions
	Options    *vanityconfig.VanityOptions
	Logger     log.Logger            `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// Module 返回靓号搜索模块
func Module() fx.Option {
	return fx.Module("vanity",
		fx.Provide(ProvideSearcher),
	)
}

// ProvideSearcher 提供靓号搜索服务
func ProvideSearcher(params ModuleParams) (*Searcher, error) {
	metrics, err := NewMetrics(params.Registerer)
	if err != nil {
		return nil, err
	}
	return NewSearcher(
		params.Deriver,
		params.KeyManager,
		params.Network,
		params.Options,
		metrics,
		corelog.NewModuleLogger(params.Logger, "vanity"),
	), nil
}
