// Package vanity 在随机密钥中搜索带指定前缀的地址
//
// 每个 worker 独立生成密钥并推导地址，推导本身无共享状态；
// 命中第一个结果后取消其余 worker。
package vanity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	networkconfig "github.com/weisyn/addrkit/internal/config/network"
	vanityconfig "github.com/weisyn/addrkit/internal/config/vanity"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/addrkit/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/addrkit/pkg/types"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidPrefix 前缀包含目标编码之外的字符，或与网络前缀不符
	ErrInvalidPrefix = errors.New("invalid vanity prefix")
	// ErrAttemptsExhausted 达到最大尝试次数仍未命中
	ErrAttemptsExhausted = errors.New("vanity search attempts exhausted")
)

// KeySource 密钥来源，key.KeyManager 满足该接口
type KeySource interface {
	GenerateKeyPair() ([]byte, *btcec.PublicKey, error)
}

// Request 一次搜索请求，零值字段使用配置中的默认值
type Request struct {
	Prefix      string
	Format      types.AddressFormat
	Testnet     bool
	Workers     int
	MaxAttempts uint64
}

// Match 命中的结果
type Match struct {
	Address    string              `json:"address"`
	Format     types.AddressFormat `json:"format"`
	Network    string              `json:"network"`
	PrivateKey []byte              `json:"private_key"`
	PublicKey  []byte              `json:"public_key"`
	Attempts   uint64              `json:"attempts"`
	Elapsed    time.Duration       `json:"elapsed"`
}

// Searcher 靓号搜索服务
type Searcher struct {
	deriver crypto.AddressDeriver
	keys    KeySource
	network *networkconfig.NetworkOptions
	options *vanityconfig.VanityOptions
	metrics *Metrics
	logger  log.Logger
}

// NewSearcher 创建靓号搜索服务
func NewSearcher(
	deriver crypto.AddressDeriver,
	keys KeySource,
	network *networkconfig.NetworkOptions,
	options *vanityconfig.VanityOptions,
	metrics *Metrics,
	logger log.Logger,
) *Searcher {
	if network == nil {
		network = networkconfig.New(nil).GetOptions()
	}
	if options == nil {
		options = vanityconfig.New(nil).GetOptions()
	}
	if metrics == nil {
		metrics, _ = NewMetrics(nil)
	}
	return &Searcher{
		deriver: deriver,
		keys:    keys,
		network: network,
		options: options,
		metrics: metrics,
		logger:  logger,
	}
}

// ValidatePrefix 检查前缀能否出现在目标格式的地址中
func ValidatePrefix(prefix string, format types.AddressFormat, selector types.NetworkSelector) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty prefix", ErrInvalidPrefix)
	}

	switch format {
	case types.AddressFormatP2PKH:
		for _, c := range prefix {
			if !strings.ContainsRune(address.Base58Alphabet, c) {
				return fmt.Errorf("%w: %q is not a base58 character", ErrInvalidPrefix, c)
			}
		}
		lead := address.P2PKHLeadChars(selector.P2PKHVersion)
		if !strings.ContainsRune(lead, rune(prefix[0])) {
			return fmt.Errorf("%w: %s addresses start with one of %q", ErrInvalidPrefix, selector.Name, lead)
		}
		if len(prefix) > address.MaxBase58CheckLen {
			return fmt.Errorf("%w: longer than %d characters", ErrInvalidPrefix, address.MaxBase58CheckLen)
		}
		return nil
	case types.AddressFormatBech32:
		head := address.SegwitHead(selector.Bech32HRP)
		if len(prefix) <= len(head) {
			if !strings.HasPrefix(head, prefix) {
				return fmt.Errorf("%w: must start with %q", ErrInvalidPrefix, head)
			}
			return nil
		}
		if !strings.HasPrefix(prefix, head) {
			return fmt.Errorf("%w: must start with %q", ErrInvalidPrefix, head)
		}
		for _, c := range prefix[len(head):] {
			if !strings.ContainsRune(address.Bech32Charset, c) {
				return fmt.Errorf("%w: %q is not a bech32 character", ErrInvalidPrefix, c)
			}
		}
		if limit := address.SegwitAddressLen(selector.Bech32HRP); len(prefix) > limit {
			return fmt.Errorf("%w: longer than %d characters", ErrInvalidPrefix, limit)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidPrefix, format)
	}
}

// Search 并发搜索直到命中、达到最大尝试次数或 ctx 被取消
func (s *Searcher) Search(ctx context.Context, req Request) (*Match, error) {
	format := req.Format
	if format == "" {
		format = s.options.Format
	}
	workers := req.Workers
	if workers <= 0 {
		workers = s.options.Workers
	}
	if workers <= 0 {
		workers = 1
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = s.options.MaxAttempts
	}

	prefix := req.Prefix
	if format == types.AddressFormatBech32 {
		prefix = strings.ToLower(prefix)
	}
	selector := s.network.Selector(req.Testnet)
	if err := ValidatePrefix(prefix, format, selector); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Infof("开始靓号搜索: prefix=%s format=%s network=%s workers=%d", prefix, format, selector.Name, workers)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var (
		attempts atomic.Uint64
		once     sync.Once
		match    *Match
		start    = time.Now()
	)

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				if gctx.Err() != nil {
					return nil
				}

				n := attempts.Inc()
				if maxAttempts > 0 && n > maxAttempts {
					return ErrAttemptsExhausted
				}

				priv, pub, err := s.keys.GenerateKeyPair()
				if err != nil {
					return err
				}
				addr, err := s.deriver.Derive(pub, selector, format)
				if err != nil {
					key.Wipe(priv)
					return err
				}
				s.metrics.attempts.WithLabelValues(string(format)).Inc()

				if s.logger != nil && s.options.ProgressInterval > 0 && n%s.options.ProgressInterval == 0 {
					s.logger.Infof("靓号搜索进度: attempts=%d elapsed=%s", n, time.Since(start).Round(time.Millisecond))
				}

				if !strings.HasPrefix(addr, prefix) {
					key.Wipe(priv)
					continue
				}

				won := false
				once.Do(func() {
					won = true
					s.metrics.matches.WithLabelValues(string(format)).Inc()
					match = &Match{
						Address:    addr,
						Format:     format,
						Network:    selector.Name,
						PrivateKey: priv,
						PublicKey:  pub.SerializeCompressed(),
						Attempts:   n,
						Elapsed:    time.Since(start),
					}
					cancel()
				})
				if !won {
					key.Wipe(priv)
				}
				return nil
			}
		})
	}

	err := g.Wait()
	if match != nil {
		if s.logger != nil {
			s.logger.Infof("靓号搜索命中: address=%s attempts=%d elapsed=%s", match.Address, match.Attempts, match.Elapsed.Round(time.Millisecond))
		}
		return match, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, ctx.Err()
}
