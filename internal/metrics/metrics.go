package metrics

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

const (
	Namespace  = "hdforge"
	chainLabel = "chain"
)

// Service owns the metrics registry of one server instance
type Service struct {
	Registry *prometheus.Registry

	walletsDerived    *prometheus.CounterVec
	sessionsGenerated *prometheus.CounterVec
	walletsSaved      *prometheus.CounterVec
}

// New creates the registry and registers the runtime and domain collectors
func New(_ config.Server) (*Service, error) {
	s := &Service{
		Registry: prometheus.NewRegistry(),
		walletsDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "wallets_derived_total",
			Help:      "Number of wallets derived by sessions.",
		}, []string{chainLabel}),
		sessionsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sessions_generated_total",
			Help:      "Number of mnemonics generated by sessions.",
		}, []string{chainLabel}),
		walletsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "wallets_saved_total",
			Help:      "Number of wallets saved by users.",
		}, []string{chainLabel}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.walletsDerived,
		s.sessionsGenerated,
		s.walletsSaved,
	} {
		if err := s.Registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics collector")
		}
	}

	return s, nil
}

// WalletsDerived counts n derived wallets of chain c
func (s *Service) WalletsDerived(c chain.Chain, n int) {
	s.walletsDerived.WithLabelValues(c.Short()).Add(float64(n))
}

// SessionGenerated counts a generated mnemonic
func (s *Service) SessionGenerated(c chain.Chain) {
	s.sessionsGenerated.WithLabelValues(c.Short()).Inc()
}

// WalletSaved counts a newly saved wallet
func (s *Service) WalletSaved(c chain.Chain) {
	s.walletsSaved.WithLabelValues(c.Short()).Inc()
}

// Handler serves the registry in the prometheus exposition format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{Registry: s.Registry})
}
