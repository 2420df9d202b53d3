//go:build wireinject

package api

import (
	"github.com/dropbox/godropbox/time2"
	"github.com/google/wire"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/metrics"
	"github/hdforge/go-wallet/internal/store"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewSessions,
	NewCredentialCache,
	NewNotifier,
	metrics.New,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewStore, NewClock, NoTest)
	return new(Server), nil
}

// InitNewServerWithStore returns a new Server instance with the given store and clock instances.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithStore(
	_ config.Server,
	_ *store.Store,
	_ time2.Clock,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
