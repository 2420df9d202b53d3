package command_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/test"
	"github/hdforge/go-wallet/internal/util/command"
)

func TestWithServer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		var testError = errors.New("test error")

		s.Config.Logger.PrettyPrintConsole = false
		resultErr := command.WithServer(ctx, s.Config, func(ctx context.Context, s *api.Server) error {
			require.NoError(t, s.Store.Ping(ctx))
			assert.True(t, s.Ready())
			assert.Zero(t, s.Sessions.Len())

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestNewSubcommandGroup(t *testing.T) {
	var ran bool
	child := &cobra.Command{
		Use: "child",
		Run: func(_ *cobra.Command, _ []string) {
			ran = true
		},
	}

	group := command.NewSubcommandGroup("group", child)
	assert.Equal(t, "group", group.Use)
	assert.Equal(t, "group related subcommands", group.Short)

	group.SetArgs([]string{"child"})
	require.NoError(t, group.Execute())
	assert.True(t, ran)
}
