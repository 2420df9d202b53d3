package api

import (
	"context"

	"github/hdforge/go-wallet/internal/util"
)

// NotificationKind identifies a user-facing notification
type NotificationKind string

const (
	NotificationMnemonicGenerated NotificationKind = "mnemonic_generated"
	NotificationWalletAdded       NotificationKind = "wallet_added"
	NotificationChainSwitched     NotificationKind = "chain_switched"
	NotificationSessionCleared    NotificationKind = "session_cleared"
	NotificationWalletSaved       NotificationKind = "wallet_saved"
	NotificationWalletDeleted     NotificationKind = "wallet_deleted"
)

// Notifier receives notifications for the user that triggered an action.
// Notifications never carry key material.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, message string)
}

type logNotifier struct{}

// NewNotifier returns a Notifier writing notifications as structured log events
//
//nolint:ireturn
func NewNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(ctx context.Context, kind NotificationKind, message string) {
	util.LogFromContext(ctx).Info().
		Str("notification", string(kind)).
		Msg(message)
}
