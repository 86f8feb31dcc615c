package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"pacplan/internal/ports"
)

const defaultKeyRefreshTimeout = 120 * time.Second
const defaultKeyringPackage = "archlinux-keyring"

// RecoveryPolicy handles the distinguished full-system-update step.
// When the update fails, the trust keyring is usually stale: the
// remediation reinstalls the keyring package, re-initializes and
// repopulates the key trust store, and attempts a bounded key refresh
// that is allowed to fail. The update is then retried exactly once.
type RecoveryPolicy struct {
	Runner            ports.RunnerPort
	KeyringPackage    string
	KeyRefreshTimeout time.Duration
	UpdateTimeout     time.Duration
}

func NewRecoveryPolicy(runner ports.RunnerPort) *RecoveryPolicy {
	return &RecoveryPolicy{
		Runner:            runner,
		KeyringPackage:    defaultKeyringPackage,
		KeyRefreshTimeout: defaultKeyRefreshTimeout,
	}
}

// Update runs the system update, applying at most one remediation
// cycle and one retry on failure.
func (p *RecoveryPolicy) Update(ctx context.Context) error {
	firstErr := p.update(ctx)
	if firstErr == nil {
		return nil
	}
	log.Warn().Err(firstErr).Msg("system update failed, refreshing trust keyring")

	p.remediate(ctx)

	if retryErr := p.update(ctx); retryErr != nil {
		return fmt.Errorf("update failed after keyring remediation: %w", retryErr)
	}
	return nil
}

func (p *RecoveryPolicy) update(ctx context.Context) error {
	return p.run(ctx, ports.Command{
		Path:    "pacman",
		Args:    []string{"-Syu", "--noconfirm"},
		Elevate: true,
		Timeout: p.UpdateTimeout,
	})
}

// remediate is best-effort: each failing remediation command is logged
// and the sequence continues, since the retry decides the outcome.
func (p *RecoveryPolicy) remediate(ctx context.Context) {
	commands := []ports.Command{
		{Path: "pacman", Args: []string{"-Sy", "--noconfirm", p.KeyringPackage}, Elevate: true},
		{Path: "pacman-key", Args: []string{"--init"}, Elevate: true},
		{Path: "pacman-key", Args: []string{"--populate"}, Elevate: true},
		{Path: "pacman-key", Args: []string{"--refresh-keys"}, Elevate: true, Timeout: p.KeyRefreshTimeout},
	}
	for _, cmd := range commands {
		if err := p.run(ctx, cmd); err != nil {
			log.Warn().Err(err).
				Str("command", cmd.Path+" "+strings.Join(cmd.Args, " ")).
				Msg("keyring remediation command failed, continuing")
		}
	}
}

func (p *RecoveryPolicy) run(ctx context.Context, cmd ports.Command) error {
	result, err := p.Runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if result.TimedOut {
		return fmt.Errorf("%s timed out", cmd.Path)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s failed with exit code %d: %s",
			cmd.Path, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}
