package shadow

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil error", nil, ExitSuccess},
		{"store corrupt", ErrStoreCorrupt, ExitStoreError},
		{"invalid bin path", ErrInvalidBinPath, ExitInvalidArguments},
		{"ambiguous shadow", ErrAmbiguousShadow, ExitInvalidArguments},
		{"shadow not found", ErrShadowNotFound, ExitCommandNotFound},
		{"original not found", ErrOriginalNotFound, ExitCommandNotFound},
		{"command failed", ErrCommandFailed, ExitCommandFailed},
		{"already shadowed", ErrAlreadyShadowed, ExitDuplicate},
		{"name collision", ErrNameCollision, ExitDuplicate},
		{"unknown error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		err := fmt.Errorf("'ls' in /opt/bin: %w", ErrAlreadyShadowed)
		if got := ExitCodeFor(err); got != ExitDuplicate {
			t.Errorf("ExitCodeFor(wrapped) = %d, want %d", got, ExitDuplicate)
		}
	})
}
