package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("update account %q: %w", "a1", ErrorNotFound)
	require.True(t, errors.Is(err, ErrorNotFound))
	require.False(t, errors.Is(err, ErrNoCompanySelected))
}
