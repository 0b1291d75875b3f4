package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationErrorNamesOption(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("size", "stroke paint already defines the divider size", nil)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "size", cfgErr.Option)
	require.Equal(t, "configuration error: size: stroke paint already defines the divider size", err.Error())
}

func TestConfigurationErrorWithoutOption(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no drawable")
	err := NewConfigurationError("", "failed to get size", underlying)

	require.Equal(t, "configuration error: failed to get size", err.Error())
	require.True(t, stdErrors.Is(err, underlying))
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("listkit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "listkit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "listkit.yaml:12")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("divider.size", "must not be negative", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "divider.size", validationErr.Field)
	require.Contains(t, validationErr.Message, "must not be negative")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var cfgErr *ConfigurationError
	require.Empty(t, cfgErr.Error())
	require.NoError(t, cfgErr.Unwrap())

	var parseErr *ParseError
	require.Empty(t, parseErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
