package unidec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.senan.xyz/unidec"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for token, want := range map[string]unidec.Policy{
		"":         unidec.PolicyDefault,
		"ignore":   unidec.PolicyIgnore,
		"replace":  unidec.PolicyReplace,
		"preserve": unidec.PolicyPreserve,
		"invalid":  unidec.PolicyPreserve,
		"strict":   unidec.PolicyStrict,
	} {
		got, err := unidec.ParsePolicy(token)
		require.NoError(t, err, "token %q", token)
		require.Equal(t, want, got, "token %q", token)
	}

	for _, token := range []string{"bogus", "STRICT", "Ignore", "default ", " "} {
		_, err := unidec.ParsePolicy(token)
		var policyErr unidec.InvalidPolicyError
		require.ErrorAs(t, err, &policyErr, "token %q", token)
		require.Equal(t, token, policyErr.Token)
	}
}

func TestPolicyString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "default", unidec.PolicyDefault.String())
	require.Equal(t, "strict", unidec.PolicyStrict.String())
	require.Equal(t, "preserve", unidec.PolicyPreserve.String())
}
