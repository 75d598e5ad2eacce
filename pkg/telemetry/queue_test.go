package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	testCases := []struct {
		topic   string
		pattern string
		expect  bool
	}{
		{"host/brick/readings", "host/brick/readings", true},
		{"host/brick/readings", "+/+/readings", true},
		{"host/brick/readings", "host/#", true},
		{"host/brick/readings", "#", true},
		{"host/brick/readings", "other/#", false},
		{"host/brick", "host/brick/readings", false},
	}

	for _, tc := range testCases {
		t.Run(tc.topic+" "+tc.pattern, func(t *testing.T) {
			require.Equal(t, tc.expect, MatchTopic(tc.topic, tc.pattern))
		})
	}
}

func TestClientOptionsFromURL(t *testing.T) {
	opts, prefix, err := ClientOptionsFromURL("mqtt://user:pw@localhost:1883/nxt/")
	require.NoError(t, err)
	require.Equal(t, "nxt/", prefix)
	require.Equal(t, "user", opts.Username)
	require.Equal(t, "pw", opts.Password)
	require.Len(t, opts.Servers, 1)
	require.Equal(t, "tcp", opts.Servers[0].Scheme)
	require.Equal(t, "localhost:1883", opts.Servers[0].Host)

	_, prefix, err = ClientOptionsFromURL("tls://broker:8883")
	require.NoError(t, err)
	require.Empty(t, prefix)
}
