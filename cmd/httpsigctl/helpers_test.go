package main

import (
	"testing"

	"github.com/go-httpsig/httpsig/httpsig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderFlag(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantName  string
		wantValue string
		wantErr   bool
	}{
		{name: "basic", raw: "Host: example.com", wantName: "Host", wantValue: "example.com"},
		{name: "no colon", raw: "malformed", wantErr: true},
		{name: "extra spaces", raw: "X-Foo:   bar  ", wantName: "X-Foo", wantValue: "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, err := parseHeaderFlag(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseComponentFlagDerived(t *testing.T) {
	c, err := parseComponentFlag("@method")
	require.NoError(t, err)
	assert.Equal(t, httpsig.ComponentDerived, c.Kind())
	assert.Equal(t, `"@method"`, c.CanonicalName())
}

func TestParseComponentFlagWithModifiers(t *testing.T) {
	c, err := parseComponentFlag("content-digest;bs;req")
	require.NoError(t, err)
	assert.Equal(t, httpsig.ComponentField, c.Kind())
	assert.Contains(t, c.CanonicalName(), "bs")
	assert.Contains(t, c.CanonicalName(), "req")
}

func TestParseComponentFlagQueryParam(t *testing.T) {
	c, err := parseComponentFlag(`@query-param;name=Pet`)
	require.NoError(t, err)
	assert.Equal(t, `"@query-param";name="Pet"`, c.CanonicalName())
}

func TestParseComponentFlagUnknownModifier(t *testing.T) {
	_, err := parseComponentFlag("date;bogus")
	require.Error(t, err)
}

func TestParseComponentFlagsPropagatesError(t *testing.T) {
	_, err := parseComponentFlags([]string{"@method", "date;bogus"})
	require.Error(t, err)
}
