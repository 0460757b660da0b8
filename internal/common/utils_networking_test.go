package common

import (
	"net"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCidrs(t *testing.T) {
	cidrs := []string{"192.168.1.0/24", "bad", "10.0.0.1"}
	parsed, warnings, err := ParseCidrs(cidrs)
	require.NoError(t, err)
	assert.Len(t, parsed, 2)
	assert.Len(t, warnings, 1)
}

func TestParseCidrsWithNoValidCidrs(t *testing.T) {
	_, warnings, err := ParseCidrs([]string{"bad"})
	assert.Error(t, err)
	assert.Len(t, warnings, 1)
}

func TestExtractRequestIp(t *testing.T) {
	request := httptest.NewRequest("GET", "/", nil)
	request.RemoteAddr = "192.0.2.10:4321"
	ip, err := extractRequestIp(request)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", ip.String())

	request.Header.Set("X-Forwarded-For", "10.1.1.1, 192.0.2.10")
	ip, err = extractRequestIp(request)
	require.NoError(t, err)
	assert.Equal(t, "10.1.1.1", ip.String())
}

func TestIsIpAllowed(t *testing.T) {
	cidrs, _, err := ParseCidrs([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	assert.True(t, isIpAllowed(net.ParseIP("10.2.3.4"), cidrs))
	assert.False(t, isIpAllowed(net.ParseIP("192.168.0.1"), cidrs))
}
