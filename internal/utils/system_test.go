package utils

import (
	"errors"
	"testing"
)

func stubResolver(t *testing.T, hostname string, hostErr error, hosts map[string][]string, addrs map[string][]string) {
	t.Helper()
	origHostname, origLookupHost, origLookupAddr := hostnameFunc, lookupHostFunc, lookupAddrFunc
	t.Cleanup(func() {
		hostnameFunc, lookupHostFunc, lookupAddrFunc = origHostname, origLookupHost, origLookupAddr
	})

	hostnameFunc = func() (string, error) { return hostname, hostErr }
	lookupHostFunc = func(h string) ([]string, error) {
		if ips, ok := hosts[h]; ok {
			return ips, nil
		}
		return nil, errors.New("no such host")
	}
	lookupAddrFunc = func(a string) ([]string, error) {
		if names, ok := addrs[a]; ok {
			return names, nil
		}
		return nil, errors.New("no PTR record")
	}
}

func TestGetFQDN(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		hostErr  error
		hosts    map[string][]string
		addrs    map[string][]string
		expected string
	}{
		{"AlreadyQualified", "box.example.com", nil, nil, nil, "box.example.com"},
		{"TrailingDot", "box.example.com.", nil, nil, nil, "box.example.com"},
		{"ReverseLookup", "box", nil,
			map[string][]string{"box": {"10.0.0.5"}},
			map[string][]string{"10.0.0.5": {"box.corp.example.org."}},
			"box.corp.example.org"},
		{"SkipsUnqualifiedNames", "box", nil,
			map[string][]string{"box": {"10.0.0.5", "10.0.0.6"}},
			map[string][]string{"10.0.0.5": {"box"}, "10.0.0.6": {"box.lan."}},
			"box.lan"},
		{"UnresolvableHost", "box", nil, nil, nil, "box"},
		{"NoPTRRecord", "box", nil, map[string][]string{"box": {"10.0.0.5"}}, nil, "box"},
		{"HostnameError", "", errors.New("boom"), nil, nil, "localhost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stubResolver(t, tc.hostname, tc.hostErr, tc.hosts, tc.addrs)
			if got := GetFQDN(); got != tc.expected {
				t.Errorf("GetFQDN() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDefaultSender(t *testing.T) {
	stubResolver(t, "santa.example.com", nil, nil, nil)
	if got := DefaultSender(); got != "donotreply@santa.example.com" {
		t.Errorf("DefaultSender() = %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"santa@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"donotreply@localhost", false},
		{"", false},
		{"no-at-sign", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsValidEmail(tc.input); got != tc.expected {
				t.Errorf("IsValidEmail(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "email", "emails"); got != "email" {
		t.Errorf("Pluralize(1) = %q", got)
	}
	if got := Pluralize(3, "email", "emails"); got != "emails" {
		t.Errorf("Pluralize(3) = %q", got)
	}
}
