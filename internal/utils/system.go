package utils

import (
	"net"
	"os"
	"strings"
)

// Resolver hooks, replaced in tests.
var (
	hostnameFunc   = os.Hostname
	lookupHostFunc = net.LookupHost
	lookupAddrFunc = net.LookupAddr
)

// DefaultSenderLocalPart is the mailbox used when no sender is configured.
const DefaultSenderLocalPart = "donotreply"

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := hostnameFunc()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// GetFQDN returns the fully qualified domain name of this machine.
// The hostname is resolved and its addresses reverse-resolved; the first name
// containing a dot wins. Falls back to the bare hostname, or "localhost" when
// even that is unavailable.
func GetFQDN() string {
	hostname, err := GetHostname()
	if err != nil || hostname == "" {
		return "localhost"
	}
	if strings.Contains(hostname, ".") {
		return strings.TrimSuffix(hostname, ".")
	}

	addrs, err := lookupHostFunc(hostname)
	if err != nil {
		return hostname
	}
	for _, addr := range addrs {
		names, err := lookupAddrFunc(addr)
		if err != nil {
			continue
		}
		for _, name := range names {
			name = strings.TrimSuffix(name, ".")
			if strings.Contains(name, ".") {
				return name
			}
		}
	}
	return hostname
}

// DefaultSender returns donotreply@<fqdn>.
func DefaultSender() string {
	return DefaultSenderLocalPart + "@" + GetFQDN()
}
