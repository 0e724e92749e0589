// Package services maps well-known port numbers to service labels. The name
// is a best-effort label from a fixed table, not a verified identification;
// no network or DNS activity is involved.
package services

// Unknown is returned for ports without a table entry.
const Unknown = "unknown"

var commonPorts = map[int]string{
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "dns",
	80:    "http",
	110:   "pop3",
	111:   "rpcbind",
	135:   "msrpc",
	139:   "netbios-ssn",
	143:   "imap",
	443:   "https",
	445:   "microsoft-ds",
	993:   "imaps",
	995:   "pop3s",
	1723:  "pptp",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5432:  "postgresql",
	5900:  "vnc",
	6379:  "redis",
	8080:  "http-proxy",
	8443:  "https-alt",
	27017: "mongodb",
}

// Name returns the service label for a port, or Unknown.
func Name(port int) string {
	if name, ok := commonPorts[port]; ok {
		return name
	}
	return Unknown
}
