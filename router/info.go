package router

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion"`
	NumGoroutines int    `json:"numGoroutines"`
	HeapAlloc     uint64 `json:"heapAlloc"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	UptimeSeconds int    `json:"uptimeSeconds"`
	Hostname      string `json:"hostname,omitempty"`
}

type DatabaseInfo struct {
	Status           string `json:"status"`
	TotalConns       int    `json:"totalConns,omitempty"`
	IdleConns        int    `json:"idleConns,omitempty"`
	AcquiredConns    int    `json:"acquiredConns,omitempty"`
	MaxConns         int    `json:"maxConns,omitempty"`
	MigrationVersion *uint  `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool  `json:"migrationDirty,omitempty"`
}

type InfoResponse struct {
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}
