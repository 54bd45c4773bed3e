package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	FlagProbeTimeout   = 5 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	UpstreamMaxConnsPerHost = 100
	UpstreamIdleConnTTL     = 1 * time.Minute
	UpstreamErrorBodyLimit  = 4 << 10
	UpstreamMaxRedirects    = 5
)

const (
	DBMaxOpenConns    = 4
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = 0
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

const (
	DefaultFlagProbeConcurrency = 4
)

const (
	DateHeaderLayout = "02 Jan 2006"
	KickoffLayout    = "3:04 pm"
)
