package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo

	ServerName    = "pdf-reader"
	ServerVersion = "1.0.0"

	Instructions = `The PDF Reader allows you to read PDFs on the local filesystem.
It supports password-protected and unprotected PDFs.

Ensure that you always use an absolute path for file_path when calling read_pdf.
`

	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//artifact staging
	ArtifactDirName = "pdf_reader_extracts"
	SessionIDLength = 8

	//retention
	RetentionWindow = 24 * time.Hour
	SweepInterval   = 1 * time.Hour

	//per-page extraction guard, some PDFs hang the text layout walk
	PageExtractTimeout = 10 * time.Second

	//admin server timeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//admin server listening port (health + metrics)
	AdminListenAddr = ":3000"

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisSessionStore = 0

	//sessions are advisory bookkeeping, they age out with the artifacts
	RedisSessionTTL = RetentionWindow
)
