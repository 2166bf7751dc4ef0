package main

import "time"

type Config struct {
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=1024"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	TokenDuration        time.Duration `env:"TOKEN_DURATION,default=24h"`
	AllowMultipleSession bool          `env:"ALLOW_MULTIPLE_SESSIONS,default=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
}
