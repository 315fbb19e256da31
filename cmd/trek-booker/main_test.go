package main

import (
	"context"
	"net"
	"testing"
	"time"
	"trekBooker/internal/config"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStartupError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := &config.Config{
		Env: envProd,
		Database: config.Database{
			Host:    "127.0.0.1",
			Port:    port,
			User:    "postgres",
			DBName:  "trek_booker",
			SSLMode: "disable",
		},
		HTTPServer: config.HTTPServer{Address: "127.0.0.1:0", ShutdownTimeout: time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx, slogdiscard.NewDiscardLogger(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "init storage")
}
