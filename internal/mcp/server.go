// Package mcp exposes the generators as Model Context Protocol tools over stdio.
package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/zodiac/internal/api"
	"github.com/ziadkadry99/zodiac/internal/calendar"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server backed by the reading service.
type Server struct {
	svc *api.Service
	mcp *server.MCPServer
	now func() time.Time
}

// NewServer creates an MCP server that answers from svc.
func NewServer(svc *api.Service) *Server {
	s := &Server{
		svc: svc,
		now: func() time.Time { return time.Now().UTC() },
	}

	s.mcp = server.NewMCPServer(
		"zodiac",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(dailyHoroscopeTool, s.handleDailyHoroscope)
	s.mcp.AddTool(compatibilityTool, s.handleCompatibility)
	s.mcp.AddTool(birthChartTool, s.handleBirthChart)
	s.mcp.AddTool(biorhythmTool, s.handleBiorhythm)
	s.mcp.AddTool(signInfoTool, s.handleSignInfo)
}

// Serve starts the MCP server on stdio. Stdout carries protocol messages,
// so all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) today() time.Time {
	return calendar.Day(s.now())
}
