// Package api exposes the routing engine over HTTP for the swap UI and
// discovery listings.
package api

import (
	"math/big"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"blitzswap/internal/config"
	"blitzswap/internal/model"
	"blitzswap/internal/pool"
	"blitzswap/internal/router"
)

// Server wires the quote and pool endpoints onto a fiber app.
type Server struct {
	app      *fiber.App
	router   *router.Router
	registry *pool.Registry
	logger   *zap.Logger
}

// NewServer builds the HTTP server over the given router and registry.
func NewServer(rt *router.Router, registry *pool.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		router:   rt,
		registry: registry,
		logger:   logger,
	}

	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/api/quote", s.handleQuote)
	s.app.Get("/api/pools", s.handlePools)

	return s
}

// App returns the underlying fiber app, used by request-level tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// handleQuote serves GET /api/quote?input=&output=&amount=. Assets may be
// given as symbols (USDC) or full coin types. "No route" maps to 404 and a
// source failure to 503, so the UI can render "no pool found" and "price
// unavailable, retry" differently.
func (s *Server) handleQuote(c *fiber.Ctx) error {
	inputParam := c.Query("input")
	outputParam := c.Query("output")
	amountParam := c.Query("amount")

	if inputParam == "" || outputParam == "" || amountParam == "" {
		return badRequest(c, "input, output and amount are required")
	}

	input := config.ResolveAsset(inputParam)
	output := config.ResolveAsset(outputParam)
	if input == output {
		return badRequest(c, "input and output assets cannot be the same")
	}

	amount, ok := new(big.Int).SetString(amountParam, 10)
	if !ok {
		return badRequest(c, "invalid amount format")
	}
	if amount.Sign() <= 0 {
		return badRequest(c, "amount must be greater than zero")
	}

	route, ok, err := s.router.FindBestRoute(c.Context(), input, output, amount)
	if err != nil {
		s.logger.Error("quote failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(ErrorResponse{Error: "price unavailable, retry"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(ErrorResponse{Error: "no pool found"})
	}

	return c.JSON(toQuoteResponse(route))
}

// handlePools serves GET /api/pools: every resolvable pool in the supported
// asset universe.
func (s *Server) handlePools(c *fiber.Ctx) error {
	pools, err := s.registry.FindAllPools(c.Context())
	if err != nil {
		s.logger.Error("pool listing failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(ErrorResponse{Error: "pool data unavailable, retry"})
	}
	if pools == nil {
		pools = []model.PoolInfo{}
	}
	return c.JSON(pools)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}
