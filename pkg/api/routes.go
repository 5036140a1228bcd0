package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ovplanner/ovplanner/pkg/planner"
	"github.com/ovplanner/ovplanner/pkg/transit"
)

const apiVersion = "1.0"

func (server *Server) getVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": apiVersion,
	})
}

func (server *Server) searchStops(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter name must be provided",
		})
	}

	threshold := c.QueryInt("threshold", server.config.Matcher.Threshold)
	limit := c.QueryInt("limit", server.config.Matcher.Limit)

	matches := server.matcher.Search(name, threshold, limit)
	if matches == nil {
		matches = []transit.StopMatch{}
	}

	return c.JSON(fiber.Map{
		"matches": matches,
	})
}

func (server *Server) planJourneys(c *fiber.Ctx) error {
	origin, destination, err := server.resolveEndpoints(c)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	maxTransfers := c.QueryInt("max_transfers", server.config.Planner.MaxTransfers)
	if maxTransfers < 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter max_transfers must not be negative",
		})
	}

	journeys, err := server.planner.FindJourneys(origin.ID, destination.ID, maxTransfers)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrStopNotFound):
			c.SendStatus(fiber.StatusNotFound)
		case errors.Is(err, planner.ErrResourceExceeded):
			c.SendStatus(fiber.StatusUnprocessableEntity)
		default:
			c.SendStatus(fiber.StatusInternalServerError)
		}

		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if modeQuery := c.Query("mode"); modeQuery != "" {
		transportType, err := transit.ParseTransportType(modeQuery)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		journeys = planner.FilterJourneys(journeys, planner.ModeOnly(transportType))
	}

	return c.JSON(fiber.Map{
		"origin":      origin,
		"destination": destination,
		"journeys":    journeys,
	})
}

func (server *Server) directConnections(c *fiber.Ctx) error {
	origin, destination, err := server.resolveEndpoints(c)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	legs, err := server.planner.DirectConnections(origin.ID, destination.ID)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if legs == nil {
		legs = []transit.Leg{}
	}

	return c.JSON(fiber.Map{
		"origin":      origin,
		"destination": destination,
		"connections": legs,
	})
}

// resolveEndpoints turns origin/destination query parameters into stops.
// Exact stop IDs are accepted; anything else goes through the fuzzy matcher
// and the best match wins.
func (server *Server) resolveEndpoints(c *fiber.Ctx) (*transit.Stop, *transit.Stop, error) {
	origin, err := server.resolveStop(c.Query("origin"))
	if err != nil {
		return nil, nil, err
	}

	destination, err := server.resolveStop(c.Query("destination"))
	if err != nil {
		return nil, nil, err
	}

	return origin, destination, nil
}

func (server *Server) resolveStop(query string) (*transit.Stop, error) {
	if query == "" {
		return nil, errors.New("origin and destination parameters must be provided")
	}

	if stop := server.index.Stop(query); stop != nil {
		return stop, nil
	}

	matches := server.matcher.Search(query, server.config.Matcher.Threshold, server.config.Matcher.Limit)
	if len(matches) == 0 {
		return nil, errors.New("no stop matches " + query)
	}

	return matches[0].Stop, nil
}
