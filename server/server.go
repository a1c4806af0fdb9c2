// Package server provides the HTTP API for purl-component, including the
// component endpoint, the GraphQL endpoint and the health check.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/graphql-go/graphql"
	"github.com/ortelius/purl-component/component"
	"github.com/ortelius/purl-component/config"
	gqlschema "github.com/ortelius/purl-component/graphql"
	"github.com/ortelius/purl-component/model"
	"github.com/ortelius/purl-component/util"
	"go.uber.org/zap"
)

// NewApp creates the Fiber app with middleware and routes
func NewApp(cfg config.Config, log *zap.Logger) (*fiber.App, error) {
	schema, err := gqlschema.CreateSchema()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "purl-component API " + util.Version,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(model.HealthResponse{
			Status:  "healthy",
			Version: util.Version,
		})
	})

	// API routes
	api := app.Group("/api/v1")
	api.Post("/component", PostComponent(log))
	api.Post("/graphql", GraphQLHandler(schema, log))

	return app, nil
}

// Run builds the app and listens on the configured port until the listener fails
func Run(cfg config.Config, log *zap.Logger) error {
	app, err := NewApp(cfg, log)
	if err != nil {
		return err
	}

	log.Sugar().Infof("Starting server on port %s", cfg.Port)
	log.Sugar().Infof("GraphQL endpoint available at /api/v1/graphql")
	return app.Listen(":" + cfg.Port)
}

// ============================================================================
// GraphQL Handler
// ============================================================================

// GraphQLHandler handles GraphQL requests
func GraphQLHandler(schema graphql.Schema, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var params struct {
			Query         string                 `json:"query"`
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}

		if err := c.BodyParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []map[string]interface{}{
					{
						"message": "Invalid request body",
					},
				},
			})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  params.Query,
			VariableValues: params.Variables,
			OperationName:  params.OperationName,
			Context:        c.UserContext(),
		})

		if len(result.Errors) > 0 {
			log.Sugar().Infof("GraphQL errors: %v", result.Errors)
		}

		return c.JSON(result)
	}
}

// ============================================================================
// POST Handlers
// ============================================================================

// PostComponent handles POST requests resolving a single PURL to its component name
func PostComponent(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ComponentRequest

		// Parse request body
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ComponentResponse{
				Success: false,
				Message: "Invalid request body: " + err.Error(),
			})
		}

		// non-string values are rejected by the extractor like an empty string
		purl, _ := req.Purl.(string)
		result, err := component.ResolveValue(req.Purl)
		if err != nil {
			return rejectPurl(c, log, purl, err)
		}

		log.Debug("resolved purl",
			zap.String("purl", purl),
			zap.String("component", result.Component),
			zap.String("rule", string(result.Rule)),
		)

		return c.Status(fiber.StatusOK).JSON(model.ComponentResponse{
			Success: true,
			Message: "Component resolved using the " + string(result.Rule) + " rule",
			Result:  &result,
		})
	}
}

func rejectPurl(c *fiber.Ctx, log *zap.Logger, purl string, err error) error {
	kind := component.KindOf(err)

	log.Info("rejected purl",
		zap.String("purl", purl),
		zap.String("kind", kind),
		zap.Error(err),
	)

	return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ComponentResponse{
		Success:   false,
		Message:   err.Error(),
		ErrorKind: kind,
	})
}
