package composer

import (
	"fmt"
	"strings"

	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/templates"
)

const importsHeader = `/**
 * Express server.
 * @module server
 */
import dotenv from 'dotenv';
import express from 'express';
`

const importsFooter = `import testRouter from './routes/test.js';
import response from './template/response.js';
`

const middlewareHeader = `/**
 * Express application instance.
 * @type {express.Application}
 */
const app = express();

// Configurations.
dotenv.config();
app.use(express.json());
`

const middlewareFooter = `
const PORT = process.env.PORT || %d;
const BASE_URL = process.env.BASE_URL || 'http://localhost:';
`

const routesBody = `
// Routes.
const namespace = %s;
app.use(namespace, testRouter);

app.use((_, res) => {
    return response(
        res,
        false,
        404,
        '404 not found!'
    );
});
`

const errorHandlingBody = `
// Error Handler (Should be last).
app.use(errorHandler);
`

// line is a fragment line emitted only when its predicate holds.
type line struct {
	when func(configschema.Config) bool
	text string
}

var optionalImports = []line{
	{withCORS, "import cors from 'cors';"},
	{withMongoDB, "import { connectDB } from './config/db.js';"},
	{withLogger, "import logger from './config/logger.js';"},
	{configschema.Config.MorganEnabled, "import morganMiddleware from './config/morgan.js';"},
	{withErrorHandler, "import { errorHandler } from './middleware/error-handler.js';"},
}

var optionalMiddleware = []line{
	{withCORS, "app.use(cors({ origin: '*' }));"},
	{configschema.Config.MorganEnabled, "\n// Morgan logging middleware\napp.use(morganMiddleware);"},
}

type startKey struct {
	mongo  bool
	logger bool
}

// serverStartVariants maps (UseMongoDB, UseLogger) to the server-start template.
var serverStartVariants = map[startKey]string{
	{mongo: true, logger: true}:   "server_start_db_logger.js.tmpl",
	{mongo: true, logger: false}:  "server_start_db_console.js.tmpl",
	{mongo: false, logger: true}:  "server_start_logger.js.tmpl",
	{mongo: false, logger: false}: "server_start_console.js.tmpl",
}

// ServerEntry renders server.js from its fragments:
// imports, middleware, routes, error handling, server start.
func (c *Composer) ServerEntry(cfg configschema.Config) (string, error) {
	start, err := c.serverStartFragment(cfg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(importsFragment(cfg))
	b.WriteString("\n")
	b.WriteString(middlewareFragment(cfg))
	b.WriteString(routesFragment(cfg))
	b.WriteString(errorHandlingFragment(cfg))
	b.WriteString(start)
	return b.String(), nil
}

func importsFragment(cfg configschema.Config) string {
	var b strings.Builder
	b.WriteString(importsHeader)
	writeLines(&b, optionalImports, cfg)
	b.WriteString(importsFooter)
	return b.String()
}

func middlewareFragment(cfg configschema.Config) string {
	var b strings.Builder
	b.WriteString(middlewareHeader)
	writeLines(&b, optionalMiddleware, cfg)
	fmt.Fprintf(&b, middlewareFooter, cfg.DefaultPort)
	return b.String()
}

func routesFragment(cfg configschema.Config) string {
	return fmt.Sprintf(routesBody, templates.QuoteSingle("/api/"+cfg.APIVersion+"/test"))
}

func errorHandlingFragment(cfg configschema.Config) string {
	if !cfg.UseErrorHandler {
		return ""
	}
	return errorHandlingBody
}

func (c *Composer) serverStartFragment(cfg configschema.Config) (string, error) {
	name := serverStartVariants[startKey{mongo: cfg.UseMongoDB, logger: cfg.UseLogger}]
	return c.loader.Render(name, cfg)
}

func writeLines(b *strings.Builder, lines []line, cfg configschema.Config) {
	for _, l := range lines {
		if l.when(cfg) {
			b.WriteString(l.text)
			b.WriteString("\n")
		}
	}
}
