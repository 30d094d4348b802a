package main

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/fatih/color"

	"github.com/ExAtom/futar-backend/internal/config"
	"github.com/ExAtom/futar-backend/internal/infrastructure"
	"github.com/ExAtom/futar-backend/pkg/openapi"
	"github.com/ExAtom/futar-backend/pkg/postman"
)

type CollectionCmd struct {
	Stdout bool `help:"Write the collection to stdout instead of the output directory."`
}

func (c *CollectionCmd) Run(g *Globals) error {
	cfg, infra, err := setup(g)
	if err != nil {
		return err
	}

	coll, err := postman.Compile(&cfg.Collection, infra.Routes.Controllers())
	if err != nil {
		return fmt.Errorf("compile collection: %w", err)
	}

	data, err := postman.MarshalJSON(coll)
	if err != nil {
		return err
	}

	if c.Stdout {
		return writeStdout(data)
	}

	path, changed, err := writeArtifact(context.Background(), infra, cfg.Output.Collection, data)
	if err != nil {
		return err
	}

	requests := 0
	for _, f := range coll.Item {
		requests += len(f.Item)
	}
	summary(path, data, changed, fmt.Sprintf("%d folders, %d requests", len(coll.Item), requests))
	return nil
}

type OpenAPICmd struct {
	Stdout bool `help:"Write the document to stdout instead of the output directory."`
}

func (c *OpenAPICmd) Run(g *Globals) error {
	cfg, infra, err := setup(g)
	if err != nil {
		return err
	}

	ctx := context.Background()

	doc, err := openapi.Generate(&cfg.OpenAPI, &cfg.Collection, infra.Routes.Controllers())
	if err != nil {
		return fmt.Errorf("generate openapi: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		infra.Logger.Warn("openapi document failed validation", "error", err)
	}

	data, err := openapi.MarshalJSON(doc)
	if err != nil {
		return err
	}

	if c.Stdout {
		return writeStdout(data)
	}

	path, changed, err := writeArtifact(ctx, infra, cfg.Output.OpenAPI, data)
	if err != nil {
		return err
	}

	summary(path, data, changed, fmt.Sprintf("%d paths", doc.Paths.Len()))
	return nil
}

func setup(g *Globals) (*config.Config, *infrastructure.Infrastructure, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("config load failed: %w", err)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, nil, fmt.Errorf("config finalize failed: %w", err)
	}

	infra, err := infrastructure.New(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	return cfg, infra, nil
}

func writeStdout(data []byte) error {
	if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

func summary(path string, data []byte, changed bool, detail string) {
	size := units.HumanSize(float64(len(data)))
	if !changed {
		color.New(color.FgYellow).Fprint(os.Stderr, "= ")
		fmt.Fprintf(os.Stderr, "%s unchanged (%s, %s)\n", path, size, detail)
		return
	}
	color.New(color.FgGreen, color.Bold).Fprint(os.Stderr, "✓ ")
	fmt.Fprintf(os.Stderr, "%s (%s, %s)\n", path, size, detail)
}
