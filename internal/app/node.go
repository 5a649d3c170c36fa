package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fontpack/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fontpack/internal/adapters/compiler" //nolint:depguard // Wired in app layer
	"go.trai.ch/fontpack/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fontpack/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/fontpack/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/fontpack/internal/engine/transform"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			transform.NodeID,
			compiler.NodeID,
			logger.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	parser, err := graft.Dep[ports.ConfigParser](ctx)
	if err != nil {
		return nil, err
	}

	transformer, err := graft.Dep[*transform.Transformer](ctx)
	if err != nil {
		return nil, err
	}

	fontCompiler, err := graft.Dep[ports.FontCompiler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	return New(parser, transformer, fontCompiler, log, store, hasher, verifier), nil
}
