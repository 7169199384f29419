package server

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/config"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/resource"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/tool"
)

// Runtime holds one server instance's wired dependencies. In stdio mode one
// Runtime lives for the process lifetime; in HTTP mode a fresh Runtime is
// assembled for every inbound request.
type Runtime struct {
	Client     bookstack.Client
	Tools      tool.Registry
	Resources  resource.Registry
	Dispatcher *Dispatcher
	Health     *HealthAggregator
}

// Builder constructs and wires all dependencies for a server instance.
// Construction is pure data assembly with no I/O, so per-request
// reconstruction in HTTP mode stays cheap.
type Builder struct {
	log logrus.FieldLogger
	cfg *config.Config
}

// NewBuilder creates a new server builder.
func NewBuilder(log logrus.FieldLogger, cfg *config.Config) *Builder {
	return &Builder{
		log: log.WithField("component", "builder"),
		cfg: cfg,
	}
}

// Build assembles a complete Runtime: API client, populated registries,
// dispatcher and health aggregator.
func (b *Builder) Build() *Runtime {
	client := bookstack.NewClient(b.log, &b.cfg.BookStack)

	resourceReg := b.buildResourceRegistry(client)
	toolReg := b.buildToolRegistry(client, resourceReg)

	b.log.WithFields(logrus.Fields{
		"tool_count":     toolReg.Len(),
		"resource_count": resourceReg.Len(),
	}).Debug("Server runtime built")

	return &Runtime{
		Client:     client,
		Tools:      toolReg,
		Resources:  resourceReg,
		Dispatcher: NewDispatcher(b.log, toolReg, resourceReg),
		Health:     NewHealthAggregator(b.log, client, toolReg, resourceReg),
	}
}

// buildToolRegistry creates and populates the tool registry. Factories run in
// a fixed order; the meta factory goes last and reads counts lazily at call
// time, so its own entry is included in what it reports.
func (b *Builder) buildToolRegistry(client bookstack.Client, resourceReg resource.Registry) tool.Registry {
	reg := tool.NewRegistry(b.log)

	factories := [][]tool.Definition{
		tool.NewBookTools(b.log, client),
		tool.NewPageTools(b.log, client),
		tool.NewChapterTools(b.log, client),
		tool.NewShelfTools(b.log, client),
		tool.NewUserTools(b.log, client),
		tool.NewRoleTools(b.log, client),
		tool.NewAttachmentTools(b.log, client),
		tool.NewImageTools(b.log, client),
		tool.NewSearchTools(b.log, client),
		tool.NewRecycleBinTools(b.log, client),
		tool.NewPermissionTools(b.log, client),
		tool.NewAuditTools(b.log, client),
		tool.NewSystemTools(b.log, client),
		tool.NewMetaTools(b.log, b.cfg.BookStack.URL, func() (int, int) {
			return reg.Len(), resourceReg.Len()
		}),
	}

	for _, defs := range factories {
		for _, def := range defs {
			reg.Register(def)
		}
	}

	return reg
}

// buildResourceRegistry creates and populates the resource registry.
func (b *Builder) buildResourceRegistry(client bookstack.Client) resource.Registry {
	reg := resource.NewRegistry(b.log)

	resource.RegisterBookResources(b.log, reg, client)
	resource.RegisterPageResources(b.log, reg, client)
	resource.RegisterChapterResources(b.log, reg, client)
	resource.RegisterShelfResources(b.log, reg, client)
	resource.RegisterSearchResources(b.log, reg, client)
	resource.RegisterSystemResources(b.log, reg, client)

	return reg
}
