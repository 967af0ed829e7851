// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters such as the scenario runner.
// Store ports are implemented by persistence adapters and called by the
// application layer.
package ports
