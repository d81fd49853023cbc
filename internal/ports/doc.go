// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the numstat core and the outside world.
// They define what the application needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [FileReader]: Reads the whole input file into memory
//   - [FileWatcher]: Notifies when the input file changes
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The parser and application layer (internal/parser, internal/app) depend
// only on these interfaces. Infrastructure adapters (internal/adapters)
// implement them with concrete implementations (os, fsnotify, zerolog).
package ports
