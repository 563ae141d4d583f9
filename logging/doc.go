// Package logging provides named, context-carrying structured loggers.
//
// Each logger name maps to one shared instance, created on first use:
//
//	log := logging.New("models", nil)
//	log.UpdateContext(map[string]any{"tenant": "acme"})
//	log.Info("schema composed", map[string]any{"fields": 12})
//
// Every line carries the process-global context (correlation id, pid,
// host), the logger's name and domain, and whatever context fields the
// instance has accumulated.
//
// Configuration can be loaded from YAML:
//
//	level: debug
//	format: console
//	file_path: /var/log/models.log
//	domain: orm
package logging
