package cli

import (
	"context"
	"time"
)

// logHooks reports pipeline and cache events at debug level through the
// logger attached to the context.
type logHooks struct{}

func (logHooks) OnImportStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("import started", "path", path)
}

func (logHooks) OnImportComplete(ctx context.Context, path string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Debug("import failed", "path", path, "error", err)
		return
	}
	loggerFromContext(ctx).Debug("import finished", "path", path, "nodes", nodes, "edges", edges, "duration", d)
}

func (logHooks) OnResolveStart(ctx context.Context, edges int) {
	loggerFromContext(ctx).Debug("resolve started", "edges", edges)
}

func (logHooks) OnResolveComplete(ctx context.Context, changed, issues int, d time.Duration, err error) {
	loggerFromContext(ctx).Debug("resolve finished", "reassigned", changed, "issues", issues, "duration", d, "error", err)
}

func (logHooks) OnRenderStart(ctx context.Context, format string) {
	loggerFromContext(ctx).Debug("render started", "format", format)
}

func (logHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	loggerFromContext(ctx).Debug("render finished", "format", format, "bytes", size, "duration", d, "error", err)
}

func (logHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache hit", "type", keyType)
}

func (logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache miss", "type", keyType)
}

func (logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("cache write", "type", keyType, "bytes", size)
}
