package mcpserver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// templateCache holds template file contents keyed by path relative to the
// template directory. A watcher keeps it current so reads never touch disk.
type templateCache struct {
	mu    sync.RWMutex
	files map[string]string
}

func (c *templateCache) get(rel string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.files[rel]
	return content, ok
}

func (c *templateCache) set(rel, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[rel] = content
}

func (c *templateCache) delete(rel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, rel)
}

// AddTemplateResources exposes every file under dir as an MCP resource with a
// <scheme>://<relative-path> URI, refreshing contents on file changes until
// the context is canceled.
func (s *Server) AddTemplateResources(ctx context.Context, scheme, dir string) error {
	cache := &templateCache{files: make(map[string]string)}

	var dirs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cache.set(rel, string(content))
		s.addTemplateResource(scheme, rel, cache)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load templates from %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}

	go s.refreshTemplates(ctx, watcher, scheme, dir, cache)
	return nil
}

func (s *Server) addTemplateResource(scheme, rel string, cache *templateCache) {
	uri := scheme + "://" + rel
	s.mcp.AddResource(&mcp.Resource{
		URI:      uri,
		Name:     filepath.Base(rel),
		MIMEType: mimeFor(rel),
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.ReadResourceParams) (*mcp.ReadResourceResult, error) {
		content, ok := cache.get(rel)
		if !ok {
			return nil, fmt.Errorf("resource not found: %s", params.URI)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: params.URI, MIMEType: mimeFor(rel), Text: content},
			},
		}, nil
	})
}

// refreshTemplates keeps the cache in sync with on-disk edits. New files are
// registered as resources on the fly; removed files fall out of the cache.
func (s *Server) refreshTemplates(ctx context.Context, watcher *fsnotify.Watcher, scheme, dir string, cache *templateCache) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			rel, err := filepath.Rel(dir, event.Name)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				cache.delete(rel)
				slog.Info("SERVER: Template removed", "template", rel)

			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				content, err := os.ReadFile(event.Name)
				if err != nil {
					slog.Warn("SERVER: Failed to reload template", "template", rel, "error", err)
					continue
				}
				_, known := cache.get(rel)
				cache.set(rel, string(content))
				if !known {
					s.addTemplateResource(scheme, rel, cache)
				}
				slog.Info("SERVER: Template refreshed", "template", rel)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("SERVER: Template watcher error", "error", err)
		}
	}
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return "application/yaml"
	case ".json":
		return "application/json"
	case ".md":
		return "text/markdown"
	default:
		return "text/plain"
	}
}
