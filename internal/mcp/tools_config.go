// tools_config.go implements the seaside_config_get and seaside_config_set
// tools. Both read the same files as "seaside config"; a successful set
// reloads the service so new limits apply to the next call.

package mcp

import (
	"context"
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// loadScope loads the config file named by the scope parameter, or the file
// in effect when it is empty.
func loadScope(req mcp.CallToolRequest) (*config.Config, error) {
	switch s := getString(req, "scope", ""); s {
	case "":
		return config.Load()
	case "local":
		return config.LoadScope(config.ScopeLocal)
	case "global":
		return config.LoadScope(config.ScopeGlobal)
	default:
		return nil, fmt.Errorf("invalid scope %q (use local or global)", s)
	}
}

// configGet handles seaside_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	key := getString(req, "key", "")
	ev := log.Event("mcp:config_get", "get").Author("mcp").Detail("key", key)

	cfg, err := loadScope(req)
	if err != nil {
		ev.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if key == "" {
		ev.Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)
	ev.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}

// configSet handles seaside_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	ev := log.Event("mcp:config_set", "set").Author("mcp").Detail("key", key).Detail("value", value)

	cfg, err := loadScope(req)
	if err == nil {
		err = cfg.Set(key, value)
	}
	if err == nil {
		err = cfg.Save()
	}
	ev.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The value is saved either way; only the running service is stale.
	if err := h.svc.ReloadConfig(); err != nil {
		log.Event("mcp:config_set", "reload").Author("mcp").Write(err)
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (saved, but reload failed: %v)", key, value, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", key, value)), nil
}
